package rtree

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Load bulk-inserts items, using an overlap-minimizing top-down (OMT) tile
// packing when there are enough items to amortize the tree-building cost,
// and falling back to individual Insert calls otherwise.
//
// Bulk insertion can be several times faster than inserting items one by
// one, and the resulting tree also tends to answer Search queries faster.
//
// Loading into a non-empty tree builds the new items into a separate
// subtree and grafts it into the existing tree at the appropriate level, so
// repeated bulk loads of clustered batches stay efficient; scattered batches
// degrade query performance the same way repeated single inserts would.
func (r *RTree) Load(items []Item) *RTree {
	if len(items) < r.minEntries {
		for _, item := range items {
			r.Insert(item)
		}
		return r
	}

	built := r.build(items, 0, len(items)-1, 0)

	if r.root.size() == 0 {
		r.root = built
	} else if r.root.height == built.height {
		r.splitRoot(r.root, built)
	} else {
		if r.root.height < built.height {
			r.root, built = built, r.root
		}
		r.insertNode(built, r.root.height-built.height-1)
	}
	return r
}

// build recursively constructs a balanced subtree over items[left:right+1]
// using OMT-style tile packing: partition into x-stripes, then partition
// each stripe into near-square y-tiles, recursing on each tile.
func (r *RTree) build(items []Item, left, right, height int) *node {
	count := float64(right - left + 1)
	max := float64(r.maxEntries)

	if count <= max {
		n := newNode()
		n.items = append(n.items, items[left:right+1]...)
		calcBBox(n, r.bboxFn)
		return n
	}

	if height == 0 {
		height = int(math.Ceil(logBase(count, max)))
		capacity := math.Pow(max, float64(height-1))
		max = math.Ceil(count / capacity)
	}

	n := newNode()
	n.leaf = false
	n.height = height

	grpY := int(math.Ceil(count / max))
	grpX := grpY * int(math.Ceil(math.Sqrt(max)))

	groupItems(items, left, right, grpX, true, r.bboxFn)

	var stripeStarts []int
	for i := left; i <= right; i += grpX {
		stripeStarts = append(stripeStarts, i)
	}
	stripeChildren := make([][]*node, len(stripeStarts))

	var g errgroup.Group
	for idx, i := range stripeStarts {
		idx, i := idx, i
		g.Go(func() error {
			right2 := min(i+grpX-1, right)
			groupItems(items, i, right2, grpY, false, r.bboxFn)

			var children []*node
			for j := i; j <= right2; j += grpY {
				right3 := min(j+grpY-1, right2)
				children = append(children, r.build(items, j, right3, height-1))
			}
			stripeChildren[idx] = children
			return nil
		})
	}
	_ = g.Wait() // build never returns an error; errgroup just joins the fan-out

	for _, children := range stripeChildren {
		n.children = append(n.children, children...)
	}

	calcBBox(n, r.bboxFn)
	return n
}

// groupItems partially sorts items[leftIdx:rightIdx+1] into contiguous
// groups of groupSize unsorted items, with groups ordered among themselves
// (by MinX if xDim, else MinY) but unordered within. Implemented as
// multi-select: an explicit-stack divide-and-conquer over quickselect.
func groupItems(items []Item, leftIdx, rightIdx, groupSize int, xDim bool, bboxFn BoundsFunc) {
	stack := []int{leftIdx, rightIdx}
	for len(stack) > 0 {
		right, left := popInt(&stack), popInt(&stack)

		size := right - left
		if size <= groupSize {
			continue
		}

		groups := float64(size) / float64(groupSize)
		pivot := int(math.Ceil(groups/2)) * groupSize

		if xDim {
			quickselect(itemsByAxis{items[left : right+1], bboxFn, true}, pivot)
		} else {
			quickselect(itemsByAxis{items[left : right+1], bboxFn, false}, pivot)
		}
		pivot += left

		stack = append(stack, left, pivot, pivot, right)
	}
}

func logBase(v, base float64) float64 {
	return math.Log(v) / math.Log(base)
}

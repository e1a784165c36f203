package rtree

// Item is a user-stored value. The tree never inspects an Item beyond
// calling the tree's BoundsFunc on it and, on removal, an EqualsFunc.
type Item interface{}

// BoundsFunc maps a user item to its bounding rectangle.
type BoundsFunc func(item Item) BBox

// EqualsFunc decides whether two items are the same, for Remove.
type EqualsFunc func(a, b Item) bool

// FilterFunc decides whether an item should be included in a FilteredSearch.
type FilterFunc func(item Item) bool

// node is an R-tree element. It holds either child nodes (leaf == false) or
// user items (leaf == true), never both.
type node struct {
	children []*node
	items    []Item

	height int
	leaf   bool
	bbox   BBox
}

func newNode() *node {
	return &node{
		height: 1,
		leaf:   true,
		bbox:   emptyBBox,
	}
}

func (n *node) size() int {
	return len(n.children) + len(n.items)
}

// sorting helpers used by chooseSplitAxis and groupItems.

type nodesByMinX []*node
type nodesByMinY []*node

func (a nodesByMinX) Len() int           { return len(a) }
func (a nodesByMinX) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a nodesByMinX) Less(i, j int) bool { return a[i].bbox.MinX < a[j].bbox.MinX }

func (a nodesByMinY) Len() int           { return len(a) }
func (a nodesByMinY) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a nodesByMinY) Less(i, j int) bool { return a[i].bbox.MinY < a[j].bbox.MinY }

type itemsByAxis struct {
	items  []Item
	bboxFn BoundsFunc
	minX   bool
}

func (a itemsByAxis) Len() int      { return len(a.items) }
func (a itemsByAxis) Swap(i, j int) { a.items[i], a.items[j] = a.items[j], a.items[i] }
func (a itemsByAxis) Less(i, j int) bool {
	bi, bj := a.bboxFn(a.items[i]), a.bboxFn(a.items[j])
	if a.minX {
		return bi.MinX < bj.MinX
	}
	return bi.MinY < bj.MinY
}

// calcBBox recomputes node's cached bbox from the union of all its children
// (or items, if a leaf).
func calcBBox(n *node, bboxFn BoundsFunc) {
	n.bbox = calcSubBBox(n, 0, n.size(), bboxFn)
}

// calcSubBBox returns the union of the rectangles of n's children (or items)
// in [start, end).
func calcSubBBox(n *node, start, end int, bboxFn BoundsFunc) BBox {
	bbox := emptyBBox
	if n.leaf {
		for _, item := range n.items[start:end] {
			bbox.Extend(bboxFn(item))
		}
	} else {
		for _, child := range n.children[start:end] {
			bbox.Extend(child.bbox)
		}
	}
	return bbox
}

func popNode(nodes *[]*node) *node {
	last := len(*nodes) - 1
	n := (*nodes)[last]
	*nodes = (*nodes)[:last]
	return n
}

func popInt(ints *[]int) int {
	last := len(*ints) - 1
	v := (*ints)[last]
	*ints = (*ints)[:last]
	return v
}

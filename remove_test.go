package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveLastItemResetsRootToEmptyLeaf(t *testing.T) {
	tree := New(testItemBounds, 4)
	a := &testItem{bounds: rect(0, 0, 1, 1)}
	tree.Insert(a)

	tree.Remove(a, nil)
	assert.Empty(t, tree.All())
	assert.Equal(t, 1, tree.Height())
	assert.True(t, tree.root.leaf)
}

func TestRemoveWithOverlappingSiblingBBoxesBacktracks(t *testing.T) {
	tree := New(testItemBounds, 4)

	// Two clusters whose node bboxes end up overlapping, forcing Remove to
	// backtrack from the first candidate subtree into the sibling.
	// Load packs these into three leaves in this order: {big, x1, x2} with
	// bbox [0,0,10,10], {target, y1, y2} with bbox [4,5,8,8], and {z1, z2, z3}.
	// The first leaf's bbox contains the target, but the target is in the second.
	target := &testItem{bounds: rect(4, 5, 5, 6)}
	items := []Item{
		&testItem{bounds: rect(0, 0, 10, 10)},
		&testItem{bounds: rect(1, 1, 2, 2)},
		&testItem{bounds: rect(2, 2, 3, 3)},
		target,
		&testItem{bounds: rect(6, 6, 7, 7)},
		&testItem{bounds: rect(7, 7, 8, 8)},
		&testItem{bounds: rect(20, 20, 21, 21)},
		&testItem{bounds: rect(21, 21, 22, 22)},
		&testItem{bounds: rect(22, 22, 23, 23)},
	}
	tree.Load(items)

	before := len(tree.All())
	tree.Remove(target, nil)
	assert.Len(t, tree.All(), before-1)

	for _, item := range tree.All() {
		assert.NotSame(t, target, item)
	}
	assertInvariants(t, tree)
}

func TestRemoveWithCustomEqualsFunc(t *testing.T) {
	tree := New(testItemBounds, 4)
	original := &testItem{bounds: rect(2, 2, 3, 3), data: []byte("id-7")}
	tree.Insert(original)

	copyHandle := &testItem{bounds: rect(2, 2, 3, 3), data: []byte("id-7")}
	eq := func(a, b Item) bool {
		return string(a.(*testItem).data) == string(b.(*testItem).data)
	}

	tree.Remove(copyHandle, eq)
	assert.Empty(t, tree.All())
}

func TestRemoveFromEmptyTreeIsNoop(t *testing.T) {
	tree := New(testItemBounds, 4)
	tree.Remove(&testItem{bounds: rect(0, 0, 1, 1)}, nil)
	assert.Empty(t, tree.All())
	assertInvariants(t, tree)
}

func TestClearResetsToFreshEmptyLeaf(t *testing.T) {
	tree := New(testItemBounds, 4)
	for i := 0; i < 40; i++ {
		tree.Insert(randomItem())
	}
	tree.Clear()

	assert.Empty(t, tree.All())
	assert.Equal(t, 1, tree.Height())
	assert.True(t, tree.root.leaf)
	assert.Equal(t, emptyBBox, tree.Bounds())
}

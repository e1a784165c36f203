package rtree

// Remove deletes one occurrence of item, chosen by equalsFn (or by == on
// the Item interface value when equalsFn is nil). Removing an absent item
// is a no-op, not an error.
func (r *RTree) Remove(item Item, equalsFn EqualsFunc) *RTree {
	bbox := r.bboxFn(item)

	var path []*node
	var childIndexes []int
	var parent *node
	var childIdx int

	goingUp := false

	n := r.root
	for n != nil || len(path) > 0 {
		if n == nil {
			n = popNode(&path)
			parent = r.root
			if len(path) > 0 {
				parent = path[len(path)-1]
			}
			childIdx = popInt(&childIndexes)
			goingUp = true
		}

		if n.leaf {
			if removeChildItem(n, item, equalsFn) {
				r.condense(append(path, n))
				return r
			}
		}

		contained := n.bbox.Contains(bbox)
		if !goingUp && !n.leaf && contained {
			path = append(path, n)
			childIndexes = append(childIndexes, childIdx)
			childIdx = 0
			parent = n
			n = n.children[0]
		} else if parent != nil {
			n = nil
			childIdx++
			if childIdx < len(parent.children) {
				n = parent.children[childIdx]
			}
			goingUp = false
		} else {
			n = nil
		}
	}
	return r
}

// condense walks path from deepest to shallowest, detaching empty nodes
// from their parent and recomputing bboxes for survivors. If the root ends
// up empty, the tree is cleared.
func (r *RTree) condense(path []*node) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.size() == 0 {
			if i > 0 {
				removeChildNode(path[i-1], n)
			} else {
				r.Clear()
			}
		} else {
			calcBBox(n, r.bboxFn)
		}
	}
}

// removeChildItem removes a matching item from a leaf's items. Returns true
// if found and removed.
func removeChildItem(n *node, item Item, equalsFn EqualsFunc) bool {
	for idx, candidate := range n.items {
		var found bool
		if equalsFn == nil {
			found = item == candidate
		} else {
			found = equalsFn(item, candidate)
		}
		if found {
			n.items = append(n.items[:idx], n.items[idx+1:]...)
			return true
		}
	}
	return false
}

// removeChildNode removes child from parent's children by identity.
func removeChildNode(parent, child *node) {
	for idx, c := range parent.children {
		if c == child {
			parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
			return
		}
	}
}

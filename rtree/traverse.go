package rtree

import "iter"

// NodePredicate prunes a traversal: when it returns false for a node, that
// node and its entire subtree are excluded, not just the node itself.
// A nil predicate accepts every node.
type NodePredicate func(*Node) bool

func (p NodePredicate) accepts(n *Node) bool {
	return p == nil || p(n)
}

// Traverse walks the tree depth-first — a node, then each child subtree in
// entry order — yielding nodes that satisfy pred. It is a lazy sequence:
// ranging over the result and breaking early visits no further nodes.
func (t *Tree) Traverse(pred NodePredicate) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var walk func(n *Node) bool
		walk = func(n *Node) bool {
			if !pred.accepts(n) {
				return true
			}
			if !yield(n) {
				return false
			}
			if !n.isLeaf {
				for _, e := range n.Entries {
					if !walk(e.Child) {
						return false
					}
				}
			}
			return true
		}
		walk(t.root)
	}
}

// TraverseLevelOrder walks the tree breadth-first, yielding (node, level)
// pairs with the root at level 0. Like Traverse, pred excludes an entire
// subtree when it returns false, and the sequence is lazy.
func (t *Tree) TraverseLevelOrder(pred NodePredicate) iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		if !pred.accepts(t.root) {
			return
		}
		queue := []*Node{t.root}
		levels := []int{0}
		for len(queue) > 0 {
			n, level := queue[0], levels[0]
			queue, levels = queue[1:], levels[1:]
			if !yield(n, level) {
				return
			}
			if !n.isLeaf {
				for _, e := range n.Entries {
					if pred.accepts(e.Child) {
						queue = append(queue, e.Child)
						levels = append(levels, level+1)
					}
				}
			}
		}
	}
}

// GetNodes returns every node in the tree, depth-first order.
func (t *Tree) GetNodes() []*Node {
	var out []*Node
	for n := range t.Traverse(nil) {
		out = append(out, n)
	}
	return out
}

// GetLeaves returns every leaf node in the tree, depth-first order.
func (t *Tree) GetLeaves() []*Node {
	var out []*Node
	for n := range t.Traverse(nil) {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	return out
}

// GetLeafEntries returns every leaf entry in the tree, depth-first order.
func (t *Tree) GetLeafEntries() []*Entry {
	var out []*Entry
	for n := range t.Traverse(nil) {
		if n.IsLeaf() {
			out = append(out, n.Entries...)
		}
	}
	return out
}

// GetLevels returns an ordered list-of-lists of nodes, one slice per
// depth, root first, for callers needing random access by level.
func (t *Tree) GetLevels() [][]*Node {
	var levels [][]*Node
	for n, level := range t.TraverseLevelOrder(nil) {
		for len(levels) <= level {
			levels = append(levels, nil)
		}
		levels[level] = append(levels[level], n)
	}
	return levels
}

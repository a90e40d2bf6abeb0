package rtree

import "iter"

// EntryPredicate filters leaf entries during Search. A nil predicate
// accepts every entry.
type EntryPredicate func(*Entry) bool

func (p EntryPredicate) accepts(e *Entry) bool {
	return p == nil || p(e)
}

// boundingMatchPredicate prunes any node whose bounding rectangle does not
// match loc; an entryless node (the empty root) never matches.
func boundingMatchPredicate(loc Rect, isPoint bool) NodePredicate {
	return func(n *Node) bool {
		br, ok := n.BoundingRect()
		if !ok {
			return false
		}
		return matches(br, loc, isPoint)
	}
}

// Query returns the leaf entries whose rectangle matches loc: inclusive
// point containment if loc is point-shaped, strict rectangle intersection
// otherwise. The location is resolved eagerly, so an invalid shape returns
// ErrInvalidLocation without touching the tree; the returned sequence is
// lazy and prunes any subtree whose bounding rectangle doesn't match.
func (t *Tree) Query(loc Location) (iter.Seq[*Entry], error) {
	r, isPoint, err := resolveLocation(loc)
	if err != nil {
		return nil, err
	}
	nodePred := boundingMatchPredicate(r, isPoint)
	entryPred := EntryPredicate(func(e *Entry) bool {
		return matches(e.Rect, r, isPoint)
	})
	return t.Search(nodePred, entryPred), nil
}

// QueryNodes returns nodes whose bounding rectangle matches loc. When
// leavesOnly is false, matching interior nodes are yielded too.
func (t *Tree) QueryNodes(loc Location, leavesOnly bool) (iter.Seq[*Node], error) {
	r, isPoint, err := resolveLocation(loc)
	if err != nil {
		return nil, err
	}
	nodePred := boundingMatchPredicate(r, isPoint)
	return t.SearchNodes(nodePred, leavesOnly), nil
}

// Search is the general query form: nodePred prunes the traversal at every
// level (nil accepts all nodes), then entryPred filters the leaf entries
// reached (nil accepts all entries).
func (t *Tree) Search(nodePred NodePredicate, entryPred EntryPredicate) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for n := range t.Traverse(nodePred) {
			if !n.IsLeaf() {
				continue
			}
			for _, e := range n.Entries {
				if entryPred.accepts(e) {
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}

// SearchNodes prunes the traversal by nodePred and yields the surviving
// nodes; when leavesOnly is true (the default callers should pass unless
// they need interior nodes too) only leaves are yielded.
func (t *Tree) SearchNodes(nodePred NodePredicate, leavesOnly bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := range t.Traverse(nodePred) {
			if leavesOnly && !n.IsLeaf() {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

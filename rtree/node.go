package rtree

// Entry is a record stored in a Node: either a leaf entry referencing a
// user payload, or an internal entry referencing a child Node. Rect is the
// entry's bounding rectangle; for internal entries it must always equal the
// bounding union of the child's entries (refreshed by adjustTree after
// every insert).
type Entry struct {
	Rect    Rect
	Payload interface{} // set iff the entry is a leaf entry
	Child   *Node       // set iff the entry is an internal entry
}

// IsLeaf reports whether e is a leaf entry (references a payload rather
// than a child node).
func (e *Entry) IsLeaf() bool { return e.Child == nil }

// Node is a node in the tree's ownership graph. The tree exclusively owns
// the root; each internal entry exclusively owns its Child. Parent is a
// back-reference for traversal only, never an owning link.
type Node struct {
	parent   *Node
	isLeaf   bool
	Entries  []*Entry
}

// IsLeaf reports whether n is a leaf node (its entries all reference
// payloads rather than child nodes).
func (n *Node) IsLeaf() bool { return n.isLeaf }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Parent returns n's parent node, or nil if n is the root.
func (n *Node) Parent() *Node { return n.parent }

// ParentEntry returns the entry in n.Parent() whose Child is n (the first
// one, should there be several). It panics if n is the root (no parent) or
// if no such entry exists — both are programmer errors, never a condition
// a caller can recover from.
func (n *Node) ParentEntry() *Entry {
	if n.parent == nil {
		panic(errInvariant("ParentEntry called on the root node"))
	}
	for _, e := range n.parent.Entries {
		if e.Child == n {
			return e
		}
	}
	panic(errInvariant("node has no corresponding entry in its parent"))
}

// BoundingRect returns the union of n's entries' rectangles, and ok=false
// if n has no entries (the empty-root case).
func (n *Node) BoundingRect() (Rect, bool) {
	if len(n.Entries) == 0 {
		return Rect{}, false
	}
	r := n.Entries[0].Rect
	for _, e := range n.Entries[1:] {
		r = Union(r, e.Rect)
	}
	return r, true
}

func newLeafNode(parent *Node) *Node {
	return &Node{parent: parent, isLeaf: true}
}

func newInternalNode(parent *Node) *Node {
	return &Node{parent: parent, isLeaf: false}
}

// refitParentEntry recomputes node's parent entry's rectangle from node's
// current entries. This is always a fresh refit, never a union with the
// stale rectangle — required so that R*'s forced reinsertion (which can
// shrink a node) is reflected correctly.
func refitParentEntry(node *Node) {
	if node.parent == nil {
		return
	}
	pe := node.ParentEntry()
	r, ok := node.BoundingRect()
	if !ok {
		panic(errInvariant("bounding rect requested for an empty non-root node"))
	}
	pe.Rect = r
}

// performNodeSplit replaces node's entries with g1, creates a sibling node
// (sharing node's parent and leaf-ness) holding g2, and repoints the parent
// link of every child referenced by an internal entry in either group. The
// repointing must happen here, before any caller reads those parent links
// during adjustTree.
func performNodeSplit(node *Node, g1, g2 []*Entry) *Node {
	node.Entries = g1
	sibling := &Node{parent: node.parent, isLeaf: node.isLeaf, Entries: g2}
	for _, e := range g1 {
		if e.Child != nil {
			e.Child.parent = node
		}
	}
	for _, e := range g2 {
		if e.Child != nil {
			e.Child.parent = sibling
		}
	}
	return sibling
}

// growTree creates a new root whose entries point at nodes, one entry per
// node, and reparents each node under the new root. Used when the previous
// root overflowed and had to split.
func growTree(nodes ...*Node) *Node {
	root := newInternalNode(nil)
	for _, n := range nodes {
		r, ok := n.BoundingRect()
		if !ok {
			panic(errInvariant("growTree given an entryless node"))
		}
		root.Entries = append(root.Entries, &Entry{Rect: r, Child: n})
		n.parent = root
	}
	return root
}

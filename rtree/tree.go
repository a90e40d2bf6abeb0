package rtree

import "github.com/pkg/errors"

// StrategyKind selects the insertion/split algorithm a Tree uses.
type StrategyKind int

const (
	// Guttman selects least-area-enlargement leaf choice and quadratic
	// split, per A. Guttman, "R-trees: A Dynamic Index Structure for
	// Spatial Searching" (1984).
	Guttman StrategyKind = iota
	// RStar selects least-overlap/area-enlargement leaf choice, the
	// axis/index split, and forced reinsertion, per Beckmann et al.,
	// "The R*-tree: An Efficient and Robust Access Method" (1990).
	RStar
)

// strategy is the capability set a Tree dispatches insertion through:
// choosing a leaf for a new entry, and handling an overflowing node.
// Guttman and R* are tagged-variant implementations selected at
// construction time; there is no inheritance hierarchy.
type strategy interface {
	chooseLeaf(t *Tree, newEntry *Entry) *Node
	overflow(t *Tree, node *Node) *Node
}

// Tree is an R-tree spatial index over axis-aligned rectangles carrying
// opaque payloads. The zero value is not usable; construct with NewTree.
type Tree struct {
	root        *Node
	maxEntries  int
	minEntries  int
	strategy    strategy
	insertCache *insertCache // scratch state scoped to one top-level Insert call
}

// NewTree constructs an empty tree. minEntries defaults to
// ceil(maxEntries/2) when 0 is passed. It returns ErrConfiguration if
// maxEntries < 2 or maxEntries < minEntries.
func NewTree(maxEntries, minEntries int, kind StrategyKind) (*Tree, error) {
	if minEntries == 0 {
		minEntries = (maxEntries + 1) / 2
	}
	if maxEntries < 2 {
		return nil, errors.Wrapf(ErrConfiguration, "maxEntries must be >= 2, got %d", maxEntries)
	}
	if maxEntries < minEntries {
		return nil, errors.Wrapf(ErrConfiguration, "minEntries (%d) must not exceed maxEntries (%d)", minEntries, maxEntries)
	}

	var s strategy
	switch kind {
	case Guttman:
		s = guttmanStrategy{}
	case RStar:
		s = rstarStrategy{}
	default:
		panic(errInvariant("unknown strategy kind"))
	}

	return &Tree{
		root:       newLeafNode(nil),
		maxEntries: maxEntries,
		minEntries: minEntries,
		strategy:   s,
	}, nil
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// MaxEntries returns the configured maximum entries per node.
func (t *Tree) MaxEntries() int { return t.maxEntries }

// MinEntries returns the configured minimum entries per non-root node.
func (t *Tree) MinEntries() int { return t.minEntries }

// insertCache holds scratch state for a single top-level Insert call. It is
// created lazily on the first overflow and must never be read across
// top-level Insert boundaries.
type insertCache struct {
	// levelTable[d] lists the nodes at distance d from the leaf level
	// (leaves at index 0). nil means "stale, rebuild on next use" — set
	// whenever a structural split occurs during the insert, since a split
	// invalidates the membership of whichever level it touched.
	levelTable [][]*Node
	// reinsertedAtLevel records which leaf-distances have already had
	// their one permitted forced reinsertion during this top-level
	// insert; a second overflow at the same level falls through to split.
	reinsertedAtLevel map[int]bool
}

func (t *Tree) ensureInsertCache() *insertCache {
	if t.insertCache == nil {
		t.insertCache = &insertCache{reinsertedAtLevel: map[int]bool{}}
	}
	return t.insertCache
}

// table returns (building it if stale) the cache's table of nodes by
// distance from the leaf level.
func (c *insertCache) table(t *Tree) [][]*Node {
	if c.levelTable == nil {
		byRootDepth := t.GetLevels()
		n := len(byRootDepth)
		table := make([][]*Node, n)
		for d := 0; d < n; d++ {
			table[d] = byRootDepth[n-1-d]
		}
		c.levelTable = table
	}
	return c.levelTable
}

// levelFromLeaf returns n's distance from the leaf level (leaves are 0).
// Valid because all leaves share the same depth (invariant 4).
func levelFromLeaf(n *Node) int {
	level := 0
	for cur := n; !cur.isLeaf; cur = cur.Entries[0].Child {
		level++
	}
	return level
}

// Insert adds payload bounded by rect to the tree and returns the new leaf
// entry. This is the only mutating public operation; callers must not
// mutate the tree concurrently with Insert or with each other.
func (t *Tree) Insert(payload interface{}, rect Rect) *Entry {
	defer func() { t.insertCache = nil }()

	entry := &Entry{Rect: rect, Payload: payload}
	leaf := t.strategy.chooseLeaf(t, entry)
	leaf.Entries = append(leaf.Entries, entry)

	var sibling *Node
	if len(leaf.Entries) > t.maxEntries {
		sibling = t.strategy.overflow(t, leaf)
	}
	t.adjustTree(leaf, sibling)
	return entry
}

// adjustTree ascends from node to the root, refitting each ancestor's
// bounding rectangle from its (possibly just-mutated) entries, and
// propagating splitSibling upward: the sibling is attached to node's
// parent, which may itself overflow and need splitting in turn. If a
// sibling is still pending once the root is reached, the tree grows a new
// root over the old one and the sibling.
func (t *Tree) adjustTree(node *Node, splitSibling *Node) {
	for !node.IsRoot() {
		refitParentEntry(node)
		if splitSibling != nil {
			parent := node.parent
			r, ok := splitSibling.BoundingRect()
			if !ok {
				panic(errInvariant("adjustTree given an entryless split sibling"))
			}
			splitSibling.parent = parent
			parent.Entries = append(parent.Entries, &Entry{Rect: r, Child: splitSibling})
			if len(parent.Entries) > t.maxEntries {
				splitSibling = t.strategy.overflow(t, parent)
			} else {
				splitSibling = nil
			}
		}
		node = node.parent
	}
	if splitSibling != nil {
		t.root = growTree(t.root, splitSibling)
	}
}

package rtree

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewTreeConfigurationErrors(t *testing.T) {
	tests := []struct {
		name                   string
		maxEntries, minEntries int
	}{
		{"max too small", 1, 0},
		{"min exceeds max", 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTree(tt.maxEntries, tt.minEntries, Guttman)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewTree(%d, %d) error = %v, want wrapping ErrConfiguration", tt.maxEntries, tt.minEntries, err)
			}
		})
	}
}

func TestNewTreeDefaultMinEntries(t *testing.T) {
	tr, err := NewTree(8, 0, Guttman)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if tr.MinEntries() != 4 {
		t.Errorf("MinEntries() = %d, want 4 (ceil(8/2))", tr.MinEntries())
	}
}

func TestEmptyTree(t *testing.T) {
	tr, err := NewTree(4, 2, Guttman)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if !tr.Root().IsLeaf() {
		t.Errorf("empty tree's root should be a leaf")
	}
	if !tr.Root().IsRoot() {
		t.Errorf("root should report IsRoot()")
	}
	if len(tr.Root().Entries) != 0 {
		t.Errorf("empty tree's root should have no entries")
	}
	if _, ok := tr.Root().BoundingRect(); ok {
		t.Errorf("empty root's bounding rect should be absent")
	}
}

func TestInsertIntoEmptyTree(t *testing.T) {
	tr, _ := NewTree(4, 2, Guttman)
	tr.Insert("a", NewRect(0, 0, 1, 1))

	if tr.Root() == nil || !tr.Root().IsLeaf() {
		t.Fatalf("root should remain a leaf after first insert")
	}
	if len(tr.Root().Entries) != 1 {
		t.Fatalf("root should have exactly one entry, got %d", len(tr.Root().Entries))
	}
	if tr.Root().Entries[0].Payload != "a" {
		t.Errorf("payload = %v, want %q", tr.Root().Entries[0].Payload, "a")
	}
}

// checkInvariants walks every node in the tree and asserts the structural
// invariants an R-tree must maintain after any mutation: entry counts within
// [minEntries, maxEntries] (root excepted), every internal entry's rect
// equal to its child's bounding union, parent back-links pointing at the correct
// node, and a uniform leaf depth across the tree.
func checkInvariants(t *testing.T, tr *Tree) {
	t.Helper()

	var leafDepth = -1
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if !n.IsRoot() {
			if len(n.Entries) < tr.minEntries || len(n.Entries) > tr.maxEntries {
				t.Errorf("node at depth %d has %d entries, want [%d, %d]", depth, len(n.Entries), tr.minEntries, tr.maxEntries)
			}
			pe := n.ParentEntry()
			wantRect, ok := n.BoundingRect()
			if ok && pe.Rect != wantRect {
				t.Errorf("parent entry rect = %v, want %v (bounding union of children)", pe.Rect, wantRect)
			}
		}
		if n.IsLeaf() {
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				t.Errorf("leaf at depth %d, want %d (all leaves must share depth)", depth, leafDepth)
			}
			return
		}
		for _, e := range n.Entries {
			if e.Child == nil {
				t.Errorf("non-leaf node has a leaf entry")
				continue
			}
			if e.Child.Parent() != n {
				t.Errorf("child's parent pointer does not reference this node")
			}
			want, ok := e.Child.BoundingRect()
			if ok && e.Rect != want {
				t.Errorf("entry rect = %v, want %v (child's bounding union)", e.Rect, want)
			}
			walk(e.Child, depth+1)
		}
	}
	walk(tr.root, 0)
}

func TestInsertManyMaintainsInvariantsGuttman(t *testing.T) {
	tr, _ := NewTree(4, 2, Guttman)
	for i := 0; i < 200; i++ {
		x := float64(i % 20)
		y := float64(i / 20)
		tr.Insert(i, NewRect(x, y, x+1, y+1))
	}
	checkInvariants(t, tr)
	if got := len(tr.GetLeafEntries()); got != 200 {
		t.Errorf("GetLeafEntries() has %d entries, want 200", got)
	}
}

func TestInsertManyMaintainsInvariantsRStar(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	for i := 0; i < 200; i++ {
		x := float64(i % 20)
		y := float64(i / 20)
		tr.Insert(i, NewRect(x, y, x+1, y+1))
	}
	checkInvariants(t, tr)
	if got := len(tr.GetLeafEntries()); got != 200 {
		t.Errorf("GetLeafEntries() has %d entries, want 200", got)
	}
}

func TestBoundingRectCoversAllInserted(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	rects := []Rect{
		NewRect(0, 0, 1, 1),
		NewRect(-5, -5, -4, -4),
		NewRect(10, 10, 20, 20),
		NewRect(3, -8, 4, -7),
	}
	for i, r := range rects {
		tr.Insert(i, r)
	}
	want, _ := UnionAll(rects)
	got, ok := tr.Root().BoundingRect()
	if !ok {
		t.Fatalf("root bounding rect absent after inserts")
	}
	if got != want {
		t.Errorf("root bounding rect = %v, want %v", got, want)
	}
}

func TestPayloadsAppearExactlyOnce(t *testing.T) {
	tr, _ := NewTree(3, 1, RStar)
	n := 50
	for i := 0; i < n; i++ {
		x := float64(i)
		tr.Insert(i, NewRect(x, 0, x+1, 1))
	}
	seen := make(map[int]int)
	for _, e := range tr.GetLeafEntries() {
		seen[e.Payload.(int)]++
	}
	if len(seen) != n {
		t.Fatalf("got %d distinct payloads, want %d", len(seen), n)
	}
	for p, count := range seen {
		if count != 1 {
			t.Errorf("payload %d appears %d times, want 1", p, count)
		}
	}
}

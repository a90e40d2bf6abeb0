package rtree

import "testing"

// TestRStarChooseLeafPrefersLeastOverlap (S4) builds a two-leaf tree where
// absorbing the new entry into one leaf adds less overlap with its sibling
// than absorbing it into the other, even though the less-overlap choice
// needs more area enlargement.
func TestRStarChooseLeafPrefersLeastOverlap(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	root := newInternalNode(nil)
	leafA := newLeafNode(root) // absorbing: area enlargement 5, overlap enlargement 1
	leafA.Entries = []*Entry{{Rect: NewRect(0, 0, 4, 5)}}
	leafB := newLeafNode(root) // absorbing: area enlargement 3, overlap enlargement 2
	leafB.Entries = []*Entry{{Rect: NewRect(2, 4, 5, 6)}}
	root.Entries = []*Entry{
		{Rect: NewRect(0, 0, 4, 5), Child: leafA},
		{Rect: NewRect(2, 4, 5, 6), Child: leafB},
	}
	tr.root = root

	// Least area enlargement alone would pick leafB; least overlap
	// enlargement picks leafA.
	newEntry := &Entry{Rect: NewRect(4, 3, 5, 4)}
	chosen := rstarStrategy{}.chooseLeaf(tr, newEntry)
	if chosen != leafA {
		t.Errorf("chooseLeaf chose %v, want the leaf whose absorption adds the least overlap", chosen)
	}
}

// TestRStarChooseLeafRootIsLeafShortcut covers the degenerate case where
// the root itself is a leaf: chooseLeaf should short-circuit to it without
// examining entries.
func TestRStarChooseLeafRootIsLeafShortcut(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	chosen := rstarStrategy{}.chooseLeaf(tr, &Entry{Rect: NewRect(0, 0, 1, 1)})
	if chosen != tr.root {
		t.Errorf("chooseLeaf on a leaf-rooted tree should return the root")
	}
}

// TestRStarSplitMinimizesOverlap (S5) constructs an overflowing node whose
// entries form two clusters along X and checks that the chosen split
// leaves the two groups with no overlapping area.
func TestRStarSplitMinimizesOverlap(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	node := newLeafNode(nil)
	// Along X the five boxes separate cleanly into two non-overlapping
	// clusters. They all share the same Y band, so the stable Y sorts keep
	// input order and yield the same distributions as X; the perimeter sums
	// tie and the split falls to X, where the smallest-area zero-overlap
	// distribution is {0,1,2} | {3,4}.
	node.Entries = []*Entry{
		{Payload: 0, Rect: NewRect(0, 0, 1, 1)},
		{Payload: 1, Rect: NewRect(1, 0, 2, 1)},
		{Payload: 2, Rect: NewRect(2, 0, 3, 1)},
		{Payload: 3, Rect: NewRect(20, 0, 21, 1)},
		{Payload: 4, Rect: NewRect(21, 0, 22, 1)},
	}

	sibling := rstarSplit(tr, node)
	total := len(node.Entries) + len(sibling.Entries)
	if total != 5 {
		t.Fatalf("split lost entries: got %d total, want 5", total)
	}

	r1, _ := node.BoundingRect()
	r2, _ := sibling.BoundingRect()
	if IntersectionArea(r1, r2) != 0 {
		t.Errorf("rstarSplit did not choose the zero-overlap axis: groups %v, %v overlap", r1, r2)
	}
}

func TestAxisDistributionsRespectsMinEntries(t *testing.T) {
	entries := []*Entry{
		{Rect: NewRect(0, 0, 1, 1)},
		{Rect: NewRect(1, 0, 2, 1)},
		{Rect: NewRect(2, 0, 3, 1)},
		{Rect: NewRect(3, 0, 4, 1)},
		{Rect: NewRect(4, 0, 5, 1)},
	}
	m := 2
	all, unique := axisDistributions(entries, m,
		func(e *Entry) float64 { return e.Rect.MinX },
		func(e *Entry) float64 { return e.Rect.MaxX })
	if len(all) == 0 || len(unique) == 0 {
		t.Fatalf("axisDistributions returned no distributions")
	}
	for _, d := range all {
		if len(d.g1) < m || len(d.g2) < m {
			t.Errorf("distribution violates minEntries: sizes %d, %d, min %d", len(d.g1), len(d.g2), m)
		}
	}
}

// TestRStarRootLeafOverflowKeepsInvariants inserts one entry more than a
// root leaf can hold into an R*-tree. The root never takes forced
// reinsertion, so the overflow is handled by a split; the test checks the
// structural invariants and the entry count afterwards.
func TestRStarRootLeafOverflowKeepsInvariants(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	// Five entries overflow the root leaf (maxEntries 4) exactly once.
	for i := 0; i < 5; i++ {
		x := float64(i)
		tr.Insert(i, NewRect(x, 0, x+1, 1))
	}
	checkInvariants(t, tr)
	if got := len(tr.GetLeafEntries()); got != 5 {
		t.Errorf("GetLeafEntries() = %d, want 5", got)
	}
}

// TestReinsertedAtLevelPreventsDoubleReinsertion (S6/S7) checks the
// insertCache bookkeeping directly: once a level has been marked as having
// had its forced reinsertion, a second overflow at that level must split
// instead of reinserting again.
func TestReinsertedAtLevelPreventsDoubleReinsertion(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	cache := tr.ensureInsertCache()
	cache.reinsertedAtLevel[0] = true

	node := newLeafNode(newInternalNode(nil))
	node.parent.Entries = []*Entry{{Rect: NewRect(0, 0, 1, 1), Child: node}}
	node.Entries = []*Entry{
		{Rect: NewRect(0, 0, 1, 1)},
		{Rect: NewRect(1, 0, 2, 1)},
		{Rect: NewRect(2, 0, 3, 1)},
		{Rect: NewRect(3, 0, 4, 1)},
		{Rect: NewRect(4, 0, 5, 1)},
	}

	sibling := rstarStrategy{}.overflow(tr, node)
	if sibling == nil {
		t.Errorf("overflow at an already-reinserted level should split, not reinsert")
	}
}

// TestInsertManyRStarGrowsTreeMultipleLevels (S7) inserts enough entries
// that reinsertion alone cannot absorb every overflow, forcing the tree to
// grow past a single split. Invariants must hold throughout.
func TestInsertManyRStarGrowsTreeMultipleLevels(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	n := 500
	for i := 0; i < n; i++ {
		x := float64(i % 25)
		y := float64(i / 25)
		tr.Insert(i, NewRect(x, y, x+1, y+1))
		checkInvariants(t, tr)
	}
	if got := len(tr.GetLeafEntries()); got != n {
		t.Errorf("GetLeafEntries() = %d, want %d", got, n)
	}
	levels := tr.GetLevels()
	if len(levels) < 3 {
		t.Errorf("tree with %d entries only grew to %d levels, expected deeper nesting", n, len(levels))
	}
}

func TestDistSqToPoint(t *testing.T) {
	r := NewRect(0, 0, 2, 2) // centroid (1, 1)
	if got := distSqToPoint(r, 1, 1); got != 0 {
		t.Errorf("distSqToPoint at its own centroid = %v, want 0", got)
	}
	if got := distSqToPoint(r, 4, 1); got != 9 {
		t.Errorf("distSqToPoint = %v, want 9", got)
	}
}

func TestBetterOverlapCandidateTieBreakChain(t *testing.T) {
	if !betterOverlapCandidate(1, 5, 5, 2, 5, 5) {
		t.Errorf("smaller overlap enlargement should win")
	}
	if !betterOverlapCandidate(1, 1, 5, 1, 2, 5) {
		t.Errorf("equal overlap should fall through to smaller area enlargement")
	}
	if !betterOverlapCandidate(1, 1, 3, 1, 1, 5) {
		t.Errorf("equal overlap and area enlargement should fall through to smaller area")
	}
	if betterOverlapCandidate(1, 1, 5, 1, 1, 5) {
		t.Errorf("fully tied candidates should not report strictly better")
	}
}

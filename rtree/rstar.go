package rtree

import (
	"math"
	"sort"
)

// rstarStrategy implements the R*-tree leaf choice (least overlap
// enlargement at the level above leaves, least area enlargement above
// that), the axis/index split, and forced reinsertion, per Beckmann,
// Kriegel, Schneider & Seeger, "The R*-tree: An Efficient and Robust
// Access Method for Points and Rectangles" (1990).
type rstarStrategy struct{}

func (rstarStrategy) chooseLeaf(t *Tree, newEntry *Entry) *Node {
	if t.root.isLeaf {
		return t.root
	}
	cur := t.root
	for {
		childrenAreLeaves := cur.Entries[0].Child.isLeaf
		var idx int
		if childrenAreLeaves {
			idx = pickByOverlapEnlargement(cur.Entries, newEntry.Rect)
		} else {
			idx = pickByAreaEnlargement(cur.Entries, newEntry.Rect)
		}
		next := cur.Entries[idx].Child
		if next.isLeaf {
			return next
		}
		cur = next
	}
}

func (rstarStrategy) overflow(t *Tree, node *Node) *Node {
	if node.IsRoot() {
		return rstarSplit(t, node)
	}

	level := levelFromLeaf(node)
	cache := t.ensureInsertCache()
	if cache.reinsertedAtLevel[level] {
		return rstarSplit(t, node)
	}
	cache.reinsertedAtLevel[level] = true
	reinsert(t, node, level)
	return nil
}

// overlapEnlargementAt scores entries[idx] the way R*'s leaf-parent choice
// and reinsertion both do: the overlap its bounding rect would gain
// against its siblings by absorbing newRect, its plain area enlargement,
// and its current area (the latter two used only as tie-breakers).
func overlapEnlargementAt(entries []*Entry, idx int, newRect Rect) (overlapEnl, areaEnl, area float64) {
	e := entries[idx]
	expanded := Union(e.Rect, newRect)
	var before, after float64
	for j, other := range entries {
		if j == idx {
			continue
		}
		before += IntersectionArea(e.Rect, other.Rect)
		after += IntersectionArea(expanded, other.Rect)
	}
	return after - before, EnlargementArea(e.Rect, newRect), e.Rect.Area()
}

// betterOverlapCandidate reports whether a candidate scored (enl, areaEnl,
// area) is strictly preferable to the current best, using R*'s tie-break
// chain: least overlap enlargement, then least area enlargement, then
// smallest current area. Passing areaEnl in place of overlapEnl for both
// candidate and best degrades this into plain least-area-enlargement
// scoring, which is how pickByAreaEnlargement reuses it.
func betterOverlapCandidate(enl, areaEnl, area, bestEnl, bestAreaEnl, bestArea float64) bool {
	if !nearlyEqual(enl, bestEnl) {
		return enl < bestEnl
	}
	if !nearlyEqual(areaEnl, bestAreaEnl) {
		return areaEnl < bestAreaEnl
	}
	return area < bestArea
}

func pickByOverlapEnlargement(entries []*Entry, newRect Rect) int {
	best := 0
	bestEnl, bestAreaEnl, bestArea := overlapEnlargementAt(entries, 0, newRect)
	for i := 1; i < len(entries); i++ {
		enl, areaEnl, area := overlapEnlargementAt(entries, i, newRect)
		if betterOverlapCandidate(enl, areaEnl, area, bestEnl, bestAreaEnl, bestArea) {
			best, bestEnl, bestAreaEnl, bestArea = i, enl, areaEnl, area
		}
	}
	return best
}

func pickByAreaEnlargement(entries []*Entry, newRect Rect) int {
	best := 0
	bestEnl := EnlargementArea(entries[0].Rect, newRect)
	bestArea := entries[0].Rect.Area()
	for i := 1; i < len(entries); i++ {
		enl := EnlargementArea(entries[i].Rect, newRect)
		area := entries[i].Rect.Area()
		if betterOverlapCandidate(enl, enl, area, bestEnl, bestEnl, bestArea) {
			best, bestEnl, bestArea = i, enl, area
		}
	}
	return best
}

// distribution is one candidate partition of an overflowing node's
// entries into two groups, each satisfying the minEntries floor.
type distribution struct {
	g1, g2       []*Entry
	r1, r2       Rect
	overlap      float64
	perimeter    float64
	area         float64
	canonical    [2][]int // sorted original indices per group, smaller-first group first
}

func keyEquals(a, b [2][]int) bool {
	return intsEqual(a[0], b[0]) && intsEqual(a[1], b[1])
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func makeDistribution(entries []*Entry, order []int, splitSize int) distribution {
	i1 := append([]int(nil), order[:splitSize]...)
	i2 := append([]int(nil), order[splitSize:]...)

	g1 := make([]*Entry, len(i1))
	for i, idx := range i1 {
		g1[i] = entries[idx]
	}
	g2 := make([]*Entry, len(i2))
	for i, idx := range i2 {
		g2[i] = entries[idx]
	}

	r1 := g1[0].Rect
	for _, e := range g1[1:] {
		r1 = Union(r1, e.Rect)
	}
	r2 := g2[0].Rect
	for _, e := range g2[1:] {
		r2 = Union(r2, e.Rect)
	}

	k1 := append([]int(nil), i1...)
	k2 := append([]int(nil), i2...)
	sort.Ints(k1)
	sort.Ints(k2)
	if len(k2) > 0 && len(k1) > 0 && k2[0] < k1[0] {
		k1, k2 = k2, k1
	}

	return distribution{
		g1: g1, g2: g2, r1: r1, r2: r2,
		overlap:   IntersectionArea(r1, r2),
		perimeter: r1.Perimeter() + r2.Perimeter(),
		area:      r1.Area() + r2.Area(),
		canonical: [2][]int{k1, k2},
	}
}

// axisDistributions returns every contiguous distribution (group sizes
// both >= m) for both the min-edge and max-edge sorts on one axis: `all`
// in generation order including cross-sort duplicates (for perimeter-sum
// comparison), and `unique` with duplicate partitions collapsed to their
// first occurrence (for split-index selection).
func axisDistributions(entries []*Entry, m int, lo, hi func(*Entry) float64) (all, unique []distribution) {
	n := len(entries)

	process := func(key func(*Entry) float64) {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return key(entries[order[a]]) < key(entries[order[b]])
		})
		for splitSize := m; splitSize <= n-m; splitSize++ {
			d := makeDistribution(entries, order, splitSize)
			all = append(all, d)
			dup := false
			for _, u := range unique {
				if keyEquals(u.canonical, d.canonical) {
					dup = true
					break
				}
			}
			if !dup {
				unique = append(unique, d)
			}
		}
	}

	process(lo)
	process(hi)
	return
}

func sumPerimeters(ds []distribution) float64 {
	var sum float64
	for _, d := range ds {
		sum += d.perimeter
	}
	return sum
}

// rstarSplit splits an overflowing node (maxEntries+1 entries; it needs at
// least 2*minEntries to form any distribution) by choosing the axis with the smallest total perimeter across
// all its candidate distributions, then the distribution on that axis
// minimizing overlap (tie-broken by combined area).
func rstarSplit(t *Tree, node *Node) *Node {
	entries := node.Entries
	m := t.minEntries

	xAll, xUnique := axisDistributions(entries, m,
		func(e *Entry) float64 { return e.Rect.MinX },
		func(e *Entry) float64 { return e.Rect.MaxX })
	yAll, yUnique := axisDistributions(entries, m,
		func(e *Entry) float64 { return e.Rect.MinY },
		func(e *Entry) float64 { return e.Rect.MaxY })

	xPerim, yPerim := sumPerimeters(xAll), sumPerimeters(yAll)

	unique := xUnique
	if yPerim < xPerim && !nearlyEqual(xPerim, yPerim) {
		unique = yUnique
	}

	best := unique[0]
	for _, d := range unique[1:] {
		if !nearlyEqual(d.overlap, best.overlap) {
			if d.overlap < best.overlap {
				best = d
			}
		} else if d.area < best.area {
			best = d
		}
	}

	sibling := performNodeSplit(node, best.g1, best.g2)
	t.invalidateLevelTable()
	return sibling
}

func (t *Tree) invalidateLevelTable() {
	if t.insertCache != nil {
		t.insertCache.levelTable = nil
	}
}

// reinsert implements R*'s forced reinsertion: the 30% of node's entries
// closest to its centroid are removed and individually reinserted
// (closest-first) at the same level, which may itself cause cascading
// overflows.
func reinsert(t *Tree, node *Node, level int) {
	centroid, ok := node.BoundingRect()
	if !ok {
		panic(errInvariant("reinsert on an entryless node"))
	}
	cx, cy := centroid.Centroid()

	sorted := append([]*Entry(nil), node.Entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return distSqToPoint(sorted[i].Rect, cx, cy) < distSqToPoint(sorted[j].Rect, cx, cy)
	})

	p := int(math.Ceil(0.3 * float64(len(sorted))))
	removed := sorted[:p]
	node.Entries = sorted[p:]
	if !node.IsRoot() {
		refitParentEntry(node)
	}

	for _, e := range removed {
		reinsertEntry(t, e, level)
	}
}

func distSqToPoint(r Rect, px, py float64) float64 {
	rx, ry := r.Centroid()
	dx, dy := rx-px, ry-py
	return dx*dx + dy*dy
}

// reinsertEntry finds the best node at the given level-from-leaf to
// receive e, scanning every node at that level's parent level (so a
// removed entry can land in a different branch of the tree than the one
// it was removed from) and scoring each candidate the same way choose_leaf
// would for that level. If the chosen target overflows, it is split
// directly — this level has already had its one permitted reinsertion for
// this top-level insert.
func reinsertEntry(t *Tree, e *Entry, level int) {
	cache := t.ensureInsertCache()
	table := cache.table(t)

	parentLevel := level + 1
	if parentLevel >= len(table) {
		panic(errInvariant("reinsertEntry found no parent level for its target level"))
	}
	parents := table[parentLevel]
	useOverlap := level == 0

	var bestParent *Node
	bestIdx := -1
	var bestEnl, bestAreaEnl, bestArea float64

	for _, parent := range parents {
		for i := range parent.Entries {
			var enl, areaEnl, area float64
			if useOverlap {
				enl, areaEnl, area = overlapEnlargementAt(parent.Entries, i, e.Rect)
			} else {
				areaEnl = EnlargementArea(parent.Entries[i].Rect, e.Rect)
				enl, area = areaEnl, parent.Entries[i].Rect.Area()
			}
			if bestIdx == -1 || betterOverlapCandidate(enl, areaEnl, area, bestEnl, bestAreaEnl, bestArea) {
				bestParent, bestIdx = parent, i
				bestEnl, bestAreaEnl, bestArea = enl, areaEnl, area
			}
		}
	}
	if bestIdx == -1 {
		panic(errInvariant("reinsertEntry found no candidate node at the target level"))
	}

	target := bestParent.Entries[bestIdx].Child
	target.Entries = append(target.Entries, e)
	if e.Child != nil {
		e.Child.parent = target
	}

	if len(target.Entries) > t.maxEntries {
		sibling := rstarSplit(t, target)
		t.adjustTree(target, sibling)
	} else {
		t.adjustTree(target, nil)
	}
}

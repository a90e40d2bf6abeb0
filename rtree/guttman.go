package rtree

import "math"

// guttmanStrategy implements A. Guttman's original R-tree leaf choice
// (least area enlargement) and overflow handling (quadratic split).
type guttmanStrategy struct{}

func (guttmanStrategy) chooseLeaf(t *Tree, newEntry *Entry) *Node {
	cur := t.root
	for !cur.isLeaf {
		best := 0
		bestEnl := EnlargementArea(cur.Entries[0].Rect, newEntry.Rect)
		bestArea := cur.Entries[0].Rect.Area()
		for i := 1; i < len(cur.Entries); i++ {
			e := cur.Entries[i]
			enl := EnlargementArea(e.Rect, newEntry.Rect)
			area := e.Rect.Area()
			switch {
			case !nearlyEqual(enl, bestEnl) && enl < bestEnl:
				best, bestEnl, bestArea = i, enl, area
			case nearlyEqual(enl, bestEnl) && area < bestArea:
				best, bestEnl, bestArea = i, enl, area
			}
		}
		cur = cur.Entries[best].Child
	}
	return cur
}

func (guttmanStrategy) overflow(t *Tree, node *Node) *Node {
	return quadraticSplit(t, node)
}

// quadraticSplit splits an overflowing node (maxEntries+1 entries) per
// Guttman's quadratic-cost algorithm: pick the two seeds with the most
// wasted area, then repeatedly assign the remaining entry with the
// greatest preference difference to whichever group it prefers most,
// forcing all remaining entries into a group as soon as it is the only
// group still below minEntries that could reach it.
func quadraticSplit(t *Tree, node *Node) *Node {
	entries := node.Entries
	i1, i2 := pickSeeds(entries)

	g1 := []*Entry{entries[i1]}
	g2 := []*Entry{entries[i2]}
	g1Rect, g2Rect := entries[i1].Rect, entries[i2].Rect

	remaining := make([]*Entry, 0, len(entries)-2)
	for i, e := range entries {
		if i != i1 && i != i2 {
			remaining = append(remaining, e)
		}
	}

	for len(remaining) > 0 {
		// A group is underfull if it hasn't yet reached minEntries but still
		// could, given what's left to assign. As soon as only one group is
		// underfull, it must take everything remaining to meet minEntries —
		// checked every iteration, not just when remaining is down to the
		// last possible entries.
		len1, len2 := len(g1), len(g2)
		g1Underfull := len1 < t.minEntries && t.minEntries <= len1+len(remaining)
		g2Underfull := len2 < t.minEntries && t.minEntries <= len2+len(remaining)

		if g1Underfull && !g2Underfull {
			g1 = append(g1, remaining...)
			break
		}
		if g2Underfull && !g1Underfull {
			g2 = append(g2, remaining...)
			break
		}

		idx := pickNext(g1Rect, g2Rect, remaining)
		e := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		d1 := EnlargementArea(g1Rect, e.Rect)
		d2 := EnlargementArea(g2Rect, e.Rect)
		if assignToG1(d1, d2, g1Rect.Area(), g2Rect.Area(), len(g1), len(g2)) {
			g1 = append(g1, e)
			g1Rect = Union(g1Rect, e.Rect)
		} else {
			g2 = append(g2, e)
			g2Rect = Union(g2Rect, e.Rect)
		}
	}

	return performNodeSplit(node, g1, g2)
}

// pickSeeds chooses the pair of entries that would waste the most area if
// grouped together, examining all unordered pairs in input order and
// keeping the first strict maximum.
func pickSeeds(entries []*Entry) (i1, i2 int) {
	maxWaste := math.Inf(-1)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			waste := Union(entries[i].Rect, entries[j].Rect).Area() - entries[i].Rect.Area() - entries[j].Rect.Area()
			if waste > maxWaste {
				maxWaste = waste
				i1, i2 = i, j
			}
		}
	}
	return
}

// pickNext chooses the remaining entry with the greatest difference in
// enlargement preference between the two groups, keeping the first strict
// maximum encountered.
func pickNext(g1Rect, g2Rect Rect, remaining []*Entry) int {
	best := 0
	maxDiff := -1.0
	for i, e := range remaining {
		d1 := EnlargementArea(g1Rect, e.Rect)
		d2 := EnlargementArea(g2Rect, e.Rect)
		diff := d1 - d2
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDiff {
			maxDiff = diff
			best = i
		}
	}
	return best
}

// assignToG1 reports whether an entry with enlargements d1/d2 against the
// two groups should join group 1: smaller enlargement wins, ties broken by
// smaller current area, then fewer current members, then group 1.
func assignToG1(d1, d2, area1, area2 float64, n1, n2 int) bool {
	if !nearlyEqual(d1, d2) {
		return d1 < d2
	}
	if !nearlyEqual(area1, area2) {
		return area1 < area2
	}
	if n1 != n2 {
		return n1 < n2
	}
	return true
}

package rtree

import (
	"testing"

	"github.com/pkg/errors"
)

func TestQueryInvalidLocation(t *testing.T) {
	tr, _ := NewTree(4, 2, Guttman)
	if _, err := tr.Query("bogus"); !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("Query with bogus location error = %v, want wrapping ErrInvalidLocation", err)
	}
}

func TestQueryPointMatchesContainingEntries(t *testing.T) {
	tr, _ := NewTree(4, 2, Guttman)
	tr.Insert("a", NewRect(0, 0, 10, 10))
	tr.Insert("b", NewRect(20, 20, 30, 30))
	tr.Insert("c", NewRect(5, 5, 6, 6))

	seq, err := tr.Query(Point{X: 5, Y: 5})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	got := map[string]bool{}
	for e := range seq {
		got[e.Payload.(string)] = true
	}
	if !got["a"] || !got["c"] || got["b"] {
		t.Errorf("Query(point) matched %v, want {a, c}", got)
	}
}

func TestQueryRectMatchesIntersectingEntries(t *testing.T) {
	tr, _ := NewTree(4, 2, RStar)
	tr.Insert("a", NewRect(0, 0, 2, 2))
	tr.Insert("b", NewRect(5, 5, 7, 7))
	tr.Insert("c", NewRect(1, 1, 3, 3))

	seq, err := tr.Query(NewRect(0, 0, 2.5, 2.5))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	got := map[string]bool{}
	for e := range seq {
		got[e.Payload.(string)] = true
	}
	if !got["a"] || !got["c"] || got["b"] {
		t.Errorf("Query(rect) matched %v, want {a, c}", got)
	}
}

func TestQueryEarlyStopDoesNotPanic(t *testing.T) {
	tr := buildTestTree(t)
	seq, err := tr.Query(NewRect(0, 0, 100, 100))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("early break over Query result visited %d entries, want 3", count)
	}
}

func TestQueryNodesLeavesOnly(t *testing.T) {
	tr := buildTestTree(t)
	seq, err := tr.QueryNodes(NewRect(0, 0, 100, 100), true)
	if err != nil {
		t.Fatalf("QueryNodes: %v", err)
	}
	for n := range seq {
		if !n.IsLeaf() {
			t.Errorf("QueryNodes(leavesOnly=true) yielded a non-leaf node")
		}
	}
}

func TestQueryNodesIncludesInterior(t *testing.T) {
	tr := buildTestTree(t)
	seqLeavesOnly, _ := tr.QueryNodes(NewRect(0, 0, 100, 100), true)
	seqAll, _ := tr.QueryNodes(NewRect(0, 0, 100, 100), false)

	var leavesOnlyCount, allCount int
	for range seqLeavesOnly {
		leavesOnlyCount++
	}
	sawInterior := false
	for n := range seqAll {
		allCount++
		if !n.IsLeaf() {
			sawInterior = true
		}
	}
	if !sawInterior {
		t.Errorf("QueryNodes(leavesOnly=false) never yielded an interior node")
	}
	if allCount <= leavesOnlyCount {
		t.Errorf("QueryNodes(leavesOnly=false) yielded %d nodes, want more than leaves-only's %d", allCount, leavesOnlyCount)
	}
}

func TestSearchWithEntryPredicate(t *testing.T) {
	tr, _ := NewTree(4, 2, Guttman)
	for i := 0; i < 10; i++ {
		x := float64(i)
		tr.Insert(i, NewRect(x, 0, x+1, 1))
	}
	evenOnly := EntryPredicate(func(e *Entry) bool { return e.Payload.(int)%2 == 0 })
	var got []int
	for e := range tr.Search(nil, evenOnly) {
		got = append(got, e.Payload.(int))
	}
	if len(got) != 5 {
		t.Errorf("Search with even-only predicate returned %d entries, want 5", len(got))
	}
	for _, v := range got {
		if v%2 != 0 {
			t.Errorf("Search with even-only predicate returned odd payload %d", v)
		}
	}
}

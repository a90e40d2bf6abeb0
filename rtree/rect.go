// Package rtree implements an in-memory, two-dimensional R-tree spatial
// index with two insertion strategies: Guttman's original R-tree and the
// R*-tree. Entries are axis-aligned rectangles carrying an opaque payload.
package rtree

import "math"

// epsilon is the relative tolerance used when comparing derived floating
// point quantities (areas, enlargements, overlaps) for "equal" during
// strategy tie-breaking. Exact equality is never relied upon.
const epsilon = 1e-5

// Rect is an axis-aligned rectangle in the plane. The zero value is the
// degenerate rectangle at the origin, not an "absent" rect; the package
// reports an absent rect with an ok=false result instead (see UnionAll and
// Node.BoundingRect).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a rectangle, normalizing so Min <= Max on each axis.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Area returns width * height. Degenerate (zero-width or zero-height)
// rectangles have zero area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Perimeter returns the sum of the rectangle's four edge lengths.
func (r Rect) Perimeter() float64 { return 2 * (r.Width() + r.Height()) }

// Centroid returns the rectangle's center point.
func (r Rect) Centroid() (x, y float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Union returns the smallest rectangle containing both a and b.
func Union(a, b Rect) Rect {
	return Rect{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// UnionAll returns the bounding union of rs, or ok=false if rs is empty.
func UnionAll(rs []Rect) (Rect, bool) {
	if len(rs) == 0 {
		return Rect{}, false
	}
	u := rs[0]
	for _, r := range rs[1:] {
		u = Union(u, r)
	}
	return u, true
}

// IntersectionArea returns the area shared by a and b; it is zero when the
// rectangles are disjoint or touch only along an edge.
func IntersectionArea(a, b Rect) float64 {
	dx := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	if dx < 0 {
		dx = 0
	}
	dy := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if dy < 0 {
		dy = 0
	}
	return dx * dy
}

// Intersects reports strict overlap between a and b: rectangles that touch
// only along an edge or at a corner do not intersect.
func Intersects(a, b Rect) bool {
	return a.MinX < b.MaxX && b.MinX < a.MaxX && a.MinY < b.MaxY && b.MinY < a.MaxY
}

// ContainsPoint reports whether (x, y) lies within r, inclusive of the
// border.
func (r Rect) ContainsPoint(x, y float64) bool {
	return r.MinX <= x && x <= r.MaxX && r.MinY <= y && y <= r.MaxY
}

// EnlargementArea returns the area added to r by unioning it with other:
// Area(Union(r, other)) - Area(r).
func EnlargementArea(r, other Rect) float64 {
	return Union(r, other).Area() - r.Area()
}

// nearlyEqual reports whether a and b are equal within the strategy
// tolerance, scaled by the larger magnitude.
func nearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return true
	}
	return math.Abs(a-b)/scale <= epsilon
}

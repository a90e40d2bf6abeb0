// Package shapes provides example payload geometries for the rtree index:
// points, polylines, and polygons in plane coordinates, each able to report
// its own bounding rectangle for insertion. This is sample/demo content, not
// part of the index itself.
package shapes

import (
	"math"

	"github.com/goliath-spatial/rtreeidx/rtree"
)

// PointShape is a single labeled location in the plane.
type PointShape struct {
	X, Y  float64
	Label string
}

// Bounds returns the degenerate rectangle at the point's location.
func (p *PointShape) Bounds() rtree.Rect {
	return rtree.NewRect(p.X, p.Y, p.X, p.Y)
}

// LineString is an ordered sequence of vertices.
type LineString struct {
	Vertices []PointShape
	Label    string
}

// Bounds returns the bounding rectangle of every vertex.
func (l *LineString) Bounds() rtree.Rect {
	if len(l.Vertices) == 0 {
		return rtree.Rect{}
	}
	r := rtree.NewRect(l.Vertices[0].X, l.Vertices[0].Y, l.Vertices[0].X, l.Vertices[0].Y)
	for _, v := range l.Vertices[1:] {
		r = rtree.Union(r, rtree.NewRect(v.X, v.Y, v.X, v.Y))
	}
	return r
}

// Length returns the sum of segment lengths.
func (l *LineString) Length() float64 {
	var total float64
	for i := 0; i+1 < len(l.Vertices); i++ {
		dx := l.Vertices[i+1].X - l.Vertices[i].X
		dy := l.Vertices[i+1].Y - l.Vertices[i].Y
		total += math.Hypot(dx, dy)
	}
	return total
}

// Polygon is a closed ring of vertices (first and last are not required to
// be repeated).
type Polygon struct {
	Vertices []PointShape
	Label    string
}

// Bounds returns the bounding rectangle of every vertex.
func (p *Polygon) Bounds() rtree.Rect {
	if len(p.Vertices) == 0 {
		return rtree.Rect{}
	}
	minX, maxX := p.Vertices[0].X, p.Vertices[0].X
	minY, maxY := p.Vertices[0].Y, p.Vertices[0].Y
	for _, v := range p.Vertices[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return rtree.NewRect(minX, minY, maxX, maxY)
}

// Flatten returns the polygon's vertices as an earcut-ready flat [x0, y0,
// x1, y1, ...] coordinate list.
func (p *Polygon) Flatten() []float64 {
	flat := make([]float64, 0, len(p.Vertices)*2)
	for _, v := range p.Vertices {
		flat = append(flat, v.X, v.Y)
	}
	return flat
}

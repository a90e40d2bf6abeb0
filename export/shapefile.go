// Package export implements the two external collaborators the index
// documents but deliberately excludes from its own dependency surface: a
// persistence exporter and a diagram/PDF renderer. Both are thin, ordinary
// consumers of the rtree public API (GetLeafEntries, GetLevels) — nothing
// here reaches into the tree's internals.
package export

import (
	"fmt"
	"log"

	"github.com/jonas-p/go-shp"

	"github.com/goliath-spatial/rtreeidx/rtree"
	"github.com/goliath-spatial/rtreeidx/shapes"
)

// WritePointShapefile persists every leaf entry in t whose payload is a
// *shapes.PointShape to a point shapefile at path (path.shp/.shx/.dbf).
// Entries with any other payload type are skipped and logged.
func WritePointShapefile(t *rtree.Tree, path string) error {
	writer, err := shp.Create(path, shp.POINT)
	if err != nil {
		return fmt.Errorf("export: create shapefile: %w", err)
	}
	defer writer.Close()

	var written, skipped int
	for _, e := range t.GetLeafEntries() {
		p, ok := e.Payload.(*shapes.PointShape)
		if !ok {
			skipped++
			continue
		}
		writer.Write(&shp.Point{X: p.X, Y: p.Y})
		written++
	}
	if skipped > 0 {
		log.Printf("export: skipped %d non-point leaf entries writing %s", skipped, path)
	}
	log.Printf("export: wrote %d points to %s", written, path)
	return nil
}

// WritePolygonShapefile persists every leaf entry in t whose payload is a
// *shapes.Polygon to a polygon shapefile at path.
func WritePolygonShapefile(t *rtree.Tree, path string) error {
	writer, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return fmt.Errorf("export: create shapefile: %w", err)
	}
	defer writer.Close()

	var written, skipped int
	for _, e := range t.GetLeafEntries() {
		poly, ok := e.Payload.(*shapes.Polygon)
		if !ok {
			skipped++
			continue
		}
		pts := make([]shp.Point, len(poly.Vertices))
		for i, v := range poly.Vertices {
			pts[i] = shp.Point{X: v.X, Y: v.Y}
		}
		writer.Write(&shp.Polygon{
			Box:       shpBox(poly.Bounds()),
			NumParts:  1,
			NumPoints: int32(len(pts)),
			Parts:     []int32{0},
			Points:    pts,
		})
		written++
	}
	if skipped > 0 {
		log.Printf("export: skipped %d non-polygon leaf entries writing %s", skipped, path)
	}
	log.Printf("export: wrote %d polygons to %s", written, path)
	return nil
}

func shpBox(r rtree.Rect) shp.Box {
	return shp.Box{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}

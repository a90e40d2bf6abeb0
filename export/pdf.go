package export

import (
	"log"
	"math"

	"github.com/signintech/gopdf"

	"github.com/goliath-spatial/rtreeidx/rtree"
)

// marginMM is the fixed page margin left around the plotted tree on every page.
const marginMM = 10.0

// WriteLevelDiagramPDF renders one page per tree level, drawing that
// level's node rectangles scaled to fit an A4 landscape page, to path. It
// is the diagramming consumer named in the index's external-collaborator
// notes: a minimal, concrete stand-in for a real diagramming tool, built
// only on GetLevels and Rect.
func WriteLevelDiagramPDF(t *rtree.Tree, path string) error {
	levels := t.GetLevels()
	root, ok := t.Root().BoundingRect()
	if !ok {
		log.Printf("export: empty tree, nothing to plot to %s", path)
		return nil
	}

	pdf := gopdf.GoPdf{}
	pageSize := gopdf.Rect{W: gopdf.PageSizeA4.H, H: gopdf.PageSizeA4.W}
	pdf.Start(gopdf.Config{PageSize: pageSize})

	for level, nodes := range levels {
		pdf.AddPage()
		pdf.SetLineWidth(0.3)

		maxW := pageSize.W - 2*marginMM
		maxH := pageSize.H - 2*marginMM
		scaleX := maxW / root.Width()
		scaleY := maxH / root.Height()
		scale := math.Min(scaleX, scaleY)

		project := func(x, y float64) (px, py float64) {
			px = marginMM + (x-root.MinX)*scale
			// PDF y grows downward; the plane's y grows upward.
			py = marginMM + (root.MaxY-y)*scale
			return
		}

		for _, n := range nodes {
			br, ok := n.BoundingRect()
			if !ok {
				continue
			}
			x1, y1 := project(br.MinX, br.MinY)
			x2, y2 := project(br.MaxX, br.MaxY)
			pdf.RectFromUpperLeftWithStyle(x1, y2, x2-x1, y1-y2, "D")
		}
		log.Printf("export: level %d drawn with %d node rectangles", level, len(nodes))
	}

	if err := pdf.WritePdf(path); err != nil {
		return err
	}
	log.Printf("export: wrote %d-page level diagram to %s", len(levels), path)
	return nil
}

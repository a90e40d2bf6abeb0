package main

import (
	"image/color"

	"github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/goliath-spatial/rtreeidx/rtree"
	"github.com/goliath-spatial/rtreeidx/shapes"
)

var backgroundColor = color.RGBA{20, 20, 24, 255}

// levelColors cycles a distinct outline color per tree level (indexed by
// depth from the root, wrapping around), purely so overlapping node rectangles stay visually
// distinguishable — not a semantic property of the tree.
var levelColors = []color.RGBA{
	{230, 60, 60, 255},
	{230, 160, 60, 255},
	{230, 230, 60, 255},
	{120, 230, 60, 255},
	{60, 200, 230, 255},
	{160, 100, 230, 255},
}

func (tv *treeviz) drawTree(screen *ebiten.Image) {
	levels := tv.tree.GetLevels()
	for level, nodes := range levels {
		if len(tv.showLevels) > 0 && !tv.showLevels[level] {
			continue
		}
		c := levelColors[level%len(levelColors)]
		for _, n := range nodes {
			br, ok := n.BoundingRect()
			if !ok {
				continue
			}
			tv.drawRectOutline(screen, br, c)
		}
	}

	for _, e := range tv.tree.GetLeafEntries() {
		switch p := e.Payload.(type) {
		case *shapes.PointShape:
			sx, sy := tv.vp.worldToScreen(p.X, p.Y)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), 3, color.White, true)
		case *shapes.Polygon:
			tv.drawFilledPolygon(screen, p)
		}
	}
}

func (tv *treeviz) drawRectOutline(screen *ebiten.Image, r rtree.Rect, c color.RGBA) {
	x1, y1 := tv.vp.worldToScreen(r.MinX, r.MaxY) // top-left on screen
	x2, y2 := tv.vp.worldToScreen(r.MaxX, r.MinY) // bottom-right on screen
	vector.StrokeRect(screen, float32(x1), float32(y1), float32(x2-x1), float32(y2-y1), 1, c, true)
}

// drawFilledPolygon triangulates poly with earcut and draws the resulting
// triangles as an ebiten vertex/index buffer.
func (tv *treeviz) drawFilledPolygon(screen *ebiten.Image, poly *shapes.Polygon) {
	flat := poly.Flatten()
	if len(flat) < 6 {
		return
	}
	triangles := earcut.Earcut(flat, nil, 2)
	if len(triangles) == 0 {
		return
	}

	vertices := make([]ebiten.Vertex, len(poly.Vertices))
	for i, v := range poly.Vertices {
		sx, sy := tv.vp.worldToScreen(v.X, v.Y)
		vertices[i] = ebiten.Vertex{
			DstX: float32(sx), DstY: float32(sy),
			SrcX: 0, SrcY: 0,
			ColorR: 0.3, ColorG: 0.6, ColorB: 0.9, ColorA: 0.5,
		}
	}
	indices := make([]uint16, len(triangles))
	for i, idx := range triangles {
		indices[i] = uint16(idx)
	}

	opts := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whitePixel, opts)
}

// whitePixel is a 1x1 white image used as the source texture for solid-
// color triangle fills, the same trick ebiten's own examples use for
// vector.DrawFilledRect-style shapes drawn via DrawTriangles.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// Command treeviz is an interactive viewer for an rtree index: it drives
// live Insert/GetLevels/GetLeafEntries calls against a tree
// of randomly scattered point and polygon payloads and draws the result,
// the way a developer would use it to eyeball split and reinsertion
// behavior while working on the index itself. It is a consumer of the
// public rtree API, not an extension of it.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/goliath-spatial/rtreeidx/export"
	"github.com/goliath-spatial/rtreeidx/rtree"
	"github.com/goliath-spatial/rtreeidx/shapes"
	"github.com/goliath-spatial/rtreeidx/ui"
)

// treeviz holds the demo's state: the index under inspection, its camera,
// and the control panel driving it.
type treeviz struct {
	tree *rtree.Tree
	vp   *viewport

	ui *ui.Controller

	showLevels   map[int]bool
	strategyName string

	isDragging bool
	dragStartX int
	dragStartY int

	screenW, screenH int
}

func newTreeviz(kind rtree.StrategyKind, strategyName string) (*treeviz, error) {
	tr, err := rtree.NewTree(8, 0, kind)
	if err != nil {
		return nil, err
	}
	return &treeviz{
		tree:         tr,
		vp:           newViewport(1024, 768),
		ui:           ui.NewController(),
		showLevels:   map[int]bool{},
		strategyName: strategyName,
		screenW:      1024,
		screenH:      768,
	}, nil
}

func (tv *treeviz) insertRandomPoints(n int, spread float64) {
	for i := 0; i < n; i++ {
		x := (rand.Float64()*2 - 1) * spread
		y := (rand.Float64()*2 - 1) * spread
		p := &shapes.PointShape{X: x, Y: y, Label: fmt.Sprintf("p%d", i)}
		tv.tree.Insert(p, p.Bounds())
	}
}

func (tv *treeviz) insertRandomPolygon(spread, radius float64, sides int) {
	cx := (rand.Float64()*2 - 1) * spread
	cy := (rand.Float64()*2 - 1) * spread
	poly := &shapes.Polygon{Label: "poly"}
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		poly.Vertices = append(poly.Vertices, shapes.PointShape{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	tv.tree.Insert(poly, poly.Bounds())
}

func (tv *treeviz) Update() error {
	if tv.ui.IsInteractingWithUI() {
		return tv.ui.Update()
	}

	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		tv.isDragging = true
		tv.dragStartX, tv.dragStartY = mx, my
	}
	if tv.isDragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			dx := float64(mx - tv.dragStartX)
			dy := float64(my - tv.dragStartY)
			tv.vp.panBy(dx, dy)
			tv.dragStartX, tv.dragStartY = mx, my
		} else {
			tv.isDragging = false
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		tv.vp.zoomAtPoint(dy > 0, float64(mx), float64(my))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		tv.insertRandomPoints(50, 500)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		tv.insertRandomPolygon(500, 30, 6)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		tv.exportCurrentTree()
	}

	return tv.ui.Update()
}

// exportCurrentTree drives both export/ collaborators against the tree's
// current state, reachable from either the E key or the panel's Export
// button.
func (tv *treeviz) exportCurrentTree() {
	if err := export.WritePointShapefile(tv.tree, "treeviz_points"); err != nil {
		log.Printf("export failed: %v", err)
	}
	if err := export.WriteLevelDiagramPDF(tv.tree, "treeviz_levels.pdf"); err != nil {
		log.Printf("export failed: %v", err)
	}
}

func (tv *treeviz) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	tv.drawTree(screen)
	tv.ui.Draw(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  entries=%d  drag to pan, wheel to zoom, I=insert points, P=insert polygon, E=export",
		tv.strategyName, len(tv.tree.GetLeafEntries())))
}

func (tv *treeviz) Layout(outsideWidth, outsideHeight int) (int, int) {
	if tv.screenW != outsideWidth || tv.screenH != outsideHeight {
		tv.vp.screenW, tv.vp.screenH = outsideWidth, outsideHeight
		tv.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	}
	tv.screenW, tv.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	strategy := rtree.Guttman
	name := "guttman"
	if len(os.Args) > 1 && os.Args[1] == "rstar" {
		strategy = rtree.RStar
		name = "rstar"
	}

	tv, err := newTreeviz(strategy, name)
	if err != nil {
		log.Fatalf("treeviz: %v", err)
	}
	tv.buildPanel()
	tv.insertRandomPoints(200, 500)

	ebiten.SetWindowSize(tv.screenW, tv.screenH)
	ebiten.SetWindowTitle("treeviz")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(tv); err != nil {
		log.Fatal(err)
	}
}

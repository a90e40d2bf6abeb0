package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleBarHeight = 20.0
	panelAlpha     = 200
	legendRowH     = 14.0
)

// LevelStat is one row of a Panel's level legend: a color swatch — shared
// with whatever color a caller uses to outline that level's node
// rectangles on screen — and how many nodes sit at that level.
type LevelStat struct {
	Color color.RGBA
	Count int
}

var _ Component = (*Panel)(nil)

// Panel is a chrome frame, draggable by its title bar, that also renders a
// live legend of an indexed tree's levels when Stats is set: one colored
// row per level. Stats is called once per Draw, so it should be cheap
// (GetLevels() is an O(nodes) walk).
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Stats         func() []LevelStat

	parent Container

	isDragging  bool
	dragOffsetX float64
	dragOffsetY float64
	wasPressed  bool
}

func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{X: x, Y: y, Width: width, Height: height, Title: title}
}

func (p *Panel) SetParent(parent Container) {
	p.parent = parent
}

func (p *Panel) Update() error {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if pressed && !p.wasPressed && p.isInTitleBar(fx, fy) {
		p.isDragging = true
		p.dragOffsetX = fx - p.X
		p.dragOffsetY = fy - p.Y
	}
	if !pressed {
		p.isDragging = false
	}
	if p.isDragging {
		p.X = fx - p.dragOffsetX
		p.Y = fy - p.dragOffsetY
	}
	p.wasPressed = pressed
	return nil
}

func (p *Panel) Draw(screen *ebiten.Image) {
	bg := color.RGBA{100, 100, 100, panelAlpha}
	titleBG := color.RGBA{60, 60, 60, panelAlpha}

	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), bg, true)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(titleBarHeight), titleBG, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X)+4, int(p.Y)+4)

	if p.Stats == nil {
		return
	}
	rowY := p.Y + titleBarHeight + 4
	for level, stat := range p.Stats() {
		if rowY+legendRowH > p.Y+p.Height {
			break
		}
		vector.DrawFilledRect(screen, float32(p.X+6), float32(rowY), 10, 10, stat.Color, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("level %d: %d nodes", level, stat.Count), int(p.X)+22, int(rowY)-3)
		rowY += legendRowH
	}
}

func (p *Panel) HandleInput(x, y float64, pressed bool) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

func (p *Panel) Bounds() Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+titleBarHeight
}

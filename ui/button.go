package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ Component = (*Button)(nil)

// Button is a clickable labeled rectangle. badge, if set, is evaluated on
// every Draw and appended to the label in parentheses — used to show a
// live reading (e.g. the tree's current entry count) next to an action
// button without a separate status widget.
type Button struct {
	x, y          float64
	width, height float64
	text          string
	badge         func() string
	onClick       func()
	parent        Container

	isHovered bool
	isPressed bool
}

func NewButton(x, y float64, text string, onClick func()) *Button {
	return &Button{
		x:       x,
		y:       y,
		width:   150,
		height:  28,
		text:    text,
		onClick: onClick,
	}
}

// WithBadge attaches a live status reading to the button's label and
// returns the button, for chaining onto NewButton at construction time.
func (b *Button) WithBadge(badge func() string) *Button {
	b.badge = badge
	return b
}

func (b *Button) SetParent(parent Container) {
	b.parent = parent
}

func (b *Button) Update() error {
	return nil
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case b.isPressed:
		bgColor = color.RGBA{100, 100, 100, 255}
	case b.isHovered:
		bgColor = color.RGBA{180, 180, 180, 255}
	default:
		bgColor = color.RGBA{150, 150, 150, 255}
	}

	origin := b.parent.Bounds()
	x := b.x + origin.X
	y := b.y + origin.Y

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(b.width), float32(b.height), bgColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(b.width), float32(b.height), 1, color.Black, true)

	label := b.text
	if b.badge != nil {
		label = fmt.Sprintf("%s (%s)", b.text, b.badge())
	}
	ebitenutil.DebugPrintAt(screen, label, int(x)+4, int(y)+int(b.height)/2-6)
}

// HandleInput compares against the button's parent-relative coordinates,
// so it only reports correctly for buttons added directly to a Container
// whose own origin is (0, 0) — true of every button cmd/treeviz builds,
// since they're added straight to the root Controller.
func (b *Button) HandleInput(x, y float64, pressed bool) bool {
	if x >= b.x && x <= b.x+b.width && y >= b.y && y <= b.y+b.height {
		b.isHovered = true
		if pressed {
			b.isPressed = true
		} else if b.isPressed {
			b.isPressed = false
			if b.onClick != nil {
				b.onClick()
			}
		}
		return true
	}

	b.isHovered = false
	b.isPressed = false
	return false
}

func (b *Button) Bounds() Rectangle {
	return Rectangle{X: b.x, Y: b.y, Width: b.width, Height: b.height}
}

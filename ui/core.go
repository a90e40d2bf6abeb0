package ui

import "github.com/hajimehoshi/ebiten/v2"

// Component is the basic building block of the control panel: something
// that updates, draws itself, reports its bounds, and tells its parent
// whether a point belongs to it.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() Rectangle
	HandleInput(x, y float64, pressed bool) bool
	SetParent(parent Container)
}

// Container holds child Components and is itself a Component.
type Container interface {
	Component
	AddChild(child Component)
}

// Rectangle is a component's bounds in screen pixels.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

package ui

import "github.com/hajimehoshi/ebiten/v2"

// Controller is the root Container for the control panel: it owns every
// widget and dispatches Update/Draw/HandleInput to them in turn.
type Controller struct {
	children []Component
	bounds   Rectangle
}

var _ Container = (*Controller)(nil)

func NewController() *Controller {
	return &Controller{bounds: Rectangle{0, 0, 800, 600}}
}

func (c *Controller) SetParent(parent Container) {
	// Controller is always the root.
}

func (c *Controller) AddChild(child Component) {
	c.children = append(c.children, child)
	child.SetParent(c)
}

func (c *Controller) Update() error {
	for _, child := range c.children {
		if err := child.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) Draw(screen *ebiten.Image) {
	for _, child := range c.children {
		child.Draw(screen)
	}
}

func (c *Controller) Bounds() Rectangle {
	return c.bounds
}

// HandleInput checks children in reverse add-order, so a widget added
// later (drawn on top) claims the input first.
func (c *Controller) HandleInput(x, y float64, pressed bool) bool {
	for i := len(c.children) - 1; i >= 0; i-- {
		if c.children[i].HandleInput(x, y, pressed) {
			return true
		}
	}
	return false
}

func (c *Controller) UpdateWindowSize(width, height int) {
	c.bounds = Rectangle{0, 0, float64(width), float64(height)}
}

// IsInteractingWithUI reports whether the current mouse or touch press
// lands on a widget, so callers can gate their own input handling (e.g. a
// camera drag) behind the UI not having claimed it first.
func (c *Controller) IsInteractingWithUI() bool {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return c.HandleInput(float64(x), float64(y), true)
	}
	// Deliver the mouse release as well, so a pressed Button fires onClick.
	c.HandleInput(float64(x), float64(y), false)

	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)
	for _, id := range touches {
		tx, ty := ebiten.TouchPosition(id)
		if c.HandleInput(float64(tx), float64(ty), true) {
			return true
		}
	}

	return false
}

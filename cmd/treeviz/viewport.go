package main

import "math"

// viewport maps between screen pixels and the plane coordinates the index
// is built on: a continuous pan/zoom camera over an arbitrary Cartesian
// plane, with a center point and a pixels-per-unit scale. No projection, no
// tile pyramid, no latitude clamping.
type viewport struct {
	centerX, centerY float64
	pixelsPerUnit    float64
	screenW, screenH int
}

const (
	minPixelsPerUnit = 0.01
	maxPixelsPerUnit = 4096
	zoomStepFactor   = 1.2
)

func newViewport(screenW, screenH int) *viewport {
	return &viewport{
		centerX:       0,
		centerY:       0,
		pixelsPerUnit: 4,
		screenW:       screenW,
		screenH:       screenH,
	}
}

// worldToScreen converts a plane coordinate to a screen pixel coordinate.
// Screen y grows downward; plane y grows upward, so the y axis is flipped.
func (v *viewport) worldToScreen(x, y float64) (sx, sy float64) {
	sx = float64(v.screenW)/2 + (x-v.centerX)*v.pixelsPerUnit
	sy = float64(v.screenH)/2 - (y-v.centerY)*v.pixelsPerUnit
	return
}

// screenToWorld is worldToScreen's inverse.
func (v *viewport) screenToWorld(sx, sy float64) (x, y float64) {
	x = v.centerX + (sx-float64(v.screenW)/2)/v.pixelsPerUnit
	y = v.centerY - (sy-float64(v.screenH)/2)/v.pixelsPerUnit
	return
}

// panBy moves the camera center by a screen-pixel offset: positive dx (a
// drag to the right) moves the camera west, so the plane follows the cursor.
func (v *viewport) panBy(dx, dy float64) {
	v.centerX -= dx / v.pixelsPerUnit
	v.centerY += dy / v.pixelsPerUnit
}

// zoomAtPoint changes the camera scale by one step while holding the plane
// point under (screenX, screenY) fixed on screen.
func (v *viewport) zoomAtPoint(zoomIn bool, screenX, screenY float64) {
	beforeX, beforeY := v.screenToWorld(screenX, screenY)

	if zoomIn {
		v.pixelsPerUnit = math.Min(maxPixelsPerUnit, v.pixelsPerUnit*zoomStepFactor)
	} else {
		v.pixelsPerUnit = math.Max(minPixelsPerUnit, v.pixelsPerUnit/zoomStepFactor)
	}

	afterX, afterY := v.screenToWorld(screenX, screenY)
	v.centerX += beforeX - afterX
	v.centerY += beforeY - afterY
}

// visibleWidthHeight returns how much of the plane, in plane units, is
// currently visible.
func (v *viewport) visibleWidthHeight() (w, h float64) {
	return float64(v.screenW) / v.pixelsPerUnit, float64(v.screenH) / v.pixelsPerUnit
}

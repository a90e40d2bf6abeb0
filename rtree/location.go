package rtree

import "github.com/pkg/errors"

// Point is a location in the plane, accepted by Query/QueryNodes as a
// point-matching location.
type Point struct {
	X, Y float64
}

// Location is anything Query/QueryNodes can interpret as a search
// location: a Point, a Rect, a 2-element array/slice of float64
// (interpreted as a point), or a 4-element array/slice of float64
// (interpreted as minX, minY, maxX, maxY). Any other shape is rejected
// with ErrInvalidLocation.
type Location interface{}

// resolveLocation normalizes loc into a matcher rectangle and a flag
// telling the caller whether it should be matched as a point (inclusive
// containment) or as a rectangle (strict intersection).
func resolveLocation(loc Location) (r Rect, isPoint bool, err error) {
	switch v := loc.(type) {
	case Point:
		return Rect{MinX: v.X, MinY: v.Y, MaxX: v.X, MaxY: v.Y}, true, nil
	case Rect:
		return v, false, nil
	case [2]float64:
		return Rect{MinX: v[0], MinY: v[1], MaxX: v[0], MaxY: v[1]}, true, nil
	case [4]float64:
		return NewRect(v[0], v[1], v[2], v[3]), false, nil
	case []float64:
		switch len(v) {
		case 2:
			return Rect{MinX: v[0], MinY: v[1], MaxX: v[0], MaxY: v[1]}, true, nil
		case 4:
			return NewRect(v[0], v[1], v[2], v[3]), false, nil
		default:
			return Rect{}, false, errors.Wrapf(ErrInvalidLocation, "[]float64 of length %d, want 2 or 4", len(v))
		}
	default:
		return Rect{}, false, errors.Wrapf(ErrInvalidLocation, "%T is not a Point, Rect, [2]float64, or [4]float64", loc)
	}
}

// matches reports whether the node/entry bounding rectangle candidate
// satisfies loc's matcher rectangle: inclusive point containment for a
// point location, strict intersection for a rectangle location.
func matches(candidate, loc Rect, isPoint bool) bool {
	if isPoint {
		return candidate.ContainsPoint(loc.MinX, loc.MinY)
	}
	return Intersects(candidate, loc)
}

package rtree

import "github.com/pkg/errors"

// Sentinel errors for the two recoverable error kinds: configuration errors
// (raised at construction) and invalid-location errors (raised at the query
// boundary). Call sites wrap these with errors.Wrapf for context; callers
// match the underlying sentinel with errors.Is.
var (
	// ErrConfiguration is returned by NewTree when maxEntries/minEntries
	// are out of range.
	ErrConfiguration = errors.New("rtree: invalid tree configuration")

	// ErrInvalidLocation is returned by Query/QueryNodes when the location
	// argument is not a Point, Rect, [2]float64, [4]float64, or a []float64
	// of length 2 or 4.
	ErrInvalidLocation = errors.New("rtree: invalid query location")
)

// errInvariant builds the panic value used for invariant violations: bugs
// in the implementation (an empty bounding rect on a non-root node, an
// unknown strategy, a parent link pointing at a node that does not
// reference it back) rather than conditions a caller can trigger or
// recover from. These fault-stop rather than propagate as errors.
func errInvariant(msg string) error {
	return errors.New("rtree: invariant violation: " + msg)
}

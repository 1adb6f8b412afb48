package geometry

import "github.com/pkg/errors"

// Every failure in this package wraps exactly one of these sentinels, so
// callers can match on the kind with errors.Is and still read the context in
// the message.
var (
	ErrInvalidCoordinate    = errors.New("coordinate is not a finite number")
	ErrCoincidentPoints     = errors.New("points coincide")
	ErrCoincidentEdges      = errors.New("edges coincide")
	ErrCoincidentLines      = errors.New("lines coincide")
	ErrLinesParallel        = errors.New("lines are parallel")
	ErrLinesNotParallel     = errors.New("lines are not parallel")
	ErrNoIntersection       = errors.New("no intersection within the segments")
	ErrInsufficientVertices = errors.New("not enough vertices for a polygon")
	ErrInvalidGeometry      = errors.New("invalid geometry")
)

var errorKinds = []error{
	ErrInvalidCoordinate,
	ErrCoincidentPoints,
	ErrCoincidentEdges,
	ErrCoincidentLines,
	ErrLinesParallel,
	ErrLinesNotParallel,
	ErrNoIntersection,
	ErrInsufficientVertices,
	ErrInvalidGeometry,
}

// IsGeometryError reports whether err wraps one of the error kinds above.
func IsGeometryError(err error) bool {
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// The Must* constructors are for literals known to be valid, mostly in tests
// and fixtures. They panic with the construction error, and
// HandlePanicRecover turns that panic back into an error at an API boundary.
func throw(err error) {
	panic(err)
}

// Convert a recovered geometry error back into an error. Any other panic value
// is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(error); ok && IsGeometryError(err) {
			return err
		}
		panic(r)
	}
	return nil
}

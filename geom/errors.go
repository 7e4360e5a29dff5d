package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOnPolyline is returned when a point that must lie on a polyline
	// doesn't.
	ErrNotOnPolyline = errors.New("point is not on polyline")
	// ErrNoIntersection is returned when a probe line misses a polyline.
	ErrNoIntersection = errors.New("no intersection")
	// ErrDisjoint is returned when polylines that must share an endpoint
	// don't.
	ErrDisjoint = errors.New("polylines do not share an endpoint")
	// ErrDegenerate is returned when an operation would produce a polyline
	// with fewer than two points or a polygon without area.
	ErrDegenerate = errors.New("degenerate geometry")
)

// Error records a failed geometric operation.
type Error struct {
	// Op names the operation, such as "split" or "merge".
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "geom: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func opError(op string, err error, format string, args ...any) error {
	if format != "" {
		err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
	return &Error{Op: op, Err: err}
}

// IsDegenerate reports whether err is a recoverable geometric failure
// produced by this package.
func IsDegenerate(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

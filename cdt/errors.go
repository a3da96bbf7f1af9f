package cdt

import "github.com/pkg/errors"

// Threading errors up through the recursive insertion and swapping
// machinery would add a ton of complexity to the code. Instead, we use
// panics internally, and the public constructors recover to convert them
// to errors.

// ErrorKind classifies a construction failure. Validation kinds mean the
// caller handed us bad input and can retry with different data. Anything
// that is not a validation failure panics with a plain error instead and
// is allowed to escape: it indicates a bug in the triangulator itself.
type ErrorKind int

const (
	// InsufficientPoints: fewer than three input points.
	InsufficientPoints ErrorKind = iota
	// CollinearInput: every input point lies on a single line.
	CollinearInput
	// CrossingSegments: two input segments cross in their interiors, or
	// name the same endpoint pair twice.
	CrossingSegments
	// ConstrainedEdgeHit: a point insertion landed on a constrained edge.
	ConstrainedEdgeHit
	// DegenerateSegment: a segment being inserted runs through the
	// interior of an existing constraint.
	DegenerateSegment
)

func (k ErrorKind) String() string {
	switch k {
	case InsufficientPoints:
		return "insufficient points"
	case CollinearInput:
		return "collinear input"
	case CrossingSegments:
		return "crossing segments"
	case ConstrainedEdgeHit:
		return "constrained edge hit"
	case DegenerateSegment:
		return "degenerate segment"
	}
	return "unknown"
}

// Error is a validation failure surfaced by the public constructors.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Panic with a validation *Error. Recovered at the API boundary.
func failf(kind ErrorKind, format string, args ...interface{}) {
	panic(&Error{Kind: kind, msg: errors.Errorf(format, args...).Error()})
}

// Panic with an internal-consistency error. These are precondition
// violations; they are never converted to a validation error and escape
// through the public API as a panic.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandlePanicRecover converts a recovered validation panic into an
// error. Any other panic value is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if verr, ok := r.(*Error); ok {
			return verr
		}
		panic(r)
	}
	return nil
}

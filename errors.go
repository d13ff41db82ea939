package vpath

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVerb is returned when a command is built from an unrecognized verb.
	ErrUnknownVerb = errors.New("vpath: unknown command verb")

	// ErrPointCount is returned when a command receives the wrong number of points.
	ErrPointCount = errors.New("vpath: wrong number of points for command")

	// ErrIndexOutOfRange is returned when a subpath or command index does not exist.
	ErrIndexOutOfRange = errors.New("vpath: index out of range")

	// ErrNotSplit is returned when unsplitting a command whose end point
	// was not created by a split.
	ErrNotSplit = errors.New("vpath: command end point is not a split point")

	// ErrInvalidConversion is returned for conversions that can never hold,
	// such as converting to or from a move.
	ErrInvalidConversion = errors.New("vpath: invalid command conversion")

	// ErrSplitOutOfRange is returned when a split parameter is outside (0, 1).
	ErrSplitOutOfRange = errors.New("vpath: split parameter must be in (0, 1)")

	// ErrUnsupported is returned by batch operations for combinations that
	// are not implemented.
	ErrUnsupported = errors.New("vpath: operation not yet supported")

	// ErrMissingCurrentPoint is returned when a path command needs a current
	// point and none exists yet.
	ErrMissingCurrentPoint = errors.New("vpath: missing current point")

	// ErrDiscontinuous is returned when a command does not start where the
	// previous command ended.
	ErrDiscontinuous = errors.New("vpath: discontinuous commands")
)

// ParseError describes a malformed path string.
type ParseError struct {
	Pos int    // byte offset of the offending token
	Msg string // human readable description
	Err error  // optional underlying sentinel
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vpath: bad path at position %d: %s", e.Pos+1, e.Msg)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// indexError wraps ErrIndexOutOfRange with the offending coordinates.
func indexError(what string, idx, n int) error {
	return fmt.Errorf("%w: %s %d (have %d)", ErrIndexOutOfRange, what, idx, n)
}

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a backend lacks the capability an
	// operation needs, e.g. a range query against a hash index.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrInvalidSearch is returned for search descriptors that contradict
	// themselves, e.g. an index on one label combined with another label.
	ErrInvalidSearch = errors.New("invalid search")

	// ErrVertexNotFound is returned when an operation refers to a vertex
	// that does not exist.
	ErrVertexNotFound = errors.New("vertex not found")
)

// UnsupportedError describes an operation rejected for lack of capability.
//
// It matches ErrUnsupported with errors.Is.
type UnsupportedError struct {
	Op         string
	Capability Capabilities
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s requires %s", ErrUnsupported, e.Op, e.Capability)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

func unsupported(op string, c Capabilities) error {
	return &UnsupportedError{Op: op, Capability: c}
}

package tensor

import (
	"errors"
	"fmt"
)

// ErrShape is returned (wrapped in a *ShapeError) when operand dimensions are
// incompatible for the requested operation.
var ErrShape = errors.New("shape mismatch")

// ShapeError provides detailed information about a shape mismatch.
type ShapeError struct {
	Op    string // Operation that failed (e.g., "dot", "add")
	Left  Shape  // Shape of the left (or only) operand
	Right Shape  // Shape of the right operand, zero if not applicable
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %s vs %s", e.Op, ErrShape, e.Left, e.Right)
}

// Unwrap returns ErrShape so callers can match with errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

func shapeError(op string, left, right Shape) error {
	return &ShapeError{Op: op, Left: left, Right: right}
}

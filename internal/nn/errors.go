package nn

import (
	"errors"

	"github.com/born-ml/seqnet/internal/tensor"
)

// ErrInvalidState is returned when a unit or loss is driven out of order,
// e.g. Backward before Forward or Update before Backward.
var ErrInvalidState = errors.New("invalid state")

// checkShape returns a *tensor.ShapeError when got differs from want.
func checkShape(op string, got, want tensor.Shape) error {
	if got != want {
		return &tensor.ShapeError{Op: op, Left: got, Right: want}
	}
	return nil
}

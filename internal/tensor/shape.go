package tensor

import "fmt"

// Shape represents the dimensions of a 2-D tensor as (rows, cols).
type Shape [2]int

// Rows returns the number of rows.
func (s Shape) Rows() int {
	return s[0]
}

// Cols returns the number of columns.
func (s Shape) Cols() int {
	return s[1]
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	return s[0] * s[1]
}

// IsEmpty reports whether the shape holds no elements.
func (s Shape) IsEmpty() bool {
	return s.NumElements() == 0
}

// Validate checks that no dimension is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// String formats the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s[0], s[1])
}

// broadcastsRow reports whether other can be applied element-wise to s,
// either because the shapes match or because other is a single row with the
// same column count.
func (s Shape) broadcastsRow(other Shape) (same, ok bool) {
	switch {
	case s == other:
		return true, true
	case other[0] == 1 && other[1] == s[1]:
		return false, true
	default:
		return false, false
	}
}

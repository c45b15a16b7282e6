// Package tensor implements the dense 2-D matrix used throughout seqnet.
//
// A Tensor is a rectangular float64 container stored row-major in a flat
// slice, which lets the heavy kernels hand their buffers straight to gonum.
// Every operation that produces a tensor allocates a fresh buffer, so a
// result never aliases one of its operands.
package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense row-major 2-D matrix of float64 values.
//
// The zero-sized tensor (0, 0) is valid and denotes an empty or
// uninitialized value.
//
// Example:
//
//	t := tensor.New(3, 4)
//	t.Set(1, 2, 0.5)
//	v := t.At(1, 2) // 0.5
type Tensor struct {
	rows int
	cols int
	data []float64 // len(data) == rows*cols
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int {
	return t.rows
}

// Cols returns the number of columns.
func (t *Tensor) Cols() int {
	return t.cols
}

// Shape returns the tensor's (rows, cols).
func (t *Tensor) Shape() Shape {
	return Shape{t.rows, t.cols}
}

// NumElements returns rows*cols.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// IsEmpty reports whether the tensor holds no elements.
func (t *Tensor) IsEmpty() bool {
	return t == nil || len(t.data) == 0
}

// Data returns the row-major backing slice.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at row i, column j.
// Panics if indices are out of bounds.
func (t *Tensor) At(i, j int) float64 {
	return t.data[t.offset(i, j)]
}

// Set sets the element at row i, column j.
// Panics if indices are out of bounds.
func (t *Tensor) Set(i, j int, value float64) {
	t.data[t.offset(i, j)] = value
}

func (t *Tensor) offset(i, j int) int {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for shape %s", i, j, t.Shape()))
	}
	return i*t.cols + j
}

// Row returns a view of row i.
func (t *Tensor) Row(i int) []float64 {
	if i < 0 || i >= t.rows {
		panic(fmt.Sprintf("row %d out of bounds for shape %s", i, t.Shape()))
	}
	return t.data[i*t.cols : (i+1)*t.cols]
}

// ToRows returns a deep copy of the tensor as nested slices.
func (t *Tensor) ToRows() [][]float64 {
	rows := make([][]float64, t.rows)
	for i := range rows {
		rows[i] = append([]float64(nil), t.Row(i)...)
	}
	return rows
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := New(t.rows, t.cols)
	copy(out.data, t.data)
	return out
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%s[\n", t.Shape())
	for i := 0; i < t.rows; i++ {
		sb.WriteString("  [")
		for j, v := range t.Row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%8.4f", v)
		}
		sb.WriteString("]\n")
	}
	sb.WriteString("]")
	return sb.String()
}

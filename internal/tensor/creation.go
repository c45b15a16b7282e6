package tensor

import "fmt"

// New creates a zero-filled tensor with the given dimensions.
// Panics if either dimension is negative.
//
// Example:
//
//	t := tensor.New(3, 4)
func New(rows, cols int) *Tensor {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		panic(err)
	}
	return &Tensor{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return New(shape.Rows(), shape.Cols())
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape.Rows(), shape.Cols(), 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	gamma := tensor.Full(1, 8, 1.0)
func Full(rows, cols int, value float64) *Tensor {
	t := New(rows, cols)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// FromRows creates a tensor from literal nested data.
// The values are copied. An empty outer slice yields the (0, 0) tensor;
// rows of differing lengths fail with a ShapeError.
//
// Example:
//
//	x, err := tensor.FromRows([][]float64{{0, 1}, {1, 0}})
func FromRows(values [][]float64) (*Tensor, error) {
	if len(values) == 0 {
		return New(0, 0), nil
	}

	cols := len(values[0])
	t := New(len(values), cols)
	for i, row := range values {
		if len(row) != cols {
			return nil, shapeError("from rows", Shape{1, len(row)}, Shape{1, cols})
		}
		copy(t.data[i*cols:], row)
	}
	return t, nil
}

// MustFromRows is like FromRows but panics on ragged input.
// Intended for literals in tests and examples.
func MustFromRows(values [][]float64) *Tensor {
	t, err := FromRows(values)
	if err != nil {
		panic(err)
	}
	return t
}

// FromSlice creates a tensor from a row-major slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, rows, cols int) (*Tensor, error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}
	if rows*cols != len(data) {
		return nil, fmt.Errorf("%w: shape %s requires %d elements, but got %d",
			ErrShape, Shape{rows, cols}, rows*cols, len(data))
	}

	t := New(rows, cols)
	copy(t.data, data)
	return t, nil
}

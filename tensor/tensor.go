// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/seqnet/internal/tensor"
)

// Type aliases for public API

// Tensor is a dense row-major 2-D matrix of float64 values.
type Tensor = tensor.Tensor

// Shape is a tensor's (rows, cols).
type Shape = tensor.Shape

// ShapeError reports an operation applied to incompatible shapes.
type ShapeError = tensor.ShapeError

// ErrShape is matched by every ShapeError.
var ErrShape = tensor.ErrShape

// New creates a zero-filled (rows, cols) tensor.
func New(rows, cols int) *Tensor {
	return tensor.New(rows, cols)
}

// Zeros creates a zero-filled tensor of the given shape.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor of the given shape filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a (rows, cols) tensor filled with value.
func Full(rows, cols int, value float64) *Tensor {
	return tensor.Full(rows, cols, value)
}

// FromRows creates a tensor from a rectangular slice of rows.
func FromRows(values [][]float64) (*Tensor, error) {
	return tensor.FromRows(values)
}

// MustFromRows is like FromRows but panics on ragged input.
func MustFromRows(values [][]float64) *Tensor {
	return tensor.MustFromRows(values)
}

// FromSlice creates a (rows, cols) tensor from row-major data.
func FromSlice(data []float64, rows, cols int) (*Tensor, error) {
	return tensor.FromSlice(data, rows, cols)
}

// Dot returns the matrix product a·b.
func Dot(a, b *Tensor) (*Tensor, error) {
	return tensor.Dot(a, b)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense 2-D matrices used by
// seqnet.
//
// # Overview
//
// A Tensor is a (rows, cols) float64 matrix stored row-major. Every
// operation allocates a fresh result, so results never alias operands.
//
//   - Creation: New, Zeros, Ones, Full, FromRows, FromSlice
//   - Algebra: Dot, Transpose, Add, Sub, Mul (element-wise), Scale
//   - Reductions: ColumnSum, Sum
//
// Add, Sub and Mul accept either an operand of identical shape or a
// (1, cols) row on the right, which is broadcast to every row.
//
// # Errors
//
// Incompatible shapes are reported as a *ShapeError that matches ErrShape
// with errors.Is:
//
//	c, err := tensor.Dot(a, b)
//	if errors.Is(err, tensor.ErrShape) {
//	    // inner dimensions differ
//	}
//
// # Example
//
//	a := tensor.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b := tensor.MustFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
//	c, _ := tensor.Dot(a, b) // [[58 64] [139 154]]
package tensor

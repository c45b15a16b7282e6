// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/seqnet/tensor"
)

// TestPublicAPI verifies that the facade exposes the internal implementation.
func TestPublicAPI(t *testing.T) {
	a := tensor.MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := tensor.Ones(tensor.Shape{2, 2})

	c, err := tensor.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 3}, {7, 7}}, c.ToRows())

	_, err = tensor.Dot(a, tensor.New(3, 1))
	require.ErrorIs(t, err, tensor.ErrShape)

	var shapeErr *tensor.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, tensor.Shape{2, 2}, shapeErr.Left)

	_, err = tensor.FromSlice([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, tensor.ErrShape)
}

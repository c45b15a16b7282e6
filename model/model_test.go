// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/seqnet/model"
	"github.com/born-ml/seqnet/nn"
	"github.com/born-ml/seqnet/optim"
	"github.com/born-ml/seqnet/random"
	"github.com/born-ml/seqnet/tensor"
)

// TestTrainThroughPublicAPI fits y = 2x - 1 using only the public packages.
func TestTrainThroughPublicAPI(t *testing.T) {
	m := model.New()
	m.Add(nn.NewDense(1, 1, nn.WithSource(random.NewSource(4))))

	x := tensor.MustFromRows([][]float64{{0}, {1}, {2}, {3}})
	y := tensor.MustFromRows([][]float64{{-1}, {1}, {3}, {5}})

	history, err := m.Train(x, y, nn.NewMSELoss(), optim.NewSGD(optim.SGDConfig{LR: 0.05}),
		model.TrainConfig{Epochs: 500})
	require.NoError(t, err)

	assert.Len(t, history.Epochs, 500)
	assert.Less(t, history.BestLoss, 1e-4)

	dense, ok := m.Unit(0).(*nn.Dense)
	require.True(t, ok)
	assert.InDelta(t, 2.0, dense.Weights().At(0, 0), 1e-2)
	assert.InDelta(t, -1.0, dense.Bias().At(0, 0), 1e-2)
}

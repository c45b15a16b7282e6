package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/tensor"
)

// TestMSELoss tests the loss value and its gradient.
func TestMSELoss(t *testing.T) {
	mse := nn.NewMSELoss()
	pred := tensor.MustFromRows([][]float64{{1, 2}, {3, 4}})
	target := tensor.MustFromRows([][]float64{{1, 0}, {0, 4}})

	loss, err := mse.Forward(pred, target)
	require.NoError(t, err)
	assert.InDelta(t, (0+4+9+0)/4.0, loss, 1e-12)

	grad, err := mse.Backward()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1.5, 0}}, grad.ToRows())
}

// TestMSELoss_Zero tests that identical inputs give zero loss and gradient.
func TestMSELoss_Zero(t *testing.T) {
	mse := nn.NewMSELoss()
	x := randomInput(80, 3, 2)

	loss, err := mse.Forward(x, x.Clone())
	require.NoError(t, err)
	assert.Equal(t, 0.0, loss)

	grad, err := mse.Backward()
	require.NoError(t, err)
	assert.Equal(t, 0.0, grad.Sum())
}

// TestMSELoss_GradientCheck compares Backward with finite differences.
func TestMSELoss_GradientCheck(t *testing.T) {
	mse := nn.NewMSELoss()
	pred := randomInput(81, 4, 3)
	target := randomInput(82, 4, 3)

	objective := func() float64 {
		loss, err := mse.Forward(pred, target)
		require.NoError(t, err)
		return loss
	}

	_ = objective()
	grad, err := mse.Backward()
	require.NoError(t, err)

	assert.InDeltaSlice(t, numericGrad(pred.Data(), objective), grad.Data(), 1e-8)
}

// TestMSELoss_Errors tests shape mismatches and out-of-order calls.
func TestMSELoss_Errors(t *testing.T) {
	mse := nn.NewMSELoss()

	_, err := mse.Backward()
	require.ErrorIs(t, err, nn.ErrInvalidState)

	_, err = mse.Forward(tensor.New(2, 1), tensor.New(1, 2))
	require.ErrorIs(t, err, tensor.ErrShape)

	_, err = mse.Forward(tensor.New(0, 1), tensor.New(0, 1))
	require.ErrorIs(t, err, tensor.ErrShape)

	_, err = mse.Forward(tensor.New(2, 1), tensor.New(2, 1))
	require.NoError(t, err)
	_, err = mse.Backward()
	require.NoError(t, err)
	_, err = mse.Backward()
	require.ErrorIs(t, err, nn.ErrInvalidState)
}

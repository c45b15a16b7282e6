package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/random"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Every unit satisfies the Unit contract.
var (
	_ nn.Unit = (*nn.Dense)(nil)
	_ nn.Unit = (*nn.ReLU)(nil)
	_ nn.Unit = (*nn.Sigmoid)(nil)
	_ nn.Unit = (*nn.BatchNorm)(nil)
	_ nn.Unit = (*nn.Dropout)(nil)

	_ nn.ModeSetter = (*nn.Dropout)(nil)
	_ nn.Loss       = (*nn.MSELoss)(nil)
)

// randomInput returns a (rows, cols) tensor with entries in [-1, 1).
func randomInput(seed uint64, rows, cols int) *tensor.Tensor {
	t := tensor.New(rows, cols)
	random.NewSource(seed).FillUniform(t, -1, 1)
	return t
}

// weightedSum returns Σ out ⊙ w, a scalar objective whose gradient with
// respect to out is w itself.
func weightedSum(t *testing.T, out, w *tensor.Tensor) float64 {
	t.Helper()
	prod, err := out.Mul(w)
	require.NoError(t, err)
	return prod.Sum()
}

// numericGrad estimates ∂f/∂target with central differences, perturbing the
// live slice target in place and restoring it afterwards.
func numericGrad(target []float64, f func() float64) []float64 {
	original := append([]float64(nil), target...)
	grad := fd.Gradient(nil, func(x []float64) float64 {
		copy(target, x)
		return f()
	}, original, &fd.Settings{Formula: fd.Central})
	copy(target, original)
	return grad
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	data := tensor.MustFromRows([][]float64{{1, 2, 3}})
	param := nn.NewParameter("test_param", data)

	assert.Equal(t, "test_param", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.Equal(t, 3, param.NumElements())
	assert.Nil(t, param.Grad())

	grad := tensor.MustFromRows([][]float64{{0.1, 0.2, 0.3}})
	param.SetGrad(grad)
	assert.Same(t, grad, param.Grad())

	param.ZeroGrad()
	assert.Nil(t, param.Grad())
}

// TestGlorot tests that initial weights respect the Glorot bound.
func TestGlorot(t *testing.T) {
	bound := nn.GlorotBound(4, 2)
	assert.InDelta(t, 1.0, bound, 1e-12) // sqrt(6/6)

	w := nn.Glorot(4, 2, random.NewSource(7))
	assert.Equal(t, tensor.Shape{4, 2}, w.Shape())
	for _, v := range w.Data() {
		assert.GreaterOrEqual(t, v, -bound)
		assert.Less(t, v, bound)
	}
}

// TestOptions tests WithName and WithSource.
func TestOptions(t *testing.T) {
	a := nn.NewDense(3, 2, nn.WithSource(random.NewSource(11)))
	b := nn.NewDense(3, 2, nn.WithSource(random.NewSource(11)), nn.WithName("hidden"))

	assert.Equal(t, a.Weights().Data(), b.Weights().Data())
	assert.Equal(t, "Dense", a.Name())
	assert.Equal(t, "hidden", b.Name())
}

package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/seqnet/internal/tensor"
)

// DefaultBatchNormEpsilon is the variance stabilizer used by NewBatchNorm.
const DefaultBatchNormEpsilon = 1e-5

// BatchNorm applies Batch Normalization over the batch dimension.
//
// Formula: Y = gamma * (X - mean(X)) / sqrt(var(X) + eps) + beta
//
// Where:
//   - mean and variance are computed per feature (column) over the batch
//   - variance is biased (divides by the batch size)
//   - gamma is the learnable scale parameter [1, features], initialized to 1
//   - beta is the learnable shift parameter [1, features], initialized to 0
//
// Only batch statistics are used; there are no running estimates, so
// inference on a single row normalizes that row against itself.
//
// Example:
//
//	bn := nn.NewBatchNorm(16)
//	output, err := bn.Forward(hidden) // [batch, 16] -> [batch, 16]
type BatchNorm struct {
	observed

	name     string
	features int
	epsilon  float64
	gamma    *Parameter
	beta     *Parameter

	// Cached by Forward, consumed by Backward.
	xHat *tensor.Tensor // normalized input [batch, features]
	std  *tensor.Tensor // sqrt(var + eps) [1, features]
}

// NewBatchNorm creates a new BatchNorm layer over the given number of features.
// Panics if features is not positive.
func NewBatchNorm(features int, opts ...Option) *BatchNorm {
	if features <= 0 {
		panic(fmt.Sprintf("NewBatchNorm: features must be positive, got %d", features))
	}
	o := buildOptions("BatchNormalization", opts)

	return &BatchNorm{
		observed: observed{
			in:  tensor.Shape{0, features},
			out: tensor.Shape{0, features},
		},
		name:     o.name,
		features: features,
		epsilon:  DefaultBatchNormEpsilon,
		gamma:    NewParameter("gamma", tensor.Full(1, features, 1.0)),
		beta:     NewParameter("beta", tensor.New(1, features)),
	}
}

// Forward normalizes each feature over the batch, then scales and shifts.
//
// Algorithm:
//  1. mean = column_sum(x) / m
//  2. centered = x - mean
//  3. variance = column_sum(centered²) / m
//  4. std = sqrt(variance + eps)
//  5. x_hat = centered / std
//  6. output = gamma * x_hat + beta
//
// Gradients from the previous step are cleared.
func (b *BatchNorm) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	zeroGrads(b.gamma, b.beta)

	if input.Cols() != b.features || input.Rows() == 0 {
		return nil, &tensor.ShapeError{Op: b.name + " forward", Left: input.Shape(), Right: tensor.Shape{1, b.features}}
	}
	m := float64(input.Rows())

	mean := input.ColumnSum().Scale(1 / m)
	centered, err := input.Sub(mean)
	if err != nil {
		return nil, err
	}
	squared, err := centered.Mul(centered)
	if err != nil {
		return nil, err
	}
	variance := squared.ColumnSum().Scale(1 / m)

	std := variance.Map(func(v float64) float64 {
		return math.Sqrt(v + b.epsilon)
	})
	invStd := std.Map(func(s float64) float64 {
		return 1 / s
	})
	xHat, err := centered.Mul(invStd)
	if err != nil {
		return nil, err
	}

	scaled, err := xHat.Mul(b.gamma.Tensor())
	if err != nil {
		return nil, err
	}
	output, err := scaled.Add(b.beta.Tensor())
	if err != nil {
		return nil, err
	}

	b.xHat = xHat
	b.std = std
	b.observe(input.Shape(), output.Shape())
	return output, nil
}

// Backward applies the canonical batch-normalization gradient:
//
//	dx = (1 / (m·σ)) · (m·(dy·γ) - Σ(dy·γ) - x̂·Σ((dy·γ)·x̂))
//
// and stores dγ = Σ(dy·x̂), dβ = Σ(dy), where Σ sums over the batch.
func (b *BatchNorm) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	if b.xHat == nil {
		return nil, fmt.Errorf("%s backward: %w: no cached statistics (call Forward first)", b.name, ErrInvalidState)
	}
	if err := checkShape(b.name+" backward", gradOutput.Shape(), b.xHat.Shape()); err != nil {
		return nil, err
	}
	m := float64(gradOutput.Rows())

	dyGamma, err := gradOutput.Mul(b.gamma.Tensor())
	if err != nil {
		return nil, err
	}
	sumDyGamma := dyGamma.ColumnSum()
	dyGammaXHat, err := dyGamma.Mul(b.xHat)
	if err != nil {
		return nil, err
	}
	sumDyGammaXHat := dyGammaXHat.ColumnSum()

	// m·(dy·γ) - Σ(dy·γ)
	term, err := dyGamma.Scale(m).Sub(sumDyGamma)
	if err != nil {
		return nil, err
	}
	// - x̂·Σ((dy·γ)·x̂)
	xHatTerm, err := b.xHat.Mul(sumDyGammaXHat)
	if err != nil {
		return nil, err
	}
	term, err = term.Sub(xHatTerm)
	if err != nil {
		return nil, err
	}
	coeff := b.std.Map(func(s float64) float64 {
		return 1 / (m * s)
	})
	gradInput, err := term.Mul(coeff)
	if err != nil {
		return nil, err
	}

	dyXHat, err := gradOutput.Mul(b.xHat)
	if err != nil {
		return nil, err
	}
	b.gamma.SetGrad(dyXHat.ColumnSum())
	b.beta.SetGrad(gradOutput.ColumnSum())

	b.xHat = nil
	b.std = nil
	return gradInput, nil
}

// Update applies gradient descent to gamma and beta.
func (b *BatchNorm) Update(learningRate float64) error {
	if b.gamma.Grad() == nil || b.beta.Grad() == nil {
		return fmt.Errorf("%s update: %w: no gradients (call Backward first)", b.name, ErrInvalidState)
	}
	if err := b.gamma.descend(learningRate); err != nil {
		return err
	}
	return b.beta.descend(learningRate)
}

// Gamma returns the scale parameter tensor.
func (b *BatchNorm) Gamma() *tensor.Tensor {
	return b.gamma.Tensor()
}

// Beta returns the shift parameter tensor.
func (b *BatchNorm) Beta() *tensor.Tensor {
	return b.beta.Tensor()
}

// Epsilon returns the variance stabilizer.
func (b *BatchNorm) Epsilon() float64 {
	return b.epsilon
}

// Features returns the number of normalized features.
func (b *BatchNorm) Features() int {
	return b.features
}

// Parameters returns [gamma, beta].
func (b *BatchNorm) Parameters() []*Parameter {
	return []*Parameter{b.gamma, b.beta}
}

// Name returns the display name.
func (b *BatchNorm) Name() string {
	return b.name
}

// ParamCount returns 2·features.
func (b *BatchNorm) ParamCount() int {
	return b.gamma.NumElements() + b.beta.NumElements()
}

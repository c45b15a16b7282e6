package optim

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Only Dense layers are updated; Step is a no-op for every other unit.
// Moment state is keyed by the layer's ID and lives as long as the optimizer.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Beta1: 0.9,
//	    Beta2: 0.999,
//	})
type Adam struct {
	lr      float64
	beta1   float64
	beta2   float64
	epsilon float64
	state   map[uuid.UUID]*Moments
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR      float64 // Learning rate (default: 0.001)
	Beta1   float64 // First moment decay (default: 0.9)
	Beta2   float64 // Second moment decay (default: 0.999)
	Epsilon float64 // Term for numerical stability (default: 1e-8)
}

// Moments holds Adam's running estimates for one Dense layer.
type Moments struct {
	WeightM *tensor.Tensor // first moment of the weight gradient
	WeightV *tensor.Tensor // second moment of the weight gradient
	BiasM   *tensor.Tensor // first moment of the bias gradient
	BiasV   *tensor.Tensor // second moment of the bias gradient
}

func (m *Moments) clone() *Moments {
	return &Moments{
		WeightM: m.WeightM.Clone(),
		WeightV: m.WeightV.Clone(),
		BiasM:   m.BiasM.Clone(),
		BiasV:   m.BiasV.Clone(),
	}
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters (applied to zero fields):
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Epsilon: 1e-8
func NewAdam(config AdamConfig) *Adam {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Epsilon == 0 {
		config.Epsilon = 1e-8
	}

	return &Adam{
		lr:      config.LR,
		beta1:   config.Beta1,
		beta2:   config.Beta2,
		epsilon: config.Epsilon,
		state:   make(map[uuid.UUID]*Moments),
	}
}

// Step performs a single Adam update on a Dense layer.
//
// The new weights and bias are computed into fresh tensors and installed
// together through Dense.SetParameters; moment state is committed only after
// that succeeds.
func (a *Adam) Step(unit nn.Unit, t int) error {
	dense, ok := unit.(*nn.Dense)
	if !ok {
		return nil
	}
	if t < 1 {
		return fmt.Errorf("adam: %w: t must be >= 1, got %d", ErrInvalidTimestep, t)
	}
	if !dense.HasGrad() {
		return fmt.Errorf("adam: %s: %w: no gradients (call Backward first)", dense.Name(), nn.ErrInvalidState)
	}

	// Compute bias correction factors
	// bias_correction1 = 1 - beta1^t
	// bias_correction2 = 1 - beta2^t
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(t))

	prev, ok := a.state[dense.ID()]
	if !ok {
		prev = &Moments{
			WeightM: tensor.Zeros(dense.WeightGrad().Shape()),
			WeightV: tensor.Zeros(dense.WeightGrad().Shape()),
			BiasM:   tensor.Zeros(dense.BiasGrad().Shape()),
			BiasV:   tensor.Zeros(dense.BiasGrad().Shape()),
		}
	}
	next := prev.clone()

	weights := dense.Weights().Clone()
	bias := dense.Bias().Clone()
	a.updateParameter(weights, dense.WeightGrad(), next.WeightM, next.WeightV, biasCorrection1, biasCorrection2)
	a.updateParameter(bias, dense.BiasGrad(), next.BiasM, next.BiasV, biasCorrection1, biasCorrection2)

	if err := dense.SetParameters(weights, bias); err != nil {
		return fmt.Errorf("adam: %w", err)
	}
	a.state[dense.ID()] = next
	return nil
}

// updateParameter performs the Adam update for a single tensor in place.
func (a *Adam) updateParameter(param, grad, m, v *tensor.Tensor, biasCorrection1, biasCorrection2 float64) {
	gradData := grad.Data()
	mData := m.Data()
	vData := v.Data()
	paramData := param.Data()

	for i := range paramData {
		g := gradData[i]

		// m_t = beta1 * m_{t-1} + (1-beta1) * grad
		mData[i] = a.beta1*mData[i] + (1.0-a.beta1)*g

		// v_t = beta2 * v_{t-1} + (1-beta2) * grad²
		vData[i] = a.beta2*vData[i] + (1.0-a.beta2)*g*g

		mHat := mData[i] / biasCorrection1
		vHat := vData[i] / biasCorrection2

		// param = param - lr * m_hat / (sqrt(v_hat) + eps)
		paramData[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.epsilon)
	}
}

// Moments returns a copy of the moment estimates tracked for d, or false if
// Adam has not stepped d yet.
func (a *Adam) Moments(d *nn.Dense) (*Moments, bool) {
	m, ok := a.state[d.ID()]
	if !ok {
		return nil, false
	}
	return m.clone(), true
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

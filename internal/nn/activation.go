package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/seqnet/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Forward records a binary mask (1 where x > 0, else 0) which Backward
// multiplies into the upstream gradient.
//
// Example:
//
//	relu := nn.NewReLU()
//	output, err := relu.Forward(input) // All negative values become 0
type ReLU struct {
	observed
	mask *tensor.Tensor
}

// NewReLU creates a new ReLU activation.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input.Map(func(x float64) float64 {
		return math.Max(0, x)
	})
	r.mask = input.Map(func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	})
	r.observe(input.Shape(), output.Shape())
	return output, nil
}

// Backward returns gradOutput ⊙ mask.
func (r *ReLU) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	if r.mask == nil {
		return nil, fmt.Errorf("ReLU backward: %w: no cached mask (call Forward first)", ErrInvalidState)
	}
	if err := checkShape("ReLU backward", gradOutput.Shape(), r.mask.Shape()); err != nil {
		return nil, err
	}

	gradInput, err := gradOutput.Mul(r.mask)
	if err != nil {
		return nil, err
	}
	r.mask = nil
	return gradInput, nil
}

// Update is a no-op: ReLU has no learnable parameters.
func (r *ReLU) Update(float64) error {
	return nil
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Name returns "ReLU".
func (r *ReLU) Name() string {
	return "ReLU"
}

// ParamCount returns 0.
func (r *ReLU) ParamCount() int {
	return 0
}

// Sigmoid is a sigmoid activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Forward caches its output y (not the input) because the derivative is
// expressed in terms of it: dσ/dx = y·(1-y).
type Sigmoid struct {
	observed
	output *tensor.Tensor
}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// sigmoid evaluates σ(x) without overflowing exp for large |x|.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// Forward applies σ(x) element-wise and caches the result.
func (s *Sigmoid) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input.Map(sigmoid)
	s.output = output.Clone()
	s.observe(input.Shape(), output.Shape())
	return output, nil
}

// Backward returns gradOutput ⊙ y ⊙ (1 - y).
func (s *Sigmoid) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	if s.output == nil {
		return nil, fmt.Errorf("Sigmoid backward: %w: no cached output (call Forward first)", ErrInvalidState)
	}
	if err := checkShape("Sigmoid backward", gradOutput.Shape(), s.output.Shape()); err != nil {
		return nil, err
	}

	derivative := s.output.Map(func(y float64) float64 {
		return y * (1 - y)
	})
	gradInput, err := gradOutput.Mul(derivative)
	if err != nil {
		return nil, err
	}
	s.output = nil
	return gradInput, nil
}

// Update is a no-op: Sigmoid has no learnable parameters.
func (s *Sigmoid) Update(float64) error {
	return nil
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// Name returns "Sigmoid".
func (s *Sigmoid) Name() string {
	return "Sigmoid"
}

// ParamCount returns 0.
func (s *Sigmoid) ParamCount() int {
	return 0
}

package nn

import (
	"fmt"

	"github.com/born-ml/seqnet/internal/random"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Dropout randomly zeroes entries during training.
//
// In training mode (the default) each entry is kept with probability 1-p:
// a uniform draw u ~ U[0, 1) keeps the entry when u >= p. Kept entries are
// not rescaled. In inference mode nothing is dropped; instead every entry is
// scaled by (1-p) so activations match their training-time expectation.
//
// Example:
//
//	drop := nn.NewDropout(0.2)
//	drop.SetTraining(false) // switch to inference
type Dropout struct {
	observed

	name     string
	p        float64
	training bool
	source   *random.Source

	// Cached by Forward, consumed by Backward. Exactly one is set after a
	// Forward, recording the mode the forward pass ran in.
	mask        *tensor.Tensor
	passthrough bool
}

// NewDropout creates a Dropout layer with drop probability p in [0, 1).
// Panics if p is outside that range.
func NewDropout(p float64, opts ...Option) *Dropout {
	if p < 0 || p >= 1 {
		panic(fmt.Sprintf("NewDropout: drop probability must be in [0, 1), got %v", p))
	}
	o := buildOptions("Dropout", opts)

	return &Dropout{
		name:     o.name,
		p:        p,
		training: true,
		source:   o.source,
	}
}

// Forward applies the dropout mask (training) or the (1-p) scale (inference).
func (d *Dropout) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	d.observe(input.Shape(), input.Shape())

	if !d.training {
		d.mask = nil
		d.passthrough = true
		return input.Scale(1 - d.p), nil
	}

	mask := tensor.New(input.Rows(), input.Cols())
	data := mask.Data()
	for i := range data {
		if d.source.Uniform(0, 1) >= d.p {
			data[i] = 1
		}
	}

	output, err := input.Mul(mask)
	if err != nil {
		return nil, err
	}
	d.mask = mask
	d.passthrough = false
	return output, nil
}

// Backward multiplies the upstream gradient by the mask if the matching
// Forward ran in training mode, and passes it through unchanged if it ran in
// inference mode. Switching modes in between does not change the result.
func (d *Dropout) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	if d.passthrough {
		d.passthrough = false
		return gradOutput.Clone(), nil
	}
	if d.mask == nil {
		return nil, fmt.Errorf("%s backward: %w: no cached forward pass (call Forward first)", d.name, ErrInvalidState)
	}
	if err := checkShape(d.name+" backward", gradOutput.Shape(), d.mask.Shape()); err != nil {
		return nil, err
	}

	gradInput, err := gradOutput.Mul(d.mask)
	if err != nil {
		return nil, err
	}
	d.mask = nil
	return gradInput, nil
}

// SetTraining switches between training (true) and inference (false) mode.
func (d *Dropout) SetTraining(training bool) {
	d.training = training
}

// Training reports whether the layer is in training mode.
func (d *Dropout) Training() bool {
	return d.training
}

// Probability returns the drop probability p.
func (d *Dropout) Probability() float64 {
	return d.p
}

// Mask returns the mask sampled by the last training-mode Forward, or nil.
func (d *Dropout) Mask() *tensor.Tensor {
	return d.mask
}

// Update is a no-op: Dropout has no learnable parameters.
func (d *Dropout) Update(float64) error {
	return nil
}

// Parameters returns nil (Dropout has no trainable parameters).
func (d *Dropout) Parameters() []*Parameter {
	return nil
}

// Name returns the display name.
func (d *Dropout) Name() string {
	return d.name
}

// ParamCount returns 0.
func (d *Dropout) ParamCount() int {
	return 0
}

package nn

import (
	"github.com/born-ml/seqnet/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter pairs the live value with the gradient computed by the owning
// unit's last Backward call. The owning unit clears the gradient on Forward.
//
// Example:
//
//	weight := nn.NewParameter("weight", tensor.New(4, 2))
//	w := weight.Tensor()
//	grad := weight.Grad() // nil until the first backward pass
type Parameter struct {
	name   string         // Parameter name (e.g., "weight", "gamma")
	tensor *tensor.Tensor // The parameter tensor
	grad   *tensor.Tensor // Gradient tensor (computed during backward pass)
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been computed yet (before backward pass).
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

func zeroGrads(params ...*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// NumElements returns the number of scalar values held by the parameter.
func (p *Parameter) NumElements() int {
	return p.tensor.NumElements()
}

// descend applies p -= lr * grad and installs the result.
func (p *Parameter) descend(lr float64) error {
	updated, err := p.tensor.Sub(p.grad.Scale(lr))
	if err != nil {
		return err
	}
	p.tensor = updated
	return nil
}

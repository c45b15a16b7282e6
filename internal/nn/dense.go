package nn

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/born-ml/seqnet/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x · W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over the batch
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights are initialized using Glorot uniform initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewDense(4, 8)
//	output, err := layer.Forward(input) // [batch, 4] -> [batch, 8]
type Dense struct {
	observed

	id          uuid.UUID
	name        string
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [1, out_features]

	input *tensor.Tensor // cached by Forward, consumed by Backward
}

// NewDense creates a new Dense layer.
// Panics if either dimension is not positive.
func NewDense(inFeatures, outFeatures int, opts ...Option) *Dense {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("NewDense: dimensions must be positive, got (%d, %d)", inFeatures, outFeatures))
	}
	o := buildOptions("Dense", opts)

	return &Dense{
		observed: observed{
			in:  tensor.Shape{0, inFeatures},
			out: tensor.Shape{0, outFeatures},
		},
		id:          uuid.New(),
		name:        o.name,
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Glorot(inFeatures, outFeatures, o.source)),
		bias:        NewParameter("bias", tensor.New(1, outFeatures)),
	}
}

// Forward computes y = x · W + b and caches x for Backward.
// Gradients from the previous step are cleared.
func (d *Dense) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	zeroGrads(d.weight, d.bias)

	output, err := tensor.Dot(input, d.weight.Tensor())
	if err != nil {
		return nil, fmt.Errorf("%s forward: %w", d.name, err)
	}
	output, err = output.Add(d.bias.Tensor())
	if err != nil {
		return nil, fmt.Errorf("%s forward: %w", d.name, err)
	}

	d.input = input.Clone()
	d.observe(input.Shape(), output.Shape())
	return output, nil
}

// Backward computes the parameter gradients and returns the input gradient.
//
//	dW = xᵀ · G            [in_features, out_features]
//	db = column_sum(G)     [1, out_features]
//	dx = G · Wᵀ            [batch_size, in_features]
func (d *Dense) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	if d.input == nil {
		return nil, fmt.Errorf("%s backward: %w: no cached input (call Forward first)", d.name, ErrInvalidState)
	}
	if err := checkShape(d.name+" backward", gradOutput.Shape(), tensor.Shape{d.input.Rows(), d.outFeatures}); err != nil {
		return nil, err
	}

	gradInput, err := tensor.Dot(gradOutput, d.weight.Tensor().Transpose())
	if err != nil {
		return nil, fmt.Errorf("%s backward: %w", d.name, err)
	}
	weightGrad, err := tensor.Dot(d.input.Transpose(), gradOutput)
	if err != nil {
		return nil, fmt.Errorf("%s backward: %w", d.name, err)
	}

	d.weight.SetGrad(weightGrad)
	d.bias.SetGrad(gradOutput.ColumnSum())
	d.input = nil
	return gradInput, nil
}

// Update applies plain gradient descent: W -= lr·dW, b -= lr·db.
func (d *Dense) Update(learningRate float64) error {
	if !d.HasGrad() {
		return fmt.Errorf("%s update: %w: no gradients (call Backward first)", d.name, ErrInvalidState)
	}
	if err := d.weight.descend(learningRate); err != nil {
		return fmt.Errorf("%s update: %w", d.name, err)
	}
	if err := d.bias.descend(learningRate); err != nil {
		return fmt.Errorf("%s update: %w", d.name, err)
	}
	return nil
}

// SetParameters replaces the weight and bias tensors together.
//
// This is the entry point for optimizers that compute their own update rule
// from WeightGrad and BiasGrad. Both shapes are validated before either
// tensor is installed.
func (d *Dense) SetParameters(weights, bias *tensor.Tensor) error {
	if err := checkShape(d.name+" set weights", weights.Shape(), d.weight.Tensor().Shape()); err != nil {
		return err
	}
	if err := checkShape(d.name+" set bias", bias.Shape(), d.bias.Tensor().Shape()); err != nil {
		return err
	}
	d.weight.tensor = weights
	d.bias.tensor = bias
	return nil
}

// HasGrad reports whether Backward has produced gradients since the last
// Forward.
func (d *Dense) HasGrad() bool {
	return d.weight.Grad() != nil && d.bias.Grad() != nil
}

// ID returns the layer's stable identity.
func (d *Dense) ID() uuid.UUID {
	return d.id
}

// Weights returns the live weight tensor.
func (d *Dense) Weights() *tensor.Tensor {
	return d.weight.Tensor()
}

// Bias returns the live bias tensor.
func (d *Dense) Bias() *tensor.Tensor {
	return d.bias.Tensor()
}

// WeightGrad returns the weight gradient from the last Backward, or nil.
func (d *Dense) WeightGrad() *tensor.Tensor {
	return d.weight.Grad()
}

// BiasGrad returns the bias gradient from the last Backward, or nil.
func (d *Dense) BiasGrad() *tensor.Tensor {
	return d.bias.Grad()
}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// Parameters returns [weight, bias].
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// Name returns the display name.
func (d *Dense) Name() string {
	return d.name
}

// ParamCount returns in*out + out.
func (d *Dense) ParamCount() int {
	return d.inFeatures*d.outFeatures + d.outFeatures
}

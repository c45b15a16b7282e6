// Package nn implements the differentiable units of seqnet.
//
// This package provides building blocks for constructing sequential networks:
//   - Unit interface: forward/backward/update contract shared by every layer
//   - Parameter: a learnable tensor paired with its last computed gradient
//   - Dense: fully connected layer
//   - Activations: ReLU, Sigmoid
//   - Normalization and regularization: BatchNorm, Dropout
//   - Loss functions: MSE
//
// Gradients are derived by hand for each unit. A unit caches what its
// backward pass needs during Forward; Backward consumes those caches, so the
// calls must alternate Forward, Backward, (Update) for every training step.
package nn

import (
	"github.com/born-ml/seqnet/internal/tensor"
)

// Unit is the base interface for all differentiable components.
//
// Every unit must implement:
//   - Forward: compute the output from input and cache what Backward needs
//   - Backward: consume the caches, store parameter gradients, and return the
//     gradient with respect to the input
//   - Update: apply plain gradient descent to the unit's own parameters
//   - Introspection: Name, InputShape, OutputShape, ParamCount
//
// Units are stateful and not safe for concurrent use.
type Unit interface {
	// Forward computes the output of the unit for a (batch, features) input.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Backward takes the gradient of the loss with respect to this unit's
	// output and returns the gradient with respect to its input.
	//
	// Returns ErrInvalidState if Forward has not been called since the last
	// Backward.
	Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error)

	// Update applies param -= learningRate * grad to every parameter.
	// Units without parameters return nil. Parameterized units return
	// ErrInvalidState if Backward has not run since the last Forward.
	Update(learningRate float64) error

	// Parameters returns all trainable parameters of this unit.
	// Returns an empty slice for units without parameters.
	Parameters() []*Parameter

	// Name returns the display name used in summaries and errors.
	Name() string

	// InputShape returns the shape of the last input seen by Forward.
	InputShape() tensor.Shape

	// OutputShape returns the shape of the last output produced by Forward.
	OutputShape() tensor.Shape

	// ParamCount returns the number of trainable scalars.
	ParamCount() int
}

// ModeSetter is implemented by units that behave differently during training
// and inference (e.g., Dropout).
type ModeSetter interface {
	SetTraining(training bool)
}

// observed records the last shapes seen by Forward.
type observed struct {
	in  tensor.Shape
	out tensor.Shape
}

// InputShape returns the shape of the last input seen by Forward.
func (o *observed) InputShape() tensor.Shape {
	return o.in
}

// OutputShape returns the shape of the last output produced by Forward.
func (o *observed) OutputShape() tensor.Shape {
	return o.out
}

func (o *observed) observe(in, out tensor.Shape) {
	o.in = in
	o.out = out
}

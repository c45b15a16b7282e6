// Package model chains differentiable units into a sequential network and
// drives its training loop.
//
// Each unit's output becomes the next unit's input on the forward pass;
// gradients flow through the units in reverse on the backward pass.
package model

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Model is an ordered sequence of units.
//
// Example:
//
//	m := model.New()
//	m.Add(nn.NewDense(2, 8))
//	m.Add(nn.NewReLU())
//	m.Add(nn.NewDense(8, 1))
//	m.Add(nn.NewSigmoid())
//
//	output, err := m.Forward(input)
//
// This is equivalent to:
//
//	h1, _ := dense1.Forward(input)
//	h2, _ := relu.Forward(h1)
//	h3, _ := dense2.Forward(h2)
//	output, _ := sigmoid.Forward(h3)
//
// The model holds references to its units; it does not copy them.
type Model struct {
	units  []nn.Unit
	logger *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used to report training progress.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates an empty Model. Training progress is discarded unless a logger
// is supplied with WithLogger.
func New(opts ...Option) *Model {
	m := &Model{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add appends a unit to the sequence.
//
// Shapes of consecutive units are not checked here; a mismatch surfaces as a
// ShapeError from Forward.
func (m *Model) Add(unit nn.Unit) {
	m.units = append(m.units, unit)
}

// Len returns the number of units in the sequence.
func (m *Model) Len() int {
	return len(m.units)
}

// Unit returns the unit at the given index.
//
// Panics if index is out of bounds.
func (m *Model) Unit(index int) nn.Unit {
	if index < 0 || index >= len(m.units) {
		panic(fmt.Sprintf("Model.Unit: index %d out of bounds [0, %d)", index, len(m.units)))
	}
	return m.units[index]
}

// Units returns the units in forward order.
func (m *Model) Units() []nn.Unit {
	units := make([]nn.Unit, len(m.units))
	copy(units, m.units)
	return units
}

// Parameters returns all trainable parameters from all units.
func (m *Model) Parameters() []*nn.Parameter {
	var params []*nn.Parameter
	for _, unit := range m.units {
		params = append(params, unit.Parameters()...)
	}
	return params
}

// ParamCount returns the total number of trainable scalars.
func (m *Model) ParamCount() int {
	var n int
	for _, unit := range m.units {
		n += unit.ParamCount()
	}
	return n
}

// Forward applies all units in sequence and returns the last output.
func (m *Model) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input
	for i, unit := range m.units {
		var err error
		output, err = unit.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("unit %d (%s): %w", i, unit.Name(), err)
		}
	}
	return output, nil
}

// Backward threads the gradient through the units in reverse order and
// returns the gradient with respect to the model input.
func (m *Model) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	grad := gradOutput
	for i := len(m.units) - 1; i >= 0; i-- {
		var err error
		grad, err = m.units[i].Backward(grad)
		if err != nil {
			return nil, fmt.Errorf("unit %d (%s): %w", i, m.units[i].Name(), err)
		}
	}
	return grad, nil
}

// Update calls every unit's own Update in forward order.
func (m *Model) Update(learningRate float64) error {
	for i, unit := range m.units {
		if err := unit.Update(learningRate); err != nil {
			return fmt.Errorf("unit %d (%s): %w", i, unit.Name(), err)
		}
	}
	return nil
}

// SetTraining switches every unit that distinguishes training from inference.
func (m *Model) SetTraining(training bool) {
	for _, unit := range m.units {
		if ms, ok := unit.(nn.ModeSetter); ok {
			ms.SetTraining(training)
		}
	}
}

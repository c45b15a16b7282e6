// Package optim implements optimization algorithms for training sequential
// networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - Adam: Adaptive Moment Estimation for Dense layers
//   - SGD: plain gradient descent delegated to each unit's own Update
//
// An optimizer is stepped once per unit per epoch, after the model's backward
// pass has stored the gradients on the units.
//
// Example usage:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    pred, _ := m.Forward(input)
//	    _, _ = loss.Forward(pred, target)
//	    grad, _ := loss.Backward()
//	    _, _ = m.Backward(grad)
//
//	    for _, unit := range m.Units() {
//	        _ = optimizer.Step(unit, epoch+1)
//	    }
//	}
package optim

import (
	"errors"

	"github.com/born-ml/seqnet/internal/nn"
)

// ErrInvalidTimestep is returned when a step is requested with t < 1.
var ErrInvalidTimestep = errors.New("invalid timestep")

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update a unit's parameters from the gradients its last Backward
// stored, to minimize the loss function during training.
type Optimizer interface {
	// Step applies one update to the unit's parameters.
	//
	// t is the 1-based step count used for bias correction. Units the
	// optimizer does not handle are left untouched.
	Step(unit nn.Unit, t int) error

	// LR returns the current learning rate.
	LR() float64
}

package optim

import (
	"fmt"

	"github.com/born-ml/seqnet/internal/nn"
)

// SGD implements plain Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Step hands the learning rate to the unit's own Update, so every
// parameterized unit is trained on this path, BatchNorm's gamma and beta
// included.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{lr: config.LR}
}

// Step applies param -= lr * grad to the unit's parameters.
//
// Units without parameters are skipped.
func (s *SGD) Step(unit nn.Unit, t int) error {
	if t < 1 {
		return fmt.Errorf("sgd: %w: t must be >= 1, got %d", ErrInvalidTimestep, t)
	}
	if unit.ParamCount() == 0 {
		return nil
	}
	if err := unit.Update(s.lr); err != nil {
		return fmt.Errorf("sgd: %w", err)
	}
	return nil
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

package nn

import (
	"fmt"

	"github.com/born-ml/seqnet/internal/tensor"
)

// Loss is a scalar objective over a batch of predictions.
//
// Forward caches what Backward needs; Backward consumes the cache and returns
// the gradient of the loss with respect to the predictions.
type Loss interface {
	Forward(predictions, targets *tensor.Tensor) (float64, error)
	Backward() (*tensor.Tensor, error)
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// The mean is taken over every entry (rows·cols), not just the batch.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss, err := mse.Forward(predictions, targets)
//	grad, err := mse.Backward()
type MSELoss struct {
	// predictions - targets, cached by Forward. Backward needs only the
	// difference, so the operands themselves are not kept.
	diff *tensor.Tensor
}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss.
//
// Predictions and targets must have identical shapes. An empty batch is
// rejected with a ShapeError since its mean is undefined.
func (m *MSELoss) Forward(predictions, targets *tensor.Tensor) (float64, error) {
	if predictions.Shape() != targets.Shape() || predictions.IsEmpty() {
		return 0, &tensor.ShapeError{Op: "mse forward", Left: predictions.Shape(), Right: targets.Shape()}
	}

	diff, err := predictions.Sub(targets)
	if err != nil {
		return 0, err
	}
	squared, err := diff.Mul(diff)
	if err != nil {
		return 0, err
	}

	m.diff = diff
	return squared.Sum() / float64(diff.NumElements()), nil
}

// Backward returns (2 / (rows·cols)) · (predictions - targets).
func (m *MSELoss) Backward() (*tensor.Tensor, error) {
	if m.diff == nil {
		return nil, fmt.Errorf("mse backward: %w: no cached prediction (call Forward first)", ErrInvalidState)
	}
	grad := m.diff.Scale(2 / float64(m.diff.NumElements()))
	m.diff = nil
	return grad, nil
}

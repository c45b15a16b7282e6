package model

import (
	"fmt"
	"math"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/optim"
	"github.com/born-ml/seqnet/internal/tensor"
)

// DefaultMinDelta is the smallest loss decrease counted as an improvement.
const DefaultMinDelta = 1e-6

// TrainConfig controls the training loop.
type TrainConfig struct {
	Epochs   int     // Number of full-batch epochs to run
	Patience int     // Stalled epochs before stopping; <= 0 disables early stopping
	MinDelta float64 // Required loss improvement (default: 1e-6)
}

// EpochStats records one epoch of training.
type EpochStats struct {
	Epoch    int // 0-based
	Loss     float64
	Accuracy float64
}

// History summarizes a training run.
type History struct {
	Epochs       []EpochStats
	BestEpoch    int // -1 if no epoch ran
	BestLoss     float64
	StoppedEarly bool
}

// Train runs full-batch gradient descent on (input, target).
//
// Each epoch runs forward, loss, backward, then optimizer.Step(unit, epoch+1)
// for every unit in order. An epoch improves on the best loss only if
// loss < best - MinDelta; after Patience consecutive epochs without
// improvement training stops, with that epoch's update already applied.
//
// A forward or backward error aborts training before the optimizer runs for
// that epoch. Errors are returned together with the history recorded so far.
func (m *Model) Train(input, target *tensor.Tensor, loss nn.Loss, optimizer optim.Optimizer, cfg TrainConfig) (*History, error) {
	if cfg.MinDelta == 0 {
		cfg.MinDelta = DefaultMinDelta
	}

	history := &History{
		BestEpoch: -1,
		BestLoss:  math.Inf(1),
	}
	stall := 0

	for epoch := range cfg.Epochs {
		stats, err := m.trainEpoch(input, target, loss, optimizer, epoch)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		history.Epochs = append(history.Epochs, stats)

		m.logger.Debug("epoch", "epoch", epoch, "loss", stats.Loss, "accuracy", stats.Accuracy)

		if stats.Loss < history.BestLoss-cfg.MinDelta {
			history.BestLoss = stats.Loss
			history.BestEpoch = epoch
			stall = 0
		} else {
			stall++
		}

		if cfg.Patience > 0 && stall >= cfg.Patience {
			history.StoppedEarly = true
			m.logger.Info("early stopping",
				"epoch", epoch,
				"best_epoch", history.BestEpoch,
				"best_loss", history.BestLoss)
			break
		}
	}

	return history, nil
}

func (m *Model) trainEpoch(input, target *tensor.Tensor, loss nn.Loss, optimizer optim.Optimizer, epoch int) (EpochStats, error) {
	pred, err := m.Forward(input)
	if err != nil {
		return EpochStats{}, fmt.Errorf("forward: %w", err)
	}
	value, err := loss.Forward(pred, target)
	if err != nil {
		return EpochStats{}, fmt.Errorf("loss: %w", err)
	}
	accuracy, err := ComputeAccuracy(pred, target)
	if err != nil {
		return EpochStats{}, fmt.Errorf("accuracy: %w", err)
	}

	grad, err := loss.Backward()
	if err != nil {
		return EpochStats{}, fmt.Errorf("loss backward: %w", err)
	}
	if _, err := m.Backward(grad); err != nil {
		return EpochStats{}, fmt.Errorf("backward: %w", err)
	}

	for i, unit := range m.units {
		if err := optimizer.Step(unit, epoch+1); err != nil {
			return EpochStats{}, fmt.Errorf("step unit %d (%s): %w", i, unit.Name(), err)
		}
	}

	return EpochStats{Epoch: epoch, Loss: value, Accuracy: accuracy}, nil
}

// ComputeAccuracy returns the fraction of rows whose column-0 prediction and
// target fall on the same side of 0.5 (a value > 0.5 is the positive class).
//
// Returns a ShapeError if the row counts differ or either tensor has no
// columns. An empty batch has accuracy 0.
func ComputeAccuracy(pred, target *tensor.Tensor) (float64, error) {
	if pred.Rows() != target.Rows() || pred.Cols() == 0 || target.Cols() == 0 {
		return 0, &tensor.ShapeError{Op: "accuracy", Left: pred.Shape(), Right: target.Shape()}
	}
	if pred.Rows() == 0 {
		return 0, nil
	}

	correct := 0
	for i := range pred.Rows() {
		if (pred.At(i, 0) > 0.5) == (target.At(i, 0) > 0.5) {
			correct++
		}
	}
	return float64(correct) / float64(pred.Rows()), nil
}

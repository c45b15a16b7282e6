// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the sequential model and its training loop.
//
// # Basic Usage
//
//	m := model.New(model.WithLogger(slog.Default()))
//	m.Add(nn.NewDense(2, 8))
//	m.Add(nn.NewReLU())
//	m.Add(nn.NewDense(8, 1))
//	m.Add(nn.NewSigmoid())
//
//	history, err := m.Train(input, target, nn.NewMSELoss(),
//	    optim.NewAdam(optim.AdamConfig{LR: 0.01}),
//	    model.TrainConfig{Epochs: 1000, Patience: 50})
//
// # Early Stopping
//
// An epoch improves on the best loss only if it is lower by more than
// TrainConfig.MinDelta (default 1e-6). After Patience consecutive epochs
// without improvement training stops; the stopping epoch's update has
// already been applied. A Patience of zero disables early stopping.
package model

import (
	"log/slog"

	"github.com/born-ml/seqnet/internal/model"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Model is an ordered sequence of units.
type Model = model.Model

// Option configures a Model.
type Option = model.Option

// TrainConfig controls the training loop.
type TrainConfig = model.TrainConfig

// EpochStats records one epoch of training.
type EpochStats = model.EpochStats

// History summarizes a training run.
type History = model.History

// DefaultMinDelta is the smallest loss decrease counted as an improvement.
const DefaultMinDelta = model.DefaultMinDelta

// New creates an empty Model.
func New(opts ...Option) *Model {
	return model.New(opts...)
}

// WithLogger sets the logger used to report training progress.
func WithLogger(logger *slog.Logger) Option {
	return model.WithLogger(logger)
}

// ComputeAccuracy returns the fraction of rows whose column-0 prediction and
// target fall on the same side of 0.5.
func ComputeAccuracy(pred, target *tensor.Tensor) (float64, error) {
	return model.ComputeAccuracy(pred, target)
}

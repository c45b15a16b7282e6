// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/random"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Unit is the common interface for all differentiable components.
type Unit = nn.Unit

// ModeSetter is implemented by units with distinct training and inference
// behavior.
type ModeSetter = nn.ModeSetter

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// ErrInvalidState is matched by errors from out-of-order unit calls.
var ErrInvalidState = nn.ErrInvalidState

// Option configures a unit at construction time.
type Option = nn.Option

// WithName overrides the unit's display name.
func WithName(name string) Option {
	return nn.WithName(name)
}

// WithSource makes the unit draw from src instead of the process-wide source.
func WithSource(src *random.Source) Option {
	return nn.WithSource(src)
}

// Layers

// Dense represents a fully connected layer.
type Dense = nn.Dense

// NewDense creates a new Dense layer with Glorot initialization.
//
// Example:
//
//	layer := nn.NewDense(784, 128)
func NewDense(inFeatures, outFeatures int, opts ...Option) *Dense {
	return nn.NewDense(inFeatures, outFeatures, opts...)
}

// BatchNorm normalizes each feature over the batch.
type BatchNorm = nn.BatchNorm

// NewBatchNorm creates a new BatchNorm layer.
func NewBatchNorm(features int, opts ...Option) *BatchNorm {
	return nn.NewBatchNorm(features, opts...)
}

// Dropout randomly zeroes entries during training.
type Dropout = nn.Dropout

// NewDropout creates a Dropout layer with drop probability p in [0, 1).
func NewDropout(p float64, opts ...Option) *Dropout {
	return nn.NewDropout(p, opts...)
}

// Activations

// ReLU represents the ReLU activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid represents the sigmoid activation function.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Loss functions

// Loss is a scalar objective over a batch of predictions.
type Loss = nn.Loss

// MSELoss represents Mean Squared Error loss.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Initialization

// Glorot returns a (fanIn, fanOut) tensor drawn from the Glorot uniform
// distribution.
func Glorot(fanIn, fanOut int, src *random.Source) *tensor.Tensor {
	return nn.Glorot(fanIn, fanOut, src)
}

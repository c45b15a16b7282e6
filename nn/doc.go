// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the differentiable units of a sequential network.
//
// # Overview
//
// This package contains:
//   - Layers: Dense
//   - Activations: ReLU, Sigmoid
//   - Normalization and regularization: BatchNorm, Dropout
//   - Loss functions: MSELoss
//   - Utilities: Unit interface, Parameter, Glorot initialization
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/seqnet/model"
//	    "github.com/born-ml/seqnet/nn"
//	)
//
//	func main() {
//	    m := model.New()
//	    m.Add(nn.NewDense(2, 8))
//	    m.Add(nn.NewReLU())
//	    m.Add(nn.NewDense(8, 1))
//	    m.Add(nn.NewSigmoid())
//
//	    output, err := m.Forward(input)
//	}
//
// # Protocol
//
// Every unit follows the same cycle: Forward caches what the backward pass
// needs, Backward consumes that cache and stores parameter gradients, and
// Update (or an optimizer step) applies them. Calling Backward without a
// preceding Forward, or Update before any Backward, returns an error matching
// ErrInvalidState.
//
// # Randomness
//
// Dense initialization and Dropout masks draw from a process-wide source
// unless a unit is built with WithSource:
//
//	src := random.NewSource(42)
//	layer := nn.NewDense(4, 2, nn.WithSource(src))
package nn

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training sequential
// networks.
//
// # Overview
//
// This package contains:
//   - Adam: Adaptive Moment Estimation with bias correction (Dense layers)
//   - SGD: plain gradient descent through each unit's own Update
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/seqnet/model"
//	    "github.com/born-ml/seqnet/nn"
//	    "github.com/born-ml/seqnet/optim"
//	)
//
//	func main() {
//	    m := model.New()
//	    m.Add(nn.NewDense(2, 1))
//
//	    optimizer := optim.NewAdam(optim.AdamConfig{
//	        LR: 0.01,
//	    })
//
//	    history, err := m.Train(input, target, nn.NewMSELoss(), optimizer,
//	        model.TrainConfig{Epochs: 500, Patience: 20})
//	}
//
// # Adam State
//
// Adam keeps first and second moment estimates per Dense layer, keyed by the
// layer's ID. Two Adam instances never share state, so a layer should be
// stepped by a single optimizer.
package optim

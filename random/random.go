// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random exposes the seeded uniform source used for weight
// initialization and dropout masks.
//
// Example:
//
//	random.SetSeed(42) // reproducible run
//
//	src := random.NewSource(7) // isolated stream for one layer
//	layer := nn.NewDense(4, 2, nn.WithSource(src))
package random

import (
	"github.com/born-ml/seqnet/internal/random"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Source is a seeded uniform random number generator.
type Source = random.Source

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return random.NewSource(seed)
}

// Default returns the process-wide Source.
func Default() *Source {
	return random.Default()
}

// SetSeed reseeds the process-wide Source.
func SetSeed(seed uint64) {
	random.SetSeed(seed)
}

// FillUniform overwrites every entry of t with a draw from [min, max) using
// the process-wide Source.
func FillUniform(t *tensor.Tensor, min, max float64) {
	random.FillUniform(t, min, max)
}

// Package random provides the uniform sampling used for weight
// initialization and dropout masks.
//
// A process-wide generator backs the package-level functions so a single
// SetSeed call makes a whole training run reproducible. Components that need
// an isolated stream take a *Source instead.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/born-ml/seqnet/internal/tensor"
)

// Source is a seeded uniform random number generator.
// It is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{rng: newRand(seed)}
}

func newRand(seed uint64) *rand.Rand {
	//nolint:gosec // Weight initialization and dropout are not security-critical.
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed resets the generator to a deterministic state derived from seed.
func (s *Source) Seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = newRand(seed)
}

// Uniform returns a single draw from [min, max).
func (s *Source) Uniform(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Float64()*(max-min)
}

// FillUniform overwrites every entry of t with an independent draw from
// [min, max).
func (s *Source) FillUniform(t *tensor.Tensor, min, max float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := t.Data()
	for i := range data {
		data[i] = min + s.rng.Float64()*(max-min)
	}
}

// global is seeded from the runtime until SetSeed is called.
var global = &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))} //nolint:gosec

// Default returns the process-wide Source.
func Default() *Source {
	return global
}

// SetSeed reseeds the process-wide generator.
func SetSeed(seed uint64) {
	global.Seed(seed)
}

// Uniform returns a single draw from [min, max) using the process-wide
// generator.
func Uniform(min, max float64) float64 {
	return global.Uniform(min, max)
}

// FillUniform fills t from the process-wide generator. See Source.FillUniform.
func FillUniform(t *tensor.Tensor, min, max float64) {
	global.FillUniform(t, min, max)
}

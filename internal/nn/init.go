package nn

import (
	"math"

	"github.com/born-ml/seqnet/internal/random"
	"github.com/born-ml/seqnet/internal/tensor"
)

// GlorotBound returns the Xavier/Glorot uniform bound sqrt(6/(fanIn+fanOut)).
func GlorotBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// Glorot (Xavier) initialization for weights.
//
// Initializes a (fanIn, fanOut) tensor with values drawn from
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
//
// This initialization helps maintain variance of activations across layers.
func Glorot(fanIn, fanOut int, src *random.Source) *tensor.Tensor {
	bound := GlorotBound(fanIn, fanOut)
	t := tensor.New(fanIn, fanOut)
	src.FillUniform(t, -bound, bound)
	return t
}

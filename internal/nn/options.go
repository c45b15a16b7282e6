package nn

import "github.com/born-ml/seqnet/internal/random"

// Option configures a unit at construction time.
type Option func(*options)

type options struct {
	name   string
	source *random.Source
}

// WithName overrides the unit's display name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithSource makes the unit draw random numbers from src instead of the
// process-wide generator. Used by Dense initialization and Dropout masks.
func WithSource(src *random.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

func buildOptions(defaultName string, opts []Option) options {
	o := options{name: defaultName, source: random.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Package envconfig reads seqnet defaults from the environment.
//
// Every getter falls back to its default when the variable is unset, and
// logs a warning before falling back when the value cannot be parsed.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var returns an environment variable stripped of leading and trailing
// quotes and spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel returns the log level.
// Configurable via SEQNET_DEBUG; a true value enables debug logging and a
// positive integer n lowers the level by 4n.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SEQNET_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

var (
	// Seed seeds the process-wide random source. Configurable via SEQNET_SEED.
	Seed = Uint64("SEQNET_SEED", 42)
	// Epochs is the number of training epochs. Configurable via SEQNET_EPOCHS.
	Epochs = Int("SEQNET_EPOCHS", 1000)
	// Patience is the early-stopping patience. Configurable via SEQNET_PATIENCE.
	Patience = Int("SEQNET_PATIENCE", 50)
	// LearningRate is the optimizer step size. Configurable via SEQNET_LEARNING_RATE.
	LearningRate = Float("SEQNET_LEARNING_RATE", 0.01)
)

// Uint64 returns a getter for a uint64 with a default value.
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// Int returns a getter for an int with a default value.
func Int(key string, defaultValue int) func() int {
	return func() int {
		if s := Var(key); s != "" {
			if n, err := strconv.Atoi(s); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// Float returns a getter for a positive float64 with a default value.
func Float(key string, defaultValue float64) func() float64 {
	return func() float64 {
		if s := Var(key); s != "" {
			if f, err := strconv.ParseFloat(s, 64); err != nil || f <= 0 {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return f
			}
		}
		return defaultValue
	}
}

// EnvVar describes one environment variable and its current value.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"SEQNET_DEBUG":         {"SEQNET_DEBUG", LogLevel(), "Show additional debug information (e.g. SEQNET_DEBUG=1)"},
		"SEQNET_SEED":          {"SEQNET_SEED", Seed(), "Seed for weight initialization and dropout (default 42)"},
		"SEQNET_EPOCHS":        {"SEQNET_EPOCHS", Epochs(), "Number of training epochs (default 1000)"},
		"SEQNET_PATIENCE":      {"SEQNET_PATIENCE", Patience(), "Epochs without improvement before stopping (default 50)"},
		"SEQNET_LEARNING_RATE": {"SEQNET_LEARNING_RATE", LearningRate(), "Optimizer learning rate (default 0.01)"},
	}
}

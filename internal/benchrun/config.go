package benchrun

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ffi-playground/numffi/arith"
)

// Operations a benchmark can exercise.
const (
	OpAdd       = "add"
	OpFactorial = "factorial"
)

// Call paths a benchmark can take across the boundary.
const (
	PathNative = "native"
	PathCgo    = "cgo"
)

// Config holds the parameters of one benchmark run.
type Config struct {
	Op       string
	Path     string
	Workers  int
	Duration time.Duration
	MaxN     uint32
}

// DefaultConfig returns the parameters used when neither a config file nor
// flags override them.
func DefaultConfig() Config {
	return Config{
		Op:       OpAdd,
		Path:     PathNative,
		Workers:  runtime.NumCPU(),
		Duration: 10 * time.Second,
		MaxN:     arith.MaxFactorialInput,
	}
}

// fileConfig mirrors Config for YAML decoding. Pointer fields distinguish
// "absent" from zero so file values merge over the defaults.
type fileConfig struct {
	Op       *string `yaml:"op"`
	Path     *string `yaml:"path"`
	Workers  *int    `yaml:"workers"`
	Duration *string `yaml:"duration"`
	MaxN     *uint32 `yaml:"max_n"`
}

// LoadConfig reads a YAML benchmark config and merges it over the defaults.
// Durations use Go syntax, e.g. "30s" or "2m".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if fc.Op != nil {
		cfg.Op = *fc.Op
	}
	if fc.Path != nil {
		cfg.Path = *fc.Path
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.Duration != nil {
		d, err := time.ParseDuration(*fc.Duration)
		if err != nil {
			return cfg, fmt.Errorf("parse config duration: %w", err)
		}
		cfg.Duration = d
	}
	if fc.MaxN != nil {
		cfg.MaxN = *fc.MaxN
	}

	return cfg, nil
}

// Validate rejects parameter combinations that would make the run
// meaningless before any worker starts.
func (c Config) Validate() error {
	switch c.Op {
	case OpAdd, OpFactorial:
	default:
		return fmt.Errorf("unknown op %q (want %q or %q)", c.Op, OpAdd, OpFactorial)
	}
	switch c.Path {
	case PathNative, PathCgo:
	default:
		return fmt.Errorf("unknown path %q (want %q or %q)", c.Path, PathNative, PathCgo)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	if c.Op == OpFactorial && c.MaxN > arith.MaxFactorialInput {
		return fmt.Errorf("max-n %d exceeds the largest representable factorial input %d", c.MaxN, arith.MaxFactorialInput)
	}
	return nil
}

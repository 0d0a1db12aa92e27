package config

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/njchilds90/quadgen"
)

// Config holds the quadgen command configuration. Every field has a default,
// so a bare invocation needs no environment.
type Config struct {
	// Seed for the coefficient generator; 0 draws a fresh seed.
	Seed     int64   `env:"QUADGEN_SEED" envDefault:"0"`
	Min      float64 `env:"QUADGEN_MIN" envDefault:"-200"`
	Max      float64 `env:"QUADGEN_MAX" envDefault:"200"`
	Variable string  `env:"QUADGEN_VARIABLE" envDefault:"X"`
	LogLevel string  `env:"QUADGEN_LOG_LEVEL" envDefault:"error"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the sampling range and variable name. The name must not
// read as a number or as the imaginary unit I, so generated equations parse
// back unambiguously.
func (c Config) Validate() error {
	if err := c.Range().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Variable) == "" {
		return errors.New("variable name is required")
	}
	if strings.ContainsAny(c.Variable, "+-*^= \t") {
		return errors.Errorf("variable name %q contains an operator", c.Variable)
	}
	if c.Variable == quadgen.I.String() {
		return errors.Errorf("variable name %q is the imaginary unit", c.Variable)
	}
	if first := rune(c.Variable[0]); unicode.IsDigit(first) || first == '.' {
		return errors.Errorf("variable name %q reads as a number", c.Variable)
	}
	return nil
}

// Range returns the configured sampling interval.
func (c Config) Range() quadgen.Range {
	return quadgen.Range{Min: c.Min, Max: c.Max}
}

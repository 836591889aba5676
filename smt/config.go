package smt

import "github.com/go-playground/validator/v10"

// Config controls Model construction (spec.md §5).
type Config struct {
	// TimeoutMillis bounds every solver query; an expired query folds to
	// Unknown rather than a definitive answer. Must be positive.
	TimeoutMillis int `validate:"required,gt=0"`
}

// DefaultTimeoutMillis is the spec-mandated default (spec.md §5).
const DefaultTimeoutMillis = 10_000

// DefaultConfig returns a Config with the default timeout.
func DefaultConfig() Config {
	return Config{TimeoutMillis: DefaultTimeoutMillis}
}

var configValidator = validator.New()

func (c Config) validate() error {
	return configValidator.Struct(c)
}

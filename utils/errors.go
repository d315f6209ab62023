package utils

import "github.com/pkg/errors"

// Validation errors surfaced before a simulation is constructed. Callers
// match against these with errors.Is after unwinding any Wrapf context.
var (
	ErrInvalidSize       = errors.New("grid size must be a positive integer (>= 3 for the column seed)")
	ErrInvalidIterations = errors.New("iteration count must be a positive integer")
	ErrInvalidDelay      = errors.New("delay must not be negative")
	ErrInvalidPattern    = errors.New("unknown seed pattern")
	ErrInvalidDensity    = errors.New("random density must be in (0, 1]")
)

package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seed patterns applied to the grid at construction time.
const (
	PatternColumn  = "column"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternRandom  = "random"
)

// Config holds the configuration for a simulation run
type Config struct {
	Size          int     `json:"size"`
	Iterations    int     `json:"iterations"`
	DelayMs       int     `json:"delay_ms"`
	Pattern       string  `json:"pattern"`
	RandomDensity float64 `json:"random_density"`
	UseParallel   bool    `json:"parallel"`
	Verbose       bool    `json:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:          10,
		Iterations:    20,
		DelayMs:       200,
		Pattern:       PatternColumn,
		RandomDensity: 0.15,
		UseParallel:   false,
		Verbose:       false,
	}
}

// LoadConfig loads configuration from a JSON file, starting from defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Delay returns the configured render pause as a duration
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

/*
Validate checks every field once, before any simulation state exists.

The column seed indexes row 2 and col 1, so it needs at least a 3x3 grid;
the glider and blinker patterns also span three cells. A zero delay is
valid (run with no pause), only negative values are rejected.
*/
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Wrapf(ErrInvalidSize, "[Validate] got size %d", c.Size)
	}
	if c.Iterations <= 0 {
		return errors.Wrapf(ErrInvalidIterations, "[Validate] got iterations %d", c.Iterations)
	}
	if c.DelayMs < 0 {
		return errors.Wrapf(ErrInvalidDelay, "[Validate] got delay %dms", c.DelayMs)
	}
	switch c.Pattern {
	case PatternColumn, PatternGlider, PatternBlinker:
		if c.Size < 3 {
			return errors.Wrapf(ErrInvalidSize, "[Validate] %s seed needs size >= 3, got %d", c.Pattern, c.Size)
		}
	case PatternRandom:
		if c.RandomDensity <= 0 || c.RandomDensity > 1 {
			return errors.Wrapf(ErrInvalidDensity, "[Validate] got density %v", c.RandomDensity)
		}
	default:
		return errors.Wrapf(ErrInvalidPattern, "[Validate] got pattern %q", c.Pattern)
	}
	return nil
}

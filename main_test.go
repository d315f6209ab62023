package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Christophoclese/go-life/utils"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg != utils.DefaultConfig() {
		t.Fatalf("parseArgs with no flags = %+v, expected defaults", cfg)
	}
}

func TestParseArgsFlags(t *testing.T) {
	cfg, err := parseArgs([]string{"-size", "5", "-iterations", "3", "-delay", "0"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg.Size != 5 || cfg.Iterations != 3 || cfg.DelayMs != 0 {
		t.Fatalf("parsed size=%d iterations=%d delay=%d, expected 5, 3, 0", cfg.Size, cfg.Iterations, cfg.DelayMs)
	}
}

func TestParseArgsRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		args     []string
		expected error
	}{
		{[]string{"-size", "0"}, utils.ErrInvalidSize},
		{[]string{"-size", "2"}, utils.ErrInvalidSize},
		{[]string{"-iterations", "-1"}, utils.ErrInvalidIterations},
		{[]string{"-delay", "-5"}, utils.ErrInvalidDelay},
		{[]string{"-pattern", "pulsar"}, utils.ErrInvalidPattern},
	}

	for _, c := range cases {
		if _, err := parseArgs(c.args); !errors.Is(err, c.expected) {
			t.Fatalf("parseArgs(%v) err = %v, expected %v", c.args, err, c.expected)
		}
	}
}

func TestParseArgsFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"size": 12, "iterations": 5}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := parseArgs([]string{"-config", path, "-size", "6"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg.Size != 6 {
		t.Fatalf("size = %d, expected the flag value 6 to win over the file", cfg.Size)
	}
	if cfg.Iterations != 5 {
		t.Fatalf("iterations = %d, expected the file value 5", cfg.Iterations)
	}
}

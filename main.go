package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Christophoclese/go-life/model"
	"github.com/Christophoclese/go-life/sim"
	"github.com/Christophoclese/go-life/utils"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var logger sim.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "life: ", log.Ltime)
	}

	renderer := model.NewTerminalRenderer()
	renderer.ClearScreen = cfg.DelayMs > 0

	simulation, err := sim.New(cfg, renderer, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := simulation.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// parseArgs builds the run configuration: defaults, then an optional JSON
// config file, then command-line flags. Flags win over file values.
func parseArgs(args []string) (utils.Config, error) {
	defaults := utils.DefaultConfig()

	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	var (
		configFile = fs.String("config", "", "path to a JSON config file")
		size       = fs.Int("size", defaults.Size, "side length of the square grid")
		iterations = fs.Int("iterations", defaults.Iterations, "number of generations to simulate")
		delay      = fs.Int("delay", defaults.DelayMs, "milliseconds paused after rendering each generation")
		pattern    = fs.String("pattern", defaults.Pattern, "seed pattern: column, glider, blinker or random")
		parallel   = fs.Bool("parallel", defaults.UseParallel, "evolve rows on multiple workers")
		verbose    = fs.Bool("verbose", defaults.Verbose, "log per-generation diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	cfg := defaults
	if *configFile != "" {
		loaded, err := utils.LoadConfig(*configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "iterations":
			cfg.Iterations = *iterations
		case "delay":
			cfg.DelayMs = *delay
		case "pattern":
			cfg.Pattern = *pattern
		case "parallel":
			cfg.UseParallel = *parallel
		case "verbose":
			cfg.Verbose = *verbose
		}
	})

	return cfg, cfg.Validate()
}

package sim

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Christophoclese/go-life/model"
	"github.com/Christophoclese/go-life/rules"
	"github.com/Christophoclese/go-life/utils"
)

// Logger receives diagnostic messages from a running simulation.
// A nil logger is valid and silences all output.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Simulation owns the current grid and drives the generation loop
type Simulation struct {
	cfg      utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	renderer model.Renderer
	logger   Logger
	stats    *utils.Stats

	currentGeneration int
}

// New validates the configuration, allocates the grid and applies the seed
// pattern. A validation failure produces no partial simulation.
func New(cfg utils.Config, renderer model.Renderer, logger Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New] invalid configuration")
	}

	grid, err := model.NewGrid(cfg.Size)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to allocate grid")
	}

	switch cfg.Pattern {
	case utils.PatternColumn:
		if err = grid.Seed(); err != nil {
			return nil, errors.Wrap(err, "[New] failed to seed grid")
		}
	case utils.PatternGlider:
		grid.AddGlider(0, 0)
	case utils.PatternBlinker:
		grid.AddBlinker(cfg.Size/2, (cfg.Size-3)/2)
	case utils.PatternRandom:
		grid.Randomize(cfg.RandomDensity)
	}

	if renderer == nil {
		renderer = model.NewTerminalRenderer()
	}

	return &Simulation{
		cfg:      cfg,
		grid:     grid,
		pool:     model.NewGridPool(),
		renderer: renderer,
		logger:   logger,
		stats:    utils.NewStats(),
	}, nil
}

// Grid exposes the current generation's board
func (s *Simulation) Grid() *model.Grid {
	return s.grid
}

// CurrentGeneration returns the 0-based counter of the loop in progress
func (s *Simulation) CurrentGeneration() int {
	return s.currentGeneration
}

/*
Evolve advances the grid by exactly one generation.

The current grid is cloned into a read-only snapshot; every cell's neighbor
count is taken against that snapshot and the resulting state written back
into the current grid in place. All reads go to the snapshot, so the write
order over cells is irrelevant. Neighbor counts are local values per cell,
never stored anywhere.
*/
func (s *Simulation) Evolve() {
	previous := s.pool.Get(s.grid.Size())
	s.grid.CloneInto(previous)

	if s.cfg.UseParallel {
		s.evolveParallel(previous)
	} else {
		s.evolveSerial(previous)
	}

	s.pool.Put(previous)
}

func (s *Simulation) evolveSerial(previous *model.Grid) {
	size := previous.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			neighbors := previous.CountNeighbors(row, col)
			alive := rules.Alive(neighbors, previous.Get(row, col))
			if s.cfg.Verbose {
				s.logf("(%d,%d) alive=%v with %d neighbors", row, col, alive, neighbors)
			}
			s.grid.Set(row, col, alive)
		}
	}
}

// evolveParallel shards rows across workers. Each worker owns a disjoint
// row band of the current grid and only reads the snapshot, so no locking
// is needed. Per-cell logging is skipped here to keep output ordered.
func (s *Simulation) evolveParallel(previous *model.Grid) {
	var (
		eg            errgroup.Group
		size          = previous.Size()
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, size)
		)
		if startRow >= size {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := 0; col < size; col++ {
					neighbors := previous.CountNeighbors(row, col)
					s.grid.Set(row, col, rules.Alive(neighbors, previous.Get(row, col)))
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them
	_ = eg.Wait()
}

/*
Run drives the full generation loop: for each of the configured iterations,
report the 1-based generation number, evolve once, render the post-evolve
grid and pause for the configured delay. The loop always performs exactly
the configured number of iterations; stagnation is reported, never acted on.
*/
func (s *Simulation) Run() error {
	for generation := 0; generation < s.cfg.Iterations; generation++ {
		s.currentGeneration = generation
		s.logf("generation %d", generation+1)

		frameStart := time.Now()
		s.Evolve()

		if err := s.renderer.Display(s.grid); err != nil {
			return errors.Wrapf(err, "[Run] failed to render generation %d", generation+1)
		}

		living := s.grid.CountLivingCells()
		s.grid.UpdateHistory()
		s.stats.Update(generation+1, living, time.Since(frameStart))

		if s.cfg.Verbose {
			status := "active"
			if living == 0 {
				status = "extinct"
			} else if s.grid.IsStagnant() {
				status = "stagnant"
			}
			s.logf("gen %d | living: %d | status: %s", generation+1, living, status)
		}

		time.Sleep(s.cfg.Delay())
	}

	if s.cfg.Verbose {
		s.logf("finished %d generations in %.1fs (%.1f gen/sec, %.1f avg population)",
			s.stats.TotalGenerations, s.stats.Runtime().Seconds(),
			s.stats.GenerationsPerSecond, s.stats.AveragePopulation)
	}

	return nil
}

func (s *Simulation) logf(format string, args ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

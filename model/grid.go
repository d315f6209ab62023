package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/Christophoclese/go-life/utils"
)

// Grid represents the square game board, addressed by (row, col)
type Grid struct {
	size    int
	cells   [][]bool
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates an all-dead grid with the specified side length
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(utils.ErrInvalidSize, "[NewGrid] got size %d", size)
	}
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}, nil
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Reset resets the grid to a new side length, reusing rows where possible
func (g *Grid) Reset(size int) {
	g.size = size
	g.history = nil

	if len(g.cells) != size {
		g.cells = make([][]bool, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]bool, size)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			g.cells[row][col] = false
		}
	}
	g.history = nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	if row >= 0 && row < g.size && col >= 0 && col < g.size {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.cells[row][col]
}

// Clone returns an independent deep copy of the grid
func (g *Grid) Clone() (*Grid, error) {
	clone, err := NewGrid(g.size)
	if err != nil {
		return nil, errors.Wrap(err, "[Clone] failed to allocate copy")
	}
	g.CloneInto(clone)
	return clone, nil
}

// CloneInto copies every cell into dst, resizing dst if needed.
// The copy shares no cell state with the source.
func (g *Grid) CloneInto(dst *Grid) {
	if dst.size != g.size || len(dst.cells) != g.size {
		dst.Reset(g.size)
	}
	for row := 0; row < g.size; row++ {
		copy(dst.cells[row], g.cells[row])
	}
}

/*
CountNeighbors counts living neighbors of (row, col) under the strict-edge
boundary policy: positions outside the grid are skipped entirely, never
wrapped. The board behaves as if surrounded by an infinite dead border.
*/
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	// Clamp the scan window so out-of-range coordinates are never touched
	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	// Keep only the last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a short cycle or static state
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.Hash()

	for back := 1; back <= 3; back++ {
		if g.history[len(g.history)-back] == currentHash {
			return true
		}
	}

	return false
}

// Seed applies the fixed initial pattern: three vertically adjacent living
// cells in column 1, rows 0 through 2. Needs at least a 3x3 board.
func (g *Grid) Seed() error {
	if g.size < 3 {
		return errors.Wrapf(utils.ErrInvalidSize, "[Seed] column seed needs size >= 3, got %d", g.size)
	}
	for row := 0; row < 3; row++ {
		g.Set(row, 1, true)
	}
	return nil
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(density float64) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			g.Set(row, col, rand.Float64() < density)
		}
	}
}

// AddGlider adds a glider pattern with its top-left at (startRow, startCol)
func (g *Grid) AddGlider(startRow, startCol int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for r, rowCells := range pattern {
		for c, cell := range rowCells {
			g.Set(startRow+r, startCol+c, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at (row, startCol)
func (g *Grid) AddBlinker(row, startCol int) {
	g.Set(row, startCol, true)
	g.Set(row, startCol+1, true)
	g.Set(row, startCol+2, true)
}

package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosAlive = "x"
	gridPosDead  = "."

	clearCmd = "clear"
)

// Renderer displays a grid once per generation
type Renderer interface {
	Display(g *Grid) error
}

// TerminalRenderer renders the grid as text to a writer
type TerminalRenderer struct {
	Out         io.Writer
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Render produces the text form of the grid: one character per cell in
// row-major order, a newline after each row, and a trailing blank line
// separating the grid from whatever follows.
func Render(g *Grid) string {
	var sb strings.Builder
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if g.Get(row, col) {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Display writes the rendered grid, clearing the screen first if configured
func (r *TerminalRenderer) Display(g *Grid) error {
	if r.ClearScreen {
		r.clear()
	}
	_, err := fmt.Fprint(r.Out, Render(g))
	return err
}

// clear clears the terminal screen
func (r *TerminalRenderer) clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}

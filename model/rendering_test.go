package model

import (
	"bytes"
	"testing"
)

func TestRenderColumnSeed(t *testing.T) {
	g, err := NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid(3) failed: %v", err)
	}
	if err = g.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	expected := ".x.\n.x.\n.x.\n\n"
	if got := Render(g); got != expected {
		t.Fatalf("Render = %q, expected %q", got, expected)
	}
}

func TestRenderAllDead(t *testing.T) {
	g, err := NewGrid(2)
	if err != nil {
		t.Fatalf("NewGrid(2) failed: %v", err)
	}

	expected := "..\n..\n\n"
	if got := Render(g); got != expected {
		t.Fatalf("Render = %q, expected %q", got, expected)
	}
}

func TestTerminalRendererWritesToWriter(t *testing.T) {
	g, err := NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid(3) failed: %v", err)
	}
	g.Set(1, 0, true)
	g.Set(1, 1, true)
	g.Set(1, 2, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err = r.Display(g); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	expected := "...\nxxx\n...\n\n"
	if buf.String() != expected {
		t.Fatalf("Display wrote %q, expected %q", buf.String(), expected)
	}
}

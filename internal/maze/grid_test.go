package maze

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid([][]int{
		{1, 0, 1},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("expected 3x2 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.At(1, 0) != Passage {
		t.Error("expected passage at (1,0)")
	}
	if g.At(0, 0) != Wall {
		t.Error("expected wall at (0,0)")
	}
}

func TestNewGridInvalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"no rows", [][]int{}},
		{"nil rows", nil},
		{"empty first row", [][]int{{}}},
		{"ragged rows", [][]int{{0, 1}, {0}}},
		{"cell value 2", [][]int{{0, 2}}},
		{"negative cell", [][]int{{-1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g, err := NewGrid([][]int{{0}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	outside := []Position{
		{X: -1, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: -1},
		{X: 0, Y: 1},
	}
	for _, p := range outside {
		if !g.Blocked(p) {
			t.Errorf("expected (%d,%d) outside the grid to be blocked", p.X, p.Y)
		}
	}
	if g.Blocked(Position{X: 0, Y: 0}) {
		t.Error("expected the single passage cell to be open")
	}
}

func TestNewGridCopiesInput(t *testing.T) {
	rows := [][]int{{0, 1}}
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	rows[0][0] = 1
	if g.At(0, 0) != Passage {
		t.Error("grid should not alias the caller's rows")
	}
}

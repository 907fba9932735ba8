package maze

import "fmt"

// Cell is one square of the maze.
type Cell int

const (
	Passage Cell = 0
	Wall    Cell = 1
)

// Grid is an immutable rectangular field of cells. Construct with NewGrid;
// the zero value has no cells and blocks everything.
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

// NewGrid validates and copies a raw layout. Rows must be non-empty, equal
// in length, and hold only 0 (passage) or 1 (wall).
func NewGrid(rows [][]int) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	width := len(rows[0])
	if width == 0 {
		return Grid{}, fmt.Errorf("%w: empty row 0", ErrInvalidGrid)
	}

	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), width)
		}
		cells[y] = make([]Cell, width)
		for x, v := range row {
			if v != 0 && v != 1 {
				return Grid{}, fmt.Errorf("%w: cell (%d,%d) value %d", ErrInvalidGrid, x, y, v)
			}
			cells[y][x] = Cell(v)
		}
	}

	return Grid{cells: cells, width: width, height: len(rows)}, nil
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

// At reports the cell at (x, y). Everything outside the grid counts as
// wall, so callers never need a separate bounds check.
func (g Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Wall
	}
	return g.cells[y][x]
}

// Blocked reports whether a move onto p would collide: the target is a
// wall or outside the grid. The two cases are deliberately
// indistinguishable.
func (g Grid) Blocked(p Position) bool {
	return g.At(p.X, p.Y) == Wall
}

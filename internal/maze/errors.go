package maze

import "errors"

// Domain errors for maze construction.
var (
	// ErrInvalidGrid indicates a non-rectangular grid, zero rows/columns,
	// or a cell value outside {0, 1}.
	ErrInvalidGrid = errors.New("maze: invalid grid")

	// ErrNoStart indicates the top row contains no passage cell.
	ErrNoStart = errors.New("maze: no start passage in top row")
)

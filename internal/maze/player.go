package maze

// Facing is the direction the player will attempt to move next. The four
// values form a fixed cycle Up -> Right -> Down -> Left used when a
// collision turns the player.
type Facing int

const (
	Up Facing = iota
	Right
	Down
	Left
)

// TurnRight returns the next facing in the cycle.
func (f Facing) TurnRight() Facing {
	return (f + 1) % 4
}

// Delta returns the unit step for this facing. Y grows downward, matching
// row order in the grid.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

func (f Facing) String() string {
	switch f {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Position is a cell coordinate: x is the column, y the row.
type Position struct {
	X, Y int
}

// Unstarted marks a player that has no valid start cell yet. It is off the
// grid on purpose so it can never satisfy the passage invariant by accident.
var Unstarted = Position{X: -1, Y: -1}

// Add returns the neighbor one step in the given facing.
func (p Position) Add(f Facing) Position {
	dx, dy := f.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the taxicab distance to o.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Player is the full walker state: where it stands and where it points.
type Player struct {
	Pos    Position
	Facing Facing
}

// NewPlayer returns the pre-start state: unstarted position, facing up.
func NewPlayer() Player {
	return Player{Pos: Unstarted, Facing: Up}
}

// FindStart scans the top row left to right and returns the first passage
// cell. ErrNoStart means the maze has no entry; callers should keep the
// player at Unstarted rather than standing inside a wall.
func FindStart(g Grid) (Position, error) {
	for x := 0; x < g.Width(); x++ {
		if g.At(x, 0) == Passage {
			return Position{X: x, Y: 0}, nil
		}
	}
	return Unstarted, ErrNoStart
}

// AttemptStep advances the player one step toward facing. The facing is
// adopted first, then the move is tried: an open target cell moves the
// player, a blocked one (wall or grid edge) leaves the position alone and
// turns the facing right once. Collisions are normal flow, never errors.
// The input player is not modified.
func AttemptStep(g Grid, p Player, f Facing) Player {
	next := Player{Pos: p.Pos, Facing: f}
	candidate := p.Pos.Add(f)
	if g.Blocked(candidate) {
		next.Facing = f.TurnRight()
		return next
	}
	next.Pos = candidate
	return next
}

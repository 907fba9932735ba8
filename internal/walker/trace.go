package walker

import "github.com/san-kum/mazewalk/internal/maze"

// Step records one applied input and its outcome.
type Step struct {
	N        int
	Input    Input
	Pos      maze.Position
	Facing   maze.Facing
	Blocked  bool
	Distance int
}

// Trace accumulates the history of a session: every recognized input,
// plus counters for moves, collisions, and distinct cells visited.
type Trace struct {
	start   maze.Position
	steps   []Step
	moves   int
	blocked int
	visited map[maze.Position]struct{}
}

func newTrace(start maze.Position) *Trace {
	t := &Trace{
		start:   start,
		visited: make(map[maze.Position]struct{}),
	}
	if start != maze.Unstarted {
		t.visited[start] = struct{}{}
	}
	return t
}

func (t *Trace) record(in Input, before, after maze.Player) {
	blocked := after.Pos == before.Pos
	if blocked {
		t.blocked++
	} else {
		t.moves++
		t.visited[after.Pos] = struct{}{}
	}
	t.steps = append(t.steps, Step{
		N:        len(t.steps) + 1,
		Input:    in,
		Pos:      after.Pos,
		Facing:   after.Facing,
		Blocked:  blocked,
		Distance: after.Pos.Manhattan(t.start),
	})
}

func (t *Trace) Start() maze.Position { return t.start }
func (t *Trace) Steps() []Step        { return t.steps }
func (t *Trace) Moves() int           { return t.moves }
func (t *Trace) Blocked() int         { return t.blocked }
func (t *Trace) Visited() int         { return len(t.visited) }

// Distances returns the per-step distance from the start cell, ready for
// plotting.
func (t *Trace) Distances() []float64 {
	out := make([]float64, len(t.steps))
	for i, s := range t.steps {
		out[i] = float64(s.Distance)
	}
	return out
}

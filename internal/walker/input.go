// Package walker drives a maze session on behalf of a host: it maps named
// input signals to facings, applies the pure transition, and hands each
// rendered frame to a display sink.
package walker

import "github.com/san-kum/mazewalk/internal/maze"

// Input is a named key signal from the host. Only the four directional
// inputs have an effect; everything else is a no-op.
type Input string

const (
	InputUp    Input = "up"
	InputRight Input = "right"
	InputDown  Input = "down"
	InputLeft  Input = "left"
)

// FacingFor maps an input to a facing. Unrecognized inputs report false
// and must leave the player untouched.
func FacingFor(in Input) (maze.Facing, bool) {
	switch in {
	case InputUp:
		return maze.Up, true
	case InputRight:
		return maze.Right, true
	case InputDown:
		return maze.Down, true
	case InputLeft:
		return maze.Left, true
	}
	return maze.Up, false
}

// ParseMoves turns a move script like "DDLLU" into inputs, one per letter.
// Unknown letters pass through as unrecognized inputs so scripted runs
// exercise the same no-op path as live ones.
func ParseMoves(s string) []Input {
	moves := make([]Input, 0, len(s))
	for _, r := range s {
		switch r {
		case 'U', 'u':
			moves = append(moves, InputUp)
		case 'R', 'r':
			moves = append(moves, InputRight)
		case 'D', 'd':
			moves = append(moves, InputDown)
		case 'L', 'l':
			moves = append(moves, InputLeft)
		default:
			moves = append(moves, Input(string(r)))
		}
	}
	return moves
}

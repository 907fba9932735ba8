// Package render projects a maze grid and player into a plain text block:
// one line per row, one rune per cell, rows joined by newlines. The
// projection is pure; delivering the text to a screen, DOM node, or test
// buffer is the host's job.
package render

import (
	"strings"

	"github.com/san-kum/mazewalk/internal/maze"
)

// Options selects the glyph for each cell kind.
type Options struct {
	Player  rune
	Wall    rune
	Passage rune
}

func DefaultOptions() Options {
	return Options{Player: 'X', Wall: '█', Passage: ' '}
}

// Render draws the grid with the default glyphs.
func Render(g maze.Grid, p maze.Player) string {
	return RenderWith(g, p, DefaultOptions())
}

// RenderWith draws the grid with custom glyphs. Identical inputs always
// produce identical output. An unstarted player is off the grid, so only
// the maze itself is drawn.
func RenderWith(g maze.Grid, p maze.Player, opts Options) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())

	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			switch {
			case p.Pos.X == x && p.Pos.Y == y:
				b.WriteRune(opts.Player)
			case g.At(x, y) == maze.Wall:
				b.WriteRune(opts.Wall)
			default:
				b.WriteRune(opts.Passage)
			}
		}
	}

	return b.String()
}

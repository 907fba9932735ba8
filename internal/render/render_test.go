package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/san-kum/mazewalk/internal/maze"
)

func testGrid(t *testing.T) maze.Grid {
	t.Helper()
	g, err := maze.NewGrid([][]int{
		{1, 0, 1},
		{1, 0, 0},
		{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestRender(t *testing.T) {
	g := testGrid(t)
	p := maze.Player{Pos: maze.Position{X: 1, Y: 0}, Facing: maze.Up}

	got := Render(g, p)
	want := "█X█\n█  \n███"
	if got != want {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	g := testGrid(t)
	p := maze.Player{Pos: maze.Position{X: 1, Y: 1}, Facing: maze.Down}

	first := Render(g, p)
	second := Render(g, p)
	if first != second {
		t.Error("identical inputs produced different output")
	}
}

func TestRenderShape(t *testing.T) {
	g := testGrid(t)
	p := maze.Player{Pos: maze.Position{X: 2, Y: 1}, Facing: maze.Right}

	lines := strings.Split(Render(g, p), "\n")
	if len(lines) != g.Height() {
		t.Fatalf("expected %d lines, got %d", g.Height(), len(lines))
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != g.Width() {
			t.Errorf("line %d has %d runes, want %d", i, n, g.Width())
		}
	}
}

func TestRenderWithGlyphs(t *testing.T) {
	g := testGrid(t)
	p := maze.Player{Pos: maze.Position{X: 1, Y: 0}, Facing: maze.Up}

	got := RenderWith(g, p, Options{Player: '@', Wall: '#', Passage: '.'})
	want := "#@#\n#..\n###"
	if got != want {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderUnstarted(t *testing.T) {
	g := testGrid(t)

	got := Render(g, maze.NewPlayer())
	if strings.ContainsRune(got, 'X') {
		t.Error("unstarted player should not be drawn")
	}
	if len(strings.Split(got, "\n")) != g.Height() {
		t.Error("unstarted render lost its shape")
	}
}

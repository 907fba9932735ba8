package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mazewalk/internal/maze"
	"github.com/san-kum/mazewalk/internal/render"
)

// Layout is the on-disk description of a maze: a name, the raw rows
// (0 = passage, 1 = wall), and optional display glyphs.
type Layout struct {
	Name   string      `yaml:"name"`
	Rows   [][]int     `yaml:"rows"`
	Glyphs GlyphConfig `yaml:"glyphs"`
}

// GlyphConfig overrides the render glyphs. Each field takes the first rune
// of the string; empty fields keep the defaults.
type GlyphConfig struct {
	Player  string `yaml:"player"`
	Wall    string `yaml:"wall"`
	Passage string `yaml:"passage"`
}

// DefaultLayout returns the classic built-in maze.
func DefaultLayout() *Layout {
	return GetLayout("classic")
}

// Load reads a layout file. Unset glyphs fall back to the defaults; the
// rows are validated later by Grid.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l := &Layout{}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, err
	}
	return l, nil
}

func Save(path string, l *Layout) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Grid builds the validated maze grid for this layout. Surfaces
// maze.ErrInvalidGrid for malformed rows.
func (l *Layout) Grid() (maze.Grid, error) {
	return maze.NewGrid(l.Rows)
}

// Options converts the glyph config into render options.
func (l *Layout) Options() render.Options {
	opts := render.DefaultOptions()
	if r := firstRune(l.Glyphs.Player); r != 0 {
		opts.Player = r
	}
	if r := firstRune(l.Glyphs.Wall); r != 0 {
		opts.Wall = r
	}
	if r := firstRune(l.Glyphs.Passage); r != 0 {
		opts.Passage = r
	}
	return opts
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

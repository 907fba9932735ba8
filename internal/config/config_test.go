package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mazewalk/internal/maze"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l == nil {
		t.Fatal("expected default layout, got nil")
	}
	if l.Name != "classic" {
		t.Errorf("expected classic, got %s", l.Name)
	}

	g, err := l.Grid()
	if err != nil {
		t.Fatalf("default layout grid invalid: %v", err)
	}
	start, err := maze.FindStart(g)
	if err != nil {
		t.Fatalf("default layout has no start: %v", err)
	}
	if start != (maze.Position{X: 5, Y: 0}) {
		t.Errorf("expected classic start (5,0), got (%d,%d)", start.X, start.Y)
	}
}

func TestBuiltinLayoutsValid(t *testing.T) {
	for name, l := range Layouts {
		t.Run(name, func(t *testing.T) {
			g, err := l.Grid()
			if err != nil {
				t.Fatalf("grid invalid: %v", err)
			}
			if _, err := maze.FindStart(g); err != nil {
				t.Errorf("no start passage: %v", err)
			}
		})
	}
}

func TestGetLayoutNotFound(t *testing.T) {
	if GetLayout("nonexistent") != nil {
		t.Error("expected nil for unknown layout")
	}
}

func TestListLayouts(t *testing.T) {
	names := ListLayouts()
	if len(names) != len(Layouts) {
		t.Fatalf("expected %d names, got %d", len(Layouts), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("layout names not sorted")
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")

	orig := GetLayout("corridor")
	if err := Save(path, orig); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != orig.Name {
		t.Errorf("expected name %s, got %s", orig.Name, loaded.Name)
	}
	if len(loaded.Rows) != len(orig.Rows) {
		t.Errorf("expected %d rows, got %d", len(orig.Rows), len(loaded.Rows))
	}
}

func TestLoadGlyphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	data := "name: custom\nglyphs:\n  player: \"@\"\n  wall: \"#\"\nrows:\n  - [0, 1]\n  - [0, 0]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	opts := l.Options()
	if opts.Player != '@' {
		t.Errorf("expected player glyph '@', got %q", opts.Player)
	}
	if opts.Wall != '#' {
		t.Errorf("expected wall glyph '#', got %q", opts.Wall)
	}
	if opts.Passage != ' ' {
		t.Errorf("unset passage glyph should keep default, got %q", opts.Passage)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

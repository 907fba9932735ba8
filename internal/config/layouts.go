package config

import "sort"

// Built-in layouts. Every layout keeps at least one passage in the top
// row so the start scan can succeed.
var Layouts = map[string]*Layout{
	"classic": {
		Name: "classic",
		Rows: [][]int{
			{1, 1, 1, 1, 1, 0, 1},
			{1, 0, 0, 0, 1, 0, 1},
			{1, 0, 1, 0, 0, 0, 1},
			{1, 0, 1, 1, 1, 0, 1},
			{1, 0, 0, 0, 1, 0, 1},
			{1, 1, 1, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 1},
		},
	},
	"open": {
		Name: "open",
		Rows: [][]int{
			{1, 0, 1, 1, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
	},
	"corridor": {
		Name: "corridor",
		Rows: [][]int{
			{1, 1, 1, 1, 1, 1, 1, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 0, 1, 1, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
	},
}

// GetLayout returns a built-in layout, or nil if the name is unknown.
func GetLayout(name string) *Layout {
	return Layouts[name]
}

// ListLayouts returns the built-in layout names, sorted.
func ListLayouts() []string {
	names := make([]string, 0, len(Layouts))
	for name := range Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

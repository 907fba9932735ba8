// Package tui is the interactive host for a walk session: it translates
// terminal keys into input signals and draws each frame with a status pane.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mazewalk/internal/walker"
)

// Model wraps a walk session for bubbletea.
type Model struct {
	session  *walker.Session
	layout   string
	blocked  bool
	showHelp bool
}

// NewModel builds the interactive model around an existing session.
func NewModel(sess *walker.Session, layout string) Model {
	return Model{session: sess, layout: layout}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key events. Arrow keys and hjkl walk; anything unmapped
// falls through untouched, matching the no-op input contract.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.apply(walker.InputUp)
	case "down", "j":
		m.apply(walker.InputDown)
	case "left", "h":
		m.apply(walker.InputLeft)
	case "right", "l":
		m.apply(walker.InputRight)
	case "r":
		m.session.Reset()
		m.blocked = false
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) apply(in walker.Input) {
	before := m.session.Player()
	after := m.session.Apply(in)
	m.blocked = after.Pos == before.Pos
}

func (m Model) View() string {
	p := m.session.Player()
	tr := m.session.Trace()

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("mazewalk"))
	stats.WriteByte('\n')
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label))
		stats.WriteString(valueStyle.Render(value))
		stats.WriteByte('\n')
	}
	row("layout", m.layout)
	row("position", fmt.Sprintf("(%d, %d)", p.Pos.X, p.Pos.Y))
	row("facing", p.Facing.String())
	row("steps", fmt.Sprintf("%d", tr.Moves()))
	row("bumps", fmt.Sprintf("%d", tr.Blocked()))
	row("visited", fmt.Sprintf("%d", tr.Visited()))
	if m.blocked {
		stats.WriteByte('\n')
		stats.WriteString(blockedStyle.Render("bump! turned " + p.Facing.String()))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		mazeStyle.Render(m.session.Frame()),
		statsStyle.Render(stats.String()),
	)

	help := "arrows/hjkl move · r reset · ? help · q quit"
	if m.showHelp {
		help = strings.Join([]string{
			"arrows, hjkl  attempt a step; a blocked step turns you right",
			"r             back to the start cell",
			"?             toggle this help",
			"q, ctrl+c     quit",
		}, "\n")
	}

	return view + "\n" + helpStyle.Render(help) + "\n"
}

// Run starts the interactive program and blocks until it exits.
func Run(sess *walker.Session, layout string) error {
	p := tea.NewProgram(NewModel(sess, layout))
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridpad/internal/config"
	"github.com/vovakirdan/gridpad/internal/grid"
	"github.com/vovakirdan/gridpad/internal/patterns"
	"github.com/vovakirdan/gridpad/internal/storage"
)

// Options configures a new editor model.
type Options struct {
	Grid      *grid.Grid // Required; the model takes exclusive ownership
	StatePath string     // Save/load target file
	Store     *storage.Store
	Patterns  []patterns.Pattern
	Theme     config.ThemeConfig
}

// Model is the Bubble Tea model for the grid editor. It owns its grid
// exclusively; all mutation goes through the grid's own API so the
// model can surface, but never bypass, validation failures.
type Model struct {
	g          *grid.Grid
	statePath  string
	store      *storage.Store
	patterns   []patterns.Pattern
	patternIdx int

	cursor      int
	keys        KeyMap
	help        help.Model
	theme       Theme
	status      string
	statusIsErr bool
	width       int
	quitting    bool
}

// NewModel creates an editor model for the given grid.
func NewModel(opts Options) Model {
	return Model{
		g:          opts.Grid,
		statePath:  opts.StatePath,
		store:      opts.Store,
		patterns:   opts.Patterns,
		patternIdx: -1,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      NewTheme(opts.Theme),
	}
}

// Grid exposes the model's grid, for tests and the serve layer.
func (m Model) Grid() *grid.Grid {
	return m.g
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < m.g.Height()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.First):
		m.cursor = 0

	case key.Matches(msg, m.keys.Last):
		if m.g.Height() > 0 {
			m.cursor = m.g.Height() - 1
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggle(m.cursor)

	case key.Matches(msg, m.keys.Save):
		m.saveState()

	case key.Matches(msg, m.keys.Load):
		m.loadState()

	case key.Matches(msg, m.keys.Clear):
		m.g.Clear()
		m.setStatus("cleared", false)

	case key.Matches(msg, m.keys.Pattern):
		m.applyNextPattern()
	}

	return m, nil
}

// handleMouse maps a click to a cell index and toggles it. Everything
// outside the strip is ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	index := CellIndexAt(msg.X, msg.Y, m.g.Height())
	if index < 0 {
		return m, nil
	}
	m.cursor = index
	m.toggle(index)
	return m, nil
}

// toggle flips a cell and reports the result in the status line.
func (m *Model) toggle(index int) {
	if err := m.g.Toggle(index); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	c, _ := m.g.Get(index)
	m.setStatus(fmt.Sprintf("cell %d %s", index, c), false)
}

// saveState writes the grid to the state file and records a snapshot.
func (m *Model) saveState() {
	if m.statePath == "" {
		m.setStatus("no state file configured", true)
		return
	}
	if err := m.g.Save(m.statePath); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort history, save already succeeded
		m.store.SaveSnapshot("state", m.g)
	}
	m.setStatus(fmt.Sprintf("saved to %s", m.statePath), false)
}

// loadState replaces the grid from the state file. A failed load leaves
// the grid untouched; the error is only shown.
func (m *Model) loadState() {
	if m.statePath == "" {
		m.setStatus("no state file configured", true)
		return
	}
	if err := m.g.Load(m.statePath); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("loaded %s", m.statePath), false)
}

// applyNextPattern cycles through the loaded patterns, skipping ones
// whose height does not fit this grid.
func (m *Model) applyNextPattern() {
	if len(m.patterns) == 0 {
		m.setStatus("no patterns available", true)
		return
	}
	for tries := 0; tries < len(m.patterns); tries++ {
		m.patternIdx = (m.patternIdx + 1) % len(m.patterns)
		p := m.patterns[m.patternIdx]
		if err := p.Apply(m.g); err != nil {
			continue
		}
		m.setStatus(fmt.Sprintf("pattern %s", p.ID), false)
		return
	}
	m.setStatus(fmt.Sprintf("no pattern fits height %d", m.g.Height()), true)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.theme.Title.Render(fmt.Sprintf("gridpad — %d cells, %d on", m.g.Height(), m.g.CountOn()))

	status := m.status
	if status == "" {
		status = "click or press space to toggle"
	}
	statusStyle := m.theme.Status
	if m.statusIsErr {
		statusStyle = m.theme.ErrStyle
	}

	return "  " + title + "\n" +
		"\n" +
		renderStrip(m.g, m.cursor, m.theme) + "\n" +
		"\n" +
		"  " + statusStyle.Render(status) + "\n" +
		"\n" +
		"  " + m.help.View(m.keys) + "\n"
}

// Run starts the editor in the local terminal and blocks until exit.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

package tui

import (
	"github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/rawhandle/internal/platform"
	"github.com/1broseidon/rawhandle/internal/probe"
)

// model is the root bubbletea model for the handle inspector.
type model struct {
	backend platform.Backend

	windows  []platform.Window
	display  probe.DisplayReport
	selected int
	lastErr  error

	// Terminal dimensions
	width  int
	height int
}

func newModel(backend platform.Backend) model {
	m := model{backend: backend}
	m.refresh()
	return m
}

// refresh re-reads the window list and display record. The selection is
// clamped rather than reset so the cursor survives a refresh.
func (m *model) refresh() {
	windows, err := m.backend.ListWindows()
	if err != nil {
		m.lastErr = err
		return
	}
	m.lastErr = nil
	m.windows = probe.DedupWindows(windows)
	if m.selected >= len(m.windows) {
		m.selected = len(m.windows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	if display, err := m.backend.Display(); err == nil {
		m.display = probe.DisplayReportOf(display)
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.windows)-1 {
				m.selected++
			}
			return m, nil

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "g", "home":
			m.selected = 0
			return m, nil

		case "G", "end":
			if len(m.windows) > 0 {
				m.selected = len(m.windows) - 1
			}
			return m, nil

		case "r":
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// Run starts the inspector over the given backend and blocks until the user
// quits.
func Run(backend platform.Backend) error {
	p := tea.NewProgram(newModel(backend), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

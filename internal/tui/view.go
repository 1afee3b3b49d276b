package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/1broseidon/rawhandle/internal/probe"
)

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	detailHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := m.renderStatusBar()
	helpBar := helpStyle.Render("j/k navigate · r refresh · q quit")

	usedHeight := lipgloss.Height(statusBar) + lipgloss.Height(helpBar)
	contentHeight := m.height - usedHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	if m.lastErr != nil {
		content = errorStyle.Render(fmt.Sprintf("error: %v", m.lastErr))
	} else {
		listWidth := m.width / 2
		list := m.renderWindowList(listWidth, contentHeight)
		detail := m.renderDetail(m.width-listWidth, contentHeight)
		content = lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusBar,
		content,
		helpBar,
	)
}

func (m model) renderStatusBar() string {
	display := m.display.Name
	if display == "" {
		display = "unknown"
	}
	text := fmt.Sprintf("handleprobe · display %s · screen %d · %d windows",
		display, m.display.Screen, len(m.windows))
	return statusStyle.Width(m.width).Render(text)
}

func (m model) renderWindowList(width, height int) string {
	var rows []string
	for i, w := range m.windows {
		if len(rows) >= height {
			break
		}
		title := w.Title
		if title == "" {
			title = "(untitled)"
		}
		// Truncate by display width, not bytes, so multibyte titles
		// stay valid UTF-8 and wide glyphs do not overflow the pane.
		line := runewidth.Truncate(fmt.Sprintf(" %#10x  %s", uint32(w.ID), title), width, "")
		if i == m.selected {
			rows = append(rows, selectedRowStyle.Width(width).Render(line))
		} else {
			rows = append(rows, rowStyle.Width(width).Render(line))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, rowStyle.Render(" no windows"))
	}
	return strings.Join(rows, "\n")
}

func (m model) renderDetail(width, height int) string {
	var lines []string

	if m.selected < len(m.windows) {
		w := m.windows[m.selected]
		desc := probe.DescribeWindow(w.Handle)

		lines = append(lines, detailHeaderStyle.Render(" window handle ("+desc.System+")"))
		lines = append(lines, renderFields(desc)...)
		if w.PID != 0 {
			lines = append(lines, fmt.Sprintf("   pid: %d", w.PID))
		}
		lines = append(lines, "")
	}

	lines = append(lines, detailHeaderStyle.Render(" display handle ("+m.display.Handle.System+")"))
	lines = append(lines, renderFields(m.display.Handle)...)

	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderFields formats one handle description, dimming sentinel fields.
func renderFields(desc probe.HandleDesc) []string {
	if desc.Unsupported {
		return []string{absentStyle.Render("   (unsupported payload in this build)")}
	}
	if len(desc.Fields) == 0 {
		return []string{absentStyle.Render("   (no separate connection on this system)")}
	}

	var lines []string
	for _, f := range desc.Fields {
		line := fmt.Sprintf("   %s: %s", f.Name, f.Value)
		if f.Absent {
			line = absentStyle.Render(line + " (absent)")
		}
		lines = append(lines, line)
	}
	return lines
}

var _ tea.Model = model{}

// Package history provides an overlay listing the commands processed in this
// session, newest last, fed from the processor's command log.
package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/dlist/internal/processor"
	"github.com/zjrosen/dlist/internal/ui/overlay"
	"github.com/zjrosen/dlist/internal/ui/styles"
)

const (
	viewportMaxHeight = 20
	viewportMinHeight = 5
	boxMaxWidth       = 120
	boxMinWidth       = 40

	// MaxEntries bounds the retained history; older entries are dropped.
	MaxEntries = 500
)

// CloseMsg is sent when the overlay should be closed.
type CloseMsg struct{}

// Model is the history overlay state.
type Model struct {
	visible      bool
	failuresOnly bool
	entries      []processor.CommandLogEvent
	width        int
	height       int
	viewport     viewport.Model
}

// New creates an empty, hidden history overlay.
func New() Model {
	return Model{}
}

// Append records ev, dropping the oldest entry beyond MaxEntries.
func (m *Model) Append(ev processor.CommandLogEvent) {
	m.entries = append(m.entries, ev)
	if over := len(m.entries) - MaxEntries; over > 0 {
		m.entries = m.entries[over:]
	}
	if m.visible {
		m.refreshViewport()
	}
}

// Len returns the number of retained entries.
func (m Model) Len() int {
	return len(m.entries)
}

// Last returns the most recent entry.
func (m Model) Last() (processor.CommandLogEvent, bool) {
	if len(m.entries) == 0 {
		return processor.CommandLogEvent{}, false
	}
	return m.entries[len(m.entries)-1], true
}

// Update handles keys while the overlay is visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			m.failuresOnly = !m.failuresOnly
			m.refreshViewport()
		case "c":
			m.entries = nil
			m.refreshViewport()
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+c":
			return m, tea.Quit
		case "H", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the overlay box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextPrimaryColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.BorderDefaultColor).
		Render(strings.Repeat("─", boxWidth))

	title := "History"
	if m.failuresOnly {
		title += " (failures)"
	}

	body := strings.Join([]string{
		titleStyle.Render(title),
		divider,
		m.viewport.View(),
		divider,
		m.hint(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(boxWidth).
		Render(body)
}

// Overlay renders the history centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible returns whether the overlay is currently visible.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle toggles the overlay visibility.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
	}
}

// Hide makes the overlay invisible.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize updates the overlay's knowledge of the screen size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentWidth := m.boxWidth() - 2
	// Title, two dividers, hint and borders take six rows.
	height := max(min(viewportMaxHeight, m.height-6), viewportMinHeight)

	m.viewport = viewport.New(contentWidth, height)
	m.viewport.SetContent(m.content(contentWidth))
	m.viewport.GotoBottom()
}

func (m Model) content(width int) string {
	var lines []string
	for _, ev := range m.entries {
		if m.failuresOnly && ev.Success {
			continue
		}
		lines = append(lines, FormatEntry(ev, width))
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true).
			Render("No commands yet")
	}
	return strings.Join(lines, "\n")
}

// FormatEntry renders ev as one line, truncated to width:
// "15:04:05 ✓ insert_at_end #0 (user) 120µs".
func FormatEntry(ev processor.CommandLogEvent, width int) string {
	mark, style := "✓", lipgloss.NewStyle().Foreground(styles.StatusSuccessColor)
	if !ev.Success {
		mark, style = "✗", lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
	}

	line := fmt.Sprintf("%s %s %s", ev.Timestamp.Format("15:04:05"), mark, ev.CommandType)
	if ev.Target != "" {
		line += " " + ev.Target
	}
	line += fmt.Sprintf(" (%s) %s", ev.Source, ev.Duration)
	if ev.Error != nil {
		line += ": " + ev.Error.Error()
	}

	if width > 3 && ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width-3, "...")
	}
	return style.Render(line)
}

func (m Model) hint() string {
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	activeStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	filter := hintStyle.Render("[f] Failures only")
	if m.failuresOnly {
		filter = activeStyle.Render("[f] Failures only")
	}
	return strings.Join([]string{
		hintStyle.Render("[c] Clear"),
		filter,
		hintStyle.Render("[esc] Close"),
	}, "  ")
}

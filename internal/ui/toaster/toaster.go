// Package toaster shows short-lived notifications for operation outcomes.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/dlist/internal/ui/overlay"
	"github.com/zjrosen/dlist/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✅ with green border.
	StyleSuccess Style = iota
	// StyleError shows ❌ with red border.
	StyleError
	// StyleInfo shows ℹ️ with blue border for informational messages.
	StyleInfo
	// StyleWarn shows ⚠️ with yellow border for warnings.
	StyleWarn
)

// maxTextWidth is where long messages, such as wrapped errors, start a new line.
const maxTextWidth = 60

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// gen increments on every Show so a dismiss scheduled for an older toast
	// does not hide a newer one.
	gen int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast with the given message and style.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.gen++
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// Generation identifies the most recent Show.
func (m Model) Generation() int {
	return m.gen
}

// Update hides the toast when msg dismisses the current generation.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Gen == m.gen {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		content = "❌ " + m.message
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		content = "ℹ️ " + m.message
	case StyleWarn:
		style = style.BorderForeground(styles.ToastBorderWarnColor)
		content = "⚠️ " + m.message
	default:
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		content = "✅ " + m.message
	}

	return style.Render(wordwrap.String(content, maxTextWidth))
}

// Overlay renders the toast one row above the bottom edge of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}

	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg signals that the toast of generation Gen should be dismissed.
type DismissMsg struct {
	Gen int
}

// ScheduleDismiss returns a command that dismisses the current toast after d.
// A zero duration keeps the toast until the next one replaces it.
func (m Model) ScheduleDismiss(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	gen := m.gen
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{Gen: gen}
	})
}

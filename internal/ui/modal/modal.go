// Package modal provides a confirmation dialog drawn over the list view.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/dlist/internal/ui/overlay"
	"github.com/zjrosen/dlist/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota // Blue (default)
	ButtonDanger                       // Red (for destructive actions)
)

// Config controls modal appearance.
type Config struct {
	Title          string        // Modal title (e.g., "Remove collection")
	Message        string        // Optional message/prompt text
	ConfirmVariant ButtonVariant // Style for confirm button (default: ButtonPrimary)
	MinWidth       int           // Minimum width (0 = default 40)
}

// SubmitMsg is sent when the user confirms the modal.
type SubmitMsg struct{}

// CancelMsg is sent when the user cancels the modal (Esc key or Cancel button).
type CancelMsg struct{}

// Field identifies which button is focused.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

var (
	buttonStyle = lipgloss.NewStyle().Padding(0, 2)

	primaryButtonStyle        = buttonStyle.Foreground(styles.BorderFocusColor)
	primaryButtonFocusedStyle = buttonStyle.Bold(true).Reverse(true).Foreground(styles.BorderFocusColor)
	dangerButtonStyle         = buttonStyle.Foreground(styles.StatusErrorColor)
	dangerButtonFocusedStyle  = buttonStyle.Bold(true).Reverse(true).Foreground(styles.StatusErrorColor)
	cancelButtonStyle         = buttonStyle.Foreground(styles.TextMutedColor)
	cancelButtonFocusedStyle  = buttonStyle.Bold(true).Reverse(true).Foreground(styles.TextSecondaryColor)
)

// Model is the modal component state.
type Model struct {
	config       Config
	focusedField Field
	width        int
	height       int
}

// New creates a modal focused on the confirm button.
func New(cfg Config) Model {
	return Model{config: cfg, focusedField: FieldConfirm}
}

// Update handles messages for the modal. y and n confirm or cancel directly.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "left", "right", "h", "l":
			if m.focusedField == FieldConfirm {
				m.focusedField = FieldCancel
			} else {
				m.focusedField = FieldConfirm
			}
		case "y":
			return m, submit
		case "n", "esc":
			return m, cancel
		case "enter":
			if m.focusedField == FieldConfirm {
				return m, submit
			}
			return m, cancel
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func submit() tea.Msg { return SubmitMsg{} }

func cancel() tea.Msg { return CancelMsg{} }

// View renders the modal content (without overlay).
func (m Model) View() string {
	contentWidth := max(40, m.config.MinWidth, lipgloss.Width(m.config.Title))
	boxWidth := contentWidth + 2 // Account for content padding

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextPrimaryColor).
		PaddingLeft(1)

	dividerStyle := lipgloss.NewStyle().
		Foreground(styles.BorderDefaultColor)
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth)
		content.WriteString(msgStyle.Render(m.config.Message))
		content.WriteString("\n\n")
	}
	content.WriteString(m.renderButtons())

	var result strings.Builder
	result.WriteString(titleStyle.Render(m.config.Title))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	contentStyle := lipgloss.NewStyle().Padding(1, 1)
	result.WriteString(contentStyle.Render(content.String()))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Width(boxWidth)

	return boxStyle.Render(result.String())
}

func (m Model) renderButtons() string {
	confirmStyle := primaryButtonStyle
	if m.focusedField == FieldConfirm {
		confirmStyle = primaryButtonFocusedStyle
	}
	if m.config.ConfirmVariant == ButtonDanger {
		confirmStyle = dangerButtonStyle
		if m.focusedField == FieldConfirm {
			confirmStyle = dangerButtonFocusedStyle
		}
	}

	cancelStyle := cancelButtonStyle
	if m.focusedField == FieldCancel {
		cancelStyle = cancelButtonFocusedStyle
	}

	return confirmStyle.Render("Confirm") + "  " + cancelStyle.Render("Cancel")
}

// Overlay renders the modal centered on the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize updates the modal's knowledge of viewport size for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// FocusedField returns the currently focused button.
func (m Model) FocusedField() Field {
	return m.focusedField
}

// Package help contains the help overlay component.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/dlist/internal/keys"
	"github.com/zjrosen/dlist/internal/log"
	"github.com/zjrosen/dlist/internal/ui/markdown"
	"github.com/zjrosen/dlist/internal/ui/overlay"
	"github.com/zjrosen/dlist/internal/ui/styles"
)

// Operation describes one list operation for the reference section.
type Operation struct {
	Name string
	Args string
	Desc string
}

// Operations returns the operation reference shown below the keybindings.
func Operations() []Operation {
	return []Operation{
		{Name: "insert_after", Args: "v after", Desc: "insert v after the first match"},
		{Name: "delete_after", Args: "ref", Desc: "remove the successor of the first ref"},
		{Name: "remove_value", Args: "v", Desc: "remove the first v, no-op if absent"},
		{Name: "update_value", Args: "old new", Desc: "overwrite the first old"},
		{Name: "sort", Args: "", Desc: "order values ascending"},
		{Name: "search", Args: "v", Desc: "report whether v is present"},
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimaryColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.BorderDefaultColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimaryColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderFocusColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// operationsWidth is the wrap width of the operations reference.
const operationsWidth = 64

// OperationsMarkdown lists Operations as a markdown bullet list.
func OperationsMarkdown() string {
	var sb strings.Builder
	for _, op := range Operations() {
		sig := op.Name
		if op.Args != "" {
			sig += " " + op.Args
		}
		fmt.Fprintf(&sb, "- `%s` %s\n", sig, op.Desc)
	}
	return sb.String()
}

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int

	// operations is rendered once; glamour's style detection must not run
	// while the program owns the terminal.
	operations string
}

// New creates a help view over the default keybindings. markdownStyle is
// "dark" or "light"; empty uses dark.
func New(markdownStyle string) Model {
	return Model{
		keys:       keys.DefaultKeyMap(),
		operations: renderOperations(markdownStyle),
	}
}

func renderOperations(style string) string {
	r, err := markdown.New(operationsWidth, style)
	if err == nil {
		var out string
		if out, err = r.Render(OperationsMarkdown()); err == nil {
			return out
		}
	}
	log.ErrorErr(log.CatUI, "rendering operations reference", err)
	return plainOperations()
}

func plainOperations() string {
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(14)
	argStyle := lipgloss.NewStyle().Foreground(styles.ValueLinkColor).Width(9)
	var sb strings.Builder
	for _, op := range Operations() {
		sb.WriteString(nameStyle.Render(op.Name) + argStyle.Render(op.Args) + descStyle.Render(op.Desc) + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4).Width(30)

	var insertCol strings.Builder
	insertCol.WriteString(sectionStyle.Render("Insert"))
	insertCol.WriteString("\n")
	insertCol.WriteString(m.renderBinding(m.keys.InsertAtBeginning))
	insertCol.WriteString(m.renderBinding(m.keys.InsertAtEnd))
	insertCol.WriteString(m.renderBinding(m.keys.InsertAfter))
	insertCol.WriteString(m.renderBinding(m.keys.UpdateValue))
	insertCol.WriteString(m.renderBinding(m.keys.Sort))
	insertCol.WriteString(m.renderBinding(m.keys.Search))

	var deleteCol strings.Builder
	deleteCol.WriteString(sectionStyle.Render("Delete"))
	deleteCol.WriteString("\n")
	deleteCol.WriteString(m.renderBinding(m.keys.DeleteFromBeginning))
	deleteCol.WriteString(m.renderBinding(m.keys.DeleteFromEnd))
	deleteCol.WriteString(m.renderBinding(m.keys.DeleteAfter))
	deleteCol.WriteString(m.renderBinding(m.keys.RemoveValue))

	var collectionsCol strings.Builder
	collectionsCol.WriteString(sectionStyle.Render("Collections"))
	collectionsCol.WriteString("\n")
	collectionsCol.WriteString(renderKeyDesc("j/k", "up/down"))
	collectionsCol.WriteString(m.renderBinding(m.keys.NewCollection))
	collectionsCol.WriteString(m.renderBinding(m.keys.RemoveCollection))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.keys.ToggleDirection))
	generalCol.WriteString(m.renderBinding(m.keys.History))
	generalCol.WriteString(m.renderBinding(m.keys.Help))
	generalCol.WriteString(m.renderBinding(m.keys.Quit))

	// Two rows of two columns keep the box inside an 80 column terminal
	columns := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			columnStyle.Render(insertCol.String()),
			deleteCol.String(),
		),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			columnStyle.Render(collectionsCol.String()),
			generalCol.String(),
		),
	)

	var opsCol strings.Builder
	opsCol.WriteString(sectionStyle.Render("Operations"))
	opsCol.WriteString("\n")
	opsCol.WriteString(m.operations)
	opsCol.WriteString("\n")

	boxWidth := max(lipgloss.Width(columns), lipgloss.Width(opsCol.String())) + 4

	body := contentStyle.Render(columns + "\n" + opsCol.String() + "\n" + footerStyle.Render("Press ? or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func (m Model) renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}

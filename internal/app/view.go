package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/dlist/internal/registry"
	"github.com/zjrosen/dlist/internal/render"
	"github.com/zjrosen/dlist/internal/ui/history"
	"github.com/zjrosen/dlist/internal/ui/styles"
)

const defaultWidth = 80

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if len(m.entries) == 0 {
		sections = append(sections, styles.MutedStyle.Render("No collections. Press n to create one."))
	}
	for i, e := range m.entries {
		sections = append(sections, m.renderCollection(e, i == m.selected, width))
	}

	sections = append(sections, m.renderFooter())
	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, width, max(m.height, lipgloss.Height(view)))
	}
	if m.history.Visible() {
		view = m.history.Overlay(view)
	}
	if m.showHelp {
		view = m.helpView.Overlay(view)
	}
	if m.confirm != nil {
		view = m.confirm.Overlay(view)
	}
	return zone.Scan(view)
}

func (m Model) renderHeader() string {
	direction := "forward"
	if m.showBackward {
		direction = "forward + backward"
	}
	return styles.StatusBarStyle.Render("dlist · " + strconv.Itoa(len(m.entries)) + " collections · " + direction)
}

func (m Model) renderCollection(e registry.Snapshot, selected bool, width int) string {
	in := panelInput{
		entry:      e,
		selected:   selected,
		width:      width,
		backward:   m.showBackward,
		showLength: m.showLength,
	}
	if m.panels == nil {
		out, _ := renderPanel(m.ctx, in)
		return out
	}
	out, _ := m.panels.Get(m.ctx, in.key(), in, panelTTL)
	return out
}

// renderChain styles the first and last values of a traversal so the head and
// tail stand out from the links between them.
func renderChain(values []int64) string {
	if len(values) == 0 {
		return styles.MutedStyle.Render(render.Empty)
	}

	link := styles.LinkStyle.Render(" ⇄ ")
	parts := make([]string, len(values))
	for i, v := range values {
		text := strconv.FormatInt(v, 10)
		switch i {
		case 0:
			parts[i] = styles.ValueHeadStyle.Render(text)
		case len(values) - 1:
			parts[i] = styles.ValueTailStyle.Render(text)
		default:
			parts[i] = styles.ValueStyle.Render(text)
		}
	}
	return strings.Join(parts, link)
}

func (m Model) renderFooter() string {
	var lines []string

	if m.pending != nil {
		label := string(m.pending.cmdType)
		if m.pending.needsCollection() && m.selected < len(m.entries) {
			label += " on " + strconv.Quote(m.entries[m.selected].Name)
		}
		lines = append(lines, styles.CollectionNameStyle.Render(label)+" "+m.prompt.View())
	}

	if last, ok := m.history.Last(); ok {
		lines = append(lines, styles.MutedStyle.Render("last: ")+history.FormatEntry(last, max(m.width-6, 20)))
	}

	if m.pending != nil {
		lines = append(lines, m.help.View(m.promptKeys))
	} else {
		lines = append(lines, m.help.View(m.keys))
	}
	return strings.Join(lines, "\n")
}

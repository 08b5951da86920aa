package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rounded border pieces.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Panel describes a bordered box whose labels sit inside the border lines:
//
//	╭─ demo ───────────╮
//	│ 5 ⇄ 7 ⇄ 10       │
//	╰───────── 3 values╯
type Panel struct {
	Title   string // left of the top border
	Footer  string // right of the bottom border, dropped when it does not fit
	Width   int    // outer width including borders
	Height  int    // outer height including borders
	Focused bool

	TitleColor lipgloss.TerminalColor
	FocusColor lipgloss.TerminalColor // border colour while focused
}

// Render draws content inside the panel. Content is clipped or padded to the
// inner area so the side borders stay aligned.
func (p Panel) Render(content string) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if p.Focused && p.FocusColor != nil {
		borderColor = p.FocusColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)
	label := lipgloss.NewStyle()
	if p.TitleColor != nil {
		label = label.Foreground(p.TitleColor)
	}

	inner := max(p.Width-2, 1)
	rows := max(p.Height-2, 1)

	body := lipgloss.NewStyle().Width(inner).Height(rows).Render(content)
	lines := strings.Split(body, "\n")

	out := make([]string, 0, rows+2)
	out = append(out, topEdge(p.Title, inner, border, label))
	for i := range rows {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		out = append(out, border.Render(borderVertical)+line+border.Render(borderVertical))
	}
	out = append(out, bottomEdge(p.Footer, inner, border, label))
	return strings.Join(out, "\n")
}

// topEdge embeds title after one dash: ╭─ title ───╮. Titles that do not fit
// are truncated; below five columns the edge is drawn plain.
func topEdge(title string, inner int, border, label lipgloss.Style) string {
	if title == "" || inner < 5 {
		return border.Render(borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight)
	}

	title = TruncateString(title, inner-4)
	rest := max(inner-3-lipgloss.Width(title), 0)
	return border.Render(borderTopLeft+borderHorizontal+" ") +
		label.Render(title) +
		border.Render(" "+strings.Repeat(borderHorizontal, rest)+borderTopRight)
}

// bottomEdge right-aligns footer against the corner: ╰──── footer╯. A footer
// is never truncated, since a cut count would misreport the length.
func bottomEdge(footer string, inner int, border, label lipgloss.Style) string {
	w := lipgloss.Width(footer)
	if footer == "" || w+2 > inner {
		return border.Render(borderBottomLeft + strings.Repeat(borderHorizontal, inner) + borderBottomRight)
	}

	return border.Render(borderBottomLeft+strings.Repeat(borderHorizontal, inner-w-1)+" ") +
		label.Render(footer) +
		border.Render(borderBottomRight)
}

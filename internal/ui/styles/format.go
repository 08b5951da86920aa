package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TruncateString truncates a string to fit within maxWidth, adding ellipsis if needed.
// Cuts fall between grapheme clusters, so an emoji or accented letter is
// never split; wide clusters count as two columns.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	// Need to truncate - leave room for ellipsis
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	var (
		result strings.Builder
		width  int
		state  = -1
	)
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		w := runewidth.StringWidth(cluster)
		if width+w > maxWidth-3 {
			break
		}
		result.WriteString(cluster)
		width += w
		s = rest
		state = newState
	}

	return result.String() + "..."
}

// FormatLength returns the element count shown next to a collection name.
func FormatLength(n int) string {
	if n == 1 {
		return "1 value"
	}
	return fmt.Sprintf("%d values", n)
}

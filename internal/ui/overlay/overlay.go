// Package overlay draws a block of text over the rendered list view: the help
// sheet in the middle, toasts near the bottom edge.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where the foreground lands.
type Position int

const (
	// Center places the foreground in the middle of the viewport.
	Center Position = iota
	// Bottom places the foreground centered horizontally, PadY rows above
	// the bottom edge.
	Bottom
)

// Config describes the viewport the foreground is placed in.
type Config struct {
	Width    int
	Height   int
	Position Position
	PadY     int
}

// Place renders fg on top of bg. Background cells left and right of the
// foreground keep their ANSI styling.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}

	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of line starting at column x with insert.
func splice(line, insert string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	if end := x + ansi.StringWidth(insert); end < ansi.StringWidth(line) {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + insert + right
}

// origin returns the top-left cell of the foreground, clamped to the viewport.
func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}

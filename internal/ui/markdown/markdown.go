// Package markdown renders markdown reference text for the TUI.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = "dark"

// noMarginStyle drops glamour's document margins so the output sits flush
// inside an already padded box.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with a fixed word wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer that wraps at width. style is "dark" or
// "light" and defaults to "dark" when empty.
// A fixed style is used instead of WithAutoStyle(), which queries the
// terminal for its background and lets the reply leak into the input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = DefaultStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output, without the blank
// lines glamour puts around the document.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

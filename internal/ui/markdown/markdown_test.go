package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender_WrapsToWidth(t *testing.T) {
	r, err := New(30, "dark")
	require.NoError(t, err)
	require.Equal(t, 30, r.Width())

	out, err := r.Render("- **delete_after** removes the successor of the first matching reference value")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "delete_after")
	require.NotContains(t, plain, "**", "emphasis markers are styled, not printed")
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 30, "line %q", line)
	}
}

func TestNew_EmptyStyleDefaultsToDark(t *testing.T) {
	r, err := New(40, "")
	require.NoError(t, err)

	out, err := r.Render("`sort` orders values")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "sort")
	require.NotContains(t, ansi.Strip(out), "`")
}

func TestNew_LightStyle(t *testing.T) {
	r, err := New(40, "light")
	require.NoError(t, err)

	out, err := r.Render("**bold** text")
	require.NoError(t, err)
	require.Equal(t, "bold text", strings.TrimSpace(ansi.Strip(out)))
}

func TestRender_TrimsOuterBlankLines(t *testing.T) {
	r, err := New(40, "dark")
	require.NoError(t, err)

	out, err := r.Render("plain text")
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(out, "\n"))
	require.False(t, strings.HasSuffix(out, "\n"))
}

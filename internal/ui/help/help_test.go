package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_New(t *testing.T) {
	m := New("dark")

	assert.NotEmpty(t, m.keys.Up.Keys(), "expected Up keys to be set")
	assert.NotEmpty(t, m.keys.InsertAfter.Keys(), "expected InsertAfter keys to be set")
	assert.NotEmpty(t, m.keys.Help.Keys(), "expected Help keys to be set")
	assert.NotEmpty(t, m.keys.Quit.Keys(), "expected Quit keys to be set")
}

func TestHelp_SetSize(t *testing.T) {
	m := New("dark")

	m = m.SetSize(120, 40)

	assert.Equal(t, 120, m.width, "expected width to be 120")
	assert.Equal(t, 40, m.height, "expected height to be 40")

	// Verify SetSize returns new model (immutability)
	m2 := m.SetSize(80, 24)
	assert.Equal(t, 80, m2.width, "expected new model width to be 80")
	assert.Equal(t, 120, m.width, "expected original model width unchanged")
}

func TestHelp_View_ContainsSections(t *testing.T) {
	view := New("dark").SetSize(80, 30).View()

	for _, section := range []string{"Insert", "Delete", "Collections", "General", "Operations"} {
		assert.Contains(t, view, section, "expected view to contain %s section", section)
	}
}

func TestHelp_View_ContainsKeybindings(t *testing.T) {
	view := New("dark").SetSize(80, 30).View()

	assert.Contains(t, view, "insert at beginning")
	assert.Contains(t, view, "delete after value")
	assert.Contains(t, view, "remove collection")
	assert.Contains(t, view, "j/k")
	assert.Contains(t, view, "forward/backward")
	assert.Contains(t, view, "command history")
	assert.Contains(t, view, "quit")
}

func TestHelp_View_ContainsOperations(t *testing.T) {
	view := ansi.Strip(New("dark").SetSize(80, 30).View())

	for _, op := range Operations() {
		assert.Contains(t, view, op.Name)
		assert.Contains(t, view, op.Desc)
	}
}

func TestHelp_View_ContainsTitleAndFooter(t *testing.T) {
	view := New("dark").SetSize(80, 30).View()

	assert.Contains(t, view, "Keybindings", "expected view to contain title")
	assert.Contains(t, view, "Press ? or Esc to close", "expected view to contain footer")
}

func TestHelp_Box_FitsEightyColumns(t *testing.T) {
	box := New("dark").renderContent()

	assert.LessOrEqual(t, lipgloss.Width(box), 80)
}

func TestHelp_Overlay(t *testing.T) {
	m := New("dark").SetSize(80, 30)

	background := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 30), "\n")

	result := m.Overlay(background)

	assert.Contains(t, result, "Keybindings", "expected overlay to contain title")
	lines := strings.Split(result, "\n")
	require.NotEmpty(t, lines, "expected result to have lines")
	assert.Contains(t, lines[0], ".", "expected first line to contain background")
	assert.Greater(t, strings.Count(result, "."), 100, "expected background dots to be preserved around help")
}

func TestHelp_renderBinding(t *testing.T) {
	m := New("dark")

	output := m.renderBinding(m.keys.Quit)

	assert.Contains(t, output, "q", "expected binding to contain key")
	assert.Contains(t, output, "quit", "expected binding to contain description")
}

func TestHelp_View_Stability(t *testing.T) {
	m := New("dark").SetSize(80, 30)

	assert.Equal(t, m.View(), m.View(), "expected stable output from same model")
}

func TestOperationsMarkdown_OneBulletPerOperation(t *testing.T) {
	md := OperationsMarkdown()

	assert.Equal(t, len(Operations()), strings.Count(md, "- `"))
	assert.Contains(t, md, "- `update_value old new` overwrite the first old")
	assert.Contains(t, md, "- `sort` order values ascending")
}

func TestPlainOperations_ListsEveryOperation(t *testing.T) {
	out := plainOperations()

	for _, op := range Operations() {
		assert.Contains(t, out, op.Name)
	}
	assert.Len(t, strings.Split(out, "\n"), len(Operations()))
}

func TestRenderOperations_StylesMarkdown(t *testing.T) {
	for _, style := range []string{"", "dark", "light"} {
		out := ansi.Strip(renderOperations(style))

		assert.NotContains(t, out, "`", "style %q: code spans are styled, not printed", style)
		for _, op := range Operations() {
			assert.Contains(t, out, op.Name, "style %q", style)
		}
	}
}

package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_NoConflicts(t *testing.T) {
	km := DefaultKeyMap()

	seen := make(map[string]string)
	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				prev, dup := seen[k]
				require.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestDefaultKeyMap_FullHelpCoversEveryBinding(t *testing.T) {
	km := DefaultKeyMap()

	var count int
	for _, group := range km.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
			count++
		}
	}
	// Up, Down, ten sequence operations, two registry operations and four
	// general bindings.
	require.Equal(t, 18, count)
}

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"InsertAtEnd", km.InsertAtEnd, []string{"a"}},
		{"DeleteFromEnd", km.DeleteFromEnd, []string{"X"}},
		{"DeleteAfter", km.DeleteAfter, []string{"d"}},
		{"Search", km.Search, []string{"/"}},
		{"ToggleDirection", km.ToggleDirection, []string{"tab"}},
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultPromptKeyMap(t *testing.T) {
	km := DefaultPromptKeyMap()

	require.Equal(t, []string{"enter"}, km.Submit.Keys())
	require.Equal(t, []string{"esc", "ctrl+c"}, km.Cancel.Keys())
	require.Len(t, km.FullHelp(), 1)
}

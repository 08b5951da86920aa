// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the list view.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Sequence operations on the selected collection
	InsertAtBeginning   key.Binding
	InsertAtEnd         key.Binding
	InsertAfter         key.Binding
	DeleteFromBeginning key.Binding
	DeleteFromEnd       key.Binding
	DeleteAfter         key.Binding
	RemoveValue         key.Binding
	UpdateValue         key.Binding
	Sort                key.Binding
	Search              key.Binding

	// Registry
	NewCollection    key.Binding
	RemoveCollection key.Binding

	// General
	ToggleDirection key.Binding
	History         key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous collection"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next collection"),
		),

		InsertAtBeginning: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert at beginning"),
		),
		InsertAtEnd: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "insert at end"),
		),
		InsertAfter: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "insert after value"),
		),
		DeleteFromBeginning: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete first"),
		),
		DeleteFromEnd: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete last"),
		),
		DeleteAfter: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete after value"),
		),
		RemoveValue: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "remove value"),
		),
		UpdateValue: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "update value"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),

		NewCollection: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new collection"),
		),
		RemoveCollection: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "remove collection"),
		),

		ToggleDirection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "forward/backward"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "command history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.InsertAtEnd, k.DeleteFromEnd, k.Sort, k.ToggleDirection, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NewCollection, k.RemoveCollection},
		{k.InsertAtBeginning, k.InsertAtEnd, k.InsertAfter, k.UpdateValue},
		{k.DeleteFromBeginning, k.DeleteFromEnd, k.DeleteAfter, k.RemoveValue},
		{k.Sort, k.Search, k.ToggleDirection, k.History, k.Help, k.Quit},
	}
}

// PromptKeyMap defines the keybindings while an argument prompt is open.
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultPromptKeyMap returns the keybindings for the argument prompt.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns keybindings for the full help view.
func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

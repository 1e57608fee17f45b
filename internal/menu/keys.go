package menu

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Open          key.Binding
	Save          key.Binding
	Edit          key.Binding
	Delete        key.Binding
	Kill          key.Binding
	TogglePreview key.Binding
	ToggleHelp    key.Binding
	DeleteWord    key.Binding
	Quit          key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑/C-p", "previous item"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓/C-n", "next item"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open session"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save session"),
	),
	Edit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("C-e", "edit session"),
	),
	Delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "delete/kill"),
	),
	Kill: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("C-k", "kill session"),
	),
	TogglePreview: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "toggle preview"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("C-h", "toggle help"),
	),
	DeleteWord: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("C-w", "delete last word"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

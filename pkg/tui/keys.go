package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the playground bindings. It implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Center   key.Binding
	Dropdown key.Binding
	Tooltip  key.Binding
	Overlap  key.Binding
	RTL      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		Center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "center anchor"),
		),
		Dropdown: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle dropdown"),
		),
		Tooltip: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle tooltip"),
		),
		Overlap: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "allow overlap"),
		),
		RTL: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rtl"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dropdown, k.Tooltip, k.Overlap, k.RTL, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Center},
		{k.Dropdown, k.Tooltip},
		{k.Overlap, k.RTL},
		{k.Help, k.Quit},
	}
}

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	SelectUp    key.Binding
	SelectDown  key.Binding
	PreviewUp   key.Binding
	PreviewDown key.Binding
	Open        key.Binding
	QuickLook   key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "fast scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "fast scroll down"),
		),
		SelectUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "select previous"),
		),
		SelectDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "select next"),
		),
		PreviewUp: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "preview up"),
		),
		PreviewDown: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "preview down"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in file manager"),
		),
		QuickLook: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "preview"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns a brief help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown, k.SelectDown, k.Quit}
}

// FullHelp returns all help bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.SelectUp, k.SelectDown},
		{k.PreviewUp, k.PreviewDown},
		{k.Open, k.QuickLook, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	Apply       key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Copy        key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "update analysis"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next report"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous report"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "copy report"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "up"),
			key.WithHelp("↑/PgUp", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "down"),
			key.WithHelp("↓/PgDn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.NextSection, k.Copy, k.Quit}
}

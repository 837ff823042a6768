package field

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings that press a field's icon buttons. They are
// chosen to stay clear of the text input's own editing keys.
type KeyMap struct {
	LeadingTap  key.Binding
	TrailingTap key.Binding
}

// DefaultKeyMap returns the default icon bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeadingTap: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "leading icon"),
		),
		TrailingTap: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "trailing icon"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeadingTap, k.TrailingTap}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

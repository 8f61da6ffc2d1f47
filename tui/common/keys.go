package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview key bindings. Every binding uses a key the
// draft text input does not need, so typing is never swallowed.
type KeyMap struct {
	Quit     key.Binding
	NextSlot key.Binding
	PrevSlot key.Binding
	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding // ctrl+y copies the selected item
	Edit     key.Binding // ctrl+e edits the draft in $EDITOR
	Revert   key.Binding
	Reload   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextSlot: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next template"),
		),
		PrevSlot: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous template"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Edit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit ($EDITOR)"),
		),
		Revert: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "revert"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload file"),
		),
	}
}

// Hints lists the bindings as "key: action" items for the status bar.
func (k KeyMap) Hints() []string {
	bindings := []key.Binding{k.NextSlot, k.Up, k.Copy, k.Edit, k.Revert, k.Reload, k.Quit}
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, h.Key+": "+h.Desc)
	}
	return items
}

// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application, cancelling any running search.
	Quit key.Binding

	// Start runs a search with the current folder and terms.
	Start key.Binding

	// NextField moves focus to the next input.
	NextField key.Binding

	// PrevField moves focus to the previous input.
	PrevField key.Binding

	// ToggleCase flips case-sensitive matching.
	ToggleCase key.Binding

	// Save prompts for a file and exports the displayed results.
	Save key.Binding

	// Clear resets inputs, progress and results.
	Clear key.Binding

	// Cancel closes the save prompt.
	Cancel key.Binding

	// ScrollUp scrolls the results up.
	ScrollUp key.Binding

	// ScrollDown scrolls the results down.
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "case"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "up"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "down"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// ShortHelp returns the bindings shown while editing.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.NextField, k.ToggleCase, k.Save, k.Clear, k.Quit}
}

// RunningHelp returns the bindings that still act during a search.
func (k *KeyMap) RunningHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown, k.Quit}
}

// PromptHelp returns the bindings for the save prompt.
func (k *KeyMap) PromptHelp() []key.Binding {
	return []key.Binding{k.Start, k.Cancel}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.NextField, k.PrevField, k.ToggleCase},
		{k.Save, k.Clear, k.Cancel},
		{k.ScrollUp, k.ScrollDown, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

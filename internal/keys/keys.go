package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/kmacinski/desksim/internal/config"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Applications
	ToggleCalculator key.Binding
	ToggleNotepad    key.Binding
	ToggleSystem     key.Binding
	ToggleHelp       key.Binding

	// Window management
	NextWindow key.Binding
	PrevWindow key.Binding
	Close      key.Binding
	Minimize   key.Binding
	Maximize   key.Binding

	// Actions
	CopyDisplay key.Binding
	Quit        key.Binding
}

// DefaultKeyMap holds the built-in keybindings
var DefaultKeyMap = New(config.NewKeybindRegistry(config.DefaultConfig()))

// New builds a key map from the configured keybindings
func New(reg *config.KeybindRegistry) KeyMap {
	bind := func(action string) key.Binding {
		keys := reg.GetKeys(action)
		if len(keys) == 0 {
			return key.NewBinding(key.WithDisabled())
		}
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), config.ActionDescriptions[action]),
		)
	}

	return KeyMap{
		ToggleCalculator: bind(config.ActionToggleCalculator),
		ToggleNotepad:    bind(config.ActionToggleNotepad),
		ToggleSystem:     bind(config.ActionToggleSystem),
		ToggleHelp:       bind(config.ActionToggleHelp),
		NextWindow:       bind(config.ActionNextWindow),
		PrevWindow:       bind(config.ActionPrevWindow),
		Close:            bind(config.ActionCloseWindow),
		Minimize:         bind(config.ActionMinimizeWindow),
		Maximize:         bind(config.ActionMaximizeWindow),
		CopyDisplay:      bind(config.ActionCopyDisplay),
		Quit:             bind(config.ActionQuit),
	}
}

// HelpBindings returns the keybindings to display in help
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.ToggleCalculator,
		k.ToggleNotepad,
		k.ToggleSystem,
		k.ToggleHelp,
		k.NextWindow,
		k.PrevWindow,
		k.Close,
		k.Minimize,
		k.Maximize,
		k.CopyDisplay,
		k.Quit,
	}
}

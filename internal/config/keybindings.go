package config

import "slices"

// Action names used in the [keybindings] section
const (
	ActionToggleCalculator = "toggle_calculator"
	ActionToggleNotepad    = "toggle_notepad"
	ActionToggleSystem     = "toggle_system"
	ActionToggleHelp       = "toggle_help"
	ActionNextWindow       = "next_window"
	ActionPrevWindow       = "prev_window"
	ActionCloseWindow      = "close_window"
	ActionMinimizeWindow   = "minimize_window"
	ActionMaximizeWindow   = "maximize_window"
	ActionCopyDisplay      = "copy_display"
	ActionQuit             = "quit"
)

// Actions lists every bindable action in display order
var Actions = []string{
	ActionToggleCalculator,
	ActionToggleNotepad,
	ActionToggleSystem,
	ActionToggleHelp,
	ActionNextWindow,
	ActionPrevWindow,
	ActionCloseWindow,
	ActionMinimizeWindow,
	ActionMaximizeWindow,
	ActionCopyDisplay,
	ActionQuit,
}

// ActionDescriptions holds the help text of each action
var ActionDescriptions = map[string]string{
	ActionToggleCalculator: "Show/hide Calculator",
	ActionToggleNotepad:    "Show/hide Notepad",
	ActionToggleSystem:     "Show/hide System",
	ActionToggleHelp:       "Show/hide Help",
	ActionNextWindow:       "Focus next window",
	ActionPrevWindow:       "Focus previous window",
	ActionCloseWindow:      "Close focused window",
	ActionMinimizeWindow:   "Minimize focused window",
	ActionMaximizeWindow:   "Maximize/restore focused window",
	ActionCopyDisplay:      "Copy calculator display",
	ActionQuit:             "Quit",
}

// DefaultKeybindings returns the built-in action to keys mapping
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		ActionToggleCalculator: {"alt+1", "f2"},
		ActionToggleNotepad:    {"alt+2", "f3"},
		ActionToggleSystem:     {"alt+3", "f4"},
		ActionToggleHelp:       {"alt+4", "f1"},
		ActionNextWindow:       {"tab"},
		ActionPrevWindow:       {"shift+tab"},
		ActionCloseWindow:      {"ctrl+w"},
		ActionMinimizeWindow:   {"alt+n"},
		ActionMaximizeWindow:   {"alt+m"},
		ActionCopyDisplay:      {"y", "ctrl+y"},
		ActionQuit:             {"ctrl+q", "ctrl+c"},
	}
}

// KeybindRegistry resolves actions to their configured keys
type KeybindRegistry struct {
	bindings map[string][]string
}

// NewKeybindRegistry creates a registry from cfg, falling back to defaults
func NewKeybindRegistry(cfg *Config) *KeybindRegistry {
	bindings := DefaultKeybindings()
	if cfg != nil {
		for action, keys := range cfg.Keybindings {
			bindings[action] = slices.Clone(keys)
		}
	}
	return &KeybindRegistry{bindings: bindings}
}

// GetKeys returns the keys bound to action
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.bindings[action]
}

// ActionFor returns the action bound to key, or "" if none
func (r *KeybindRegistry) ActionFor(key string) string {
	for _, action := range Actions {
		if slices.Contains(r.bindings[action], key) {
			return action
		}
	}
	return ""
}

// IsCustomized reports whether action differs from its default keys
func (r *KeybindRegistry) IsCustomized(action string) bool {
	return !slices.Equal(r.bindings[action], DefaultKeybindings()[action])
}

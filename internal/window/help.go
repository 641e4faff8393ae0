package window

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/desksim/internal/keys"
	"github.com/kmacinski/desksim/internal/ui"
)

// Help displays keybinding help
type Help struct {
	Base
	keys keys.KeyMap
}

// NewHelp creates a new help window
func NewHelp(styles ui.Styles, km keys.KeyMap) *Help {
	return &Help{
		Base: NewBase("help", styles),
		keys: km,
	}
}

// SetKeyMap replaces the keybindings shown
func (h *Help) SetKeyMap(km keys.KeyMap) {
	h.keys = km
}

// Update handles input (the window is read-only)
func (h *Help) Update(msg tea.Msg) (Window, tea.Cmd) {
	return h, nil
}

// View renders the help content
func (h *Help) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	var lines []string

	keyStyle := h.styles.Bold.Width(14)
	for _, b := range h.keys.HelpBindings() {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(help.Key), h.styles.Text.Render(help.Desc)))
	}

	lines = append(lines, "")

	mouse := []struct {
		key  string
		desc string
	}{
		{"dbl-click", "Open desktop icon"},
		{"click", "Toggle taskbar app"},
		{"drag", "Move window by header"},
		{"[_] [^] [x]", "Minimize, maximize, close"},
	}
	for _, m := range mouse {
		lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(m.key), h.styles.Text.Render(m.desc)))
	}

	lines = append(lines, "")
	lines = append(lines, h.styles.Muted.Render("Calculator: 0-9 . + - * / = % n(±) c(C) y(copy)"))

	return strings.Join(lines, "\n")
}

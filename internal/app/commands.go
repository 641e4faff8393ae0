package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/desksim/internal/config"
	"github.com/kmacinski/desksim/internal/window"
)

// Desktop operations
const (
	CmdOpen         = "open"
	CmdClose        = "close"
	CmdToggle       = "toggle"
	CmdMaximize     = "maximize"
	CmdFocus        = "focus"
	CmdCycle        = "cycle"
	CmdCycleReverse = "cycle_reverse"
	CmdQuit         = "quit"
)

// Command is a desktop operation on a window. An empty Target means the
// focused window.
type Command struct {
	Action string
	Target string
}

type handler func(a *App, target string) tea.Cmd

// handlers maps each desktop operation to its implementation
var handlers = map[string]handler{
	CmdOpen: func(a *App, target string) tea.Cmd {
		a.state.Windows.Open(target)
		return a.refresh(target)
	},
	CmdClose: func(a *App, target string) tea.Cmd {
		a.state.Windows.Close(target)
		return nil
	},
	CmdToggle: func(a *App, target string) tea.Cmd {
		a.state.Windows.Toggle(target)
		return a.refresh(target)
	},
	CmdMaximize: func(a *App, target string) tea.Cmd {
		a.state.Windows.Maximize(target)
		return nil
	},
	CmdFocus: func(a *App, target string) tea.Cmd {
		a.state.Windows.Focus(target)
		return nil
	},
	CmdCycle: func(a *App, _ string) tea.Cmd {
		a.state.Windows.Cycle(false)
		return nil
	},
	CmdCycleReverse: func(a *App, _ string) tea.Cmd {
		a.state.Windows.Cycle(true)
		return nil
	},
	CmdQuit: func(a *App, _ string) tea.Cmd {
		a.clock.Stop()
		return tea.Quit
	},
}

// keyCommands maps keybinding actions to desktop operations. Actions missing
// here (copy_display) are handled by the focused window.
var keyCommands = map[string]Command{
	config.ActionToggleCalculator: {Action: CmdToggle, Target: "calculator"},
	config.ActionToggleNotepad:    {Action: CmdToggle, Target: "notepad"},
	config.ActionToggleSystem:     {Action: CmdToggle, Target: "system"},
	config.ActionToggleHelp:       {Action: CmdToggle, Target: "help"},
	config.ActionNextWindow:       {Action: CmdCycle},
	config.ActionPrevWindow:       {Action: CmdCycleReverse},
	config.ActionCloseWindow:      {Action: CmdClose},
	config.ActionMinimizeWindow:   {Action: CmdClose},
	config.ActionMaximizeWindow:   {Action: CmdMaximize},
	config.ActionQuit:             {Action: CmdQuit},
}

// Dispatch runs a desktop operation and moves keyboard focus to the topmost
// window. Unknown operations are ignored.
func (a *App) Dispatch(c Command) tea.Cmd {
	h, ok := handlers[c.Action]
	if !ok {
		return nil
	}

	target := c.Target
	if target == "" {
		target = a.state.Windows.Focused()
	}

	a.log.Debug("dispatch", "action", c.Action, "target", target)
	cmd := h(a, target)
	a.syncFocus()
	return cmd
}

// refresh samples the system monitor right away when it becomes visible
func (a *App) refresh(target string) tea.Cmd {
	if target == a.system.Name() && a.state.Windows.IsActive(target) {
		return window.Sample()
	}
	return nil
}

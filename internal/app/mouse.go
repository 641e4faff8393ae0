package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/desksim/internal/layout"
	"github.com/kmacinski/desksim/internal/window"
)

// controlCommands maps header buttons to desktop operations.
// Minimize hides the window like close does.
var controlCommands = map[layout.Control]string{
	layout.ControlMinimize: CmdClose,
	layout.ControlMaximize: CmdMaximize,
	layout.ControlClose:    CmdClose,
}

// handleMouse routes a mouse event to the target under the pointer
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	wins := a.state.Windows

	switch msg.Action {
	case tea.MouseActionMotion:
		wins.DragTo(msg.X, msg.Y)
		return nil
	case tea.MouseActionRelease:
		wins.EndDrag()
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
	default:
		return nil
	}

	t := a.layout.HitTest(wins, msg.X, msg.Y)
	if t.Kind != layout.TargetIcon {
		a.state.ClearIcon()
	}

	var cmd tea.Cmd
	switch t.Kind {
	case layout.TargetControl:
		cmd = a.Dispatch(Command{Action: controlCommands[t.Control], Target: t.Name})

	case layout.TargetHeader:
		a.Dispatch(Command{Action: CmdFocus, Target: t.Name})
		wins.BeginDrag(t.Name, msg.X, msg.Y)

	case layout.TargetBody:
		a.Dispatch(Command{Action: CmdFocus, Target: t.Name})
		if t.X >= 0 && t.Y >= 0 {
			if c, ok := a.windows[t.Name].(window.Clicker); ok {
				cmd = c.Click(t.X, t.Y)
			}
		}

	case layout.TargetTaskbar:
		if t.Name != "" {
			cmd = a.Dispatch(Command{Action: CmdToggle, Target: t.Name})
		}

	case layout.TargetIcon:
		if a.state.ClickIcon(t.Name, a.now(), a.cfg.DoubleClick()) {
			cmd = a.Dispatch(Command{Action: CmdOpen, Target: t.Name})
		}
	}

	a.layout.SetPressedIcon(a.state.PressedIcon)
	return cmd
}

package window

import tea "github.com/charmbracelet/bubbletea"

// Window defines the interface for all application windows
type Window interface {
	// Update handles input when focused
	Update(msg tea.Msg) (Window, tea.Cmd)

	// View renders the window content
	View(width, height int) string

	// Focus state
	Focused() bool
	SetFocus(bool)

	// Identity
	Name() string
}

// Clicker is implemented by windows that react to clicks in their content.
// x and y are relative to the content's top-left cell.
type Clicker interface {
	Click(x, y int) tea.Cmd
}

// StatusMsg reports the outcome of a window action for the status line
type StatusMsg struct {
	Text string
	Err  error
}

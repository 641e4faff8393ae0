package window

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/desksim/internal/ui"
)

// Notepad is a plain in-memory text editor
type Notepad struct {
	Base
	editor textarea.Model
}

// NewNotepad creates a new notepad window
func NewNotepad(styles ui.Styles) *Notepad {
	ta := textarea.New()
	ta.Placeholder = "Type here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	return &Notepad{
		Base:   NewBase("notepad", styles),
		editor: ta,
	}
}

// SetFocus focuses or blurs the editor together with the window
func (n *Notepad) SetFocus(focused bool) {
	n.focused = focused
	if focused {
		n.editor.Focus()
	} else {
		n.editor.Blur()
	}
}

// Value returns the text
func (n *Notepad) Value() string {
	return n.editor.Value()
}

// Update forwards input to the editor
func (n *Notepad) Update(msg tea.Msg) (Window, tea.Cmd) {
	if !n.focused {
		return n, nil
	}

	var cmd tea.Cmd
	n.editor, cmd = n.editor.Update(msg)
	return n, cmd
}

// View renders the editor
func (n *Notepad) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	n.editor.SetWidth(width)
	n.editor.SetHeight(height)
	return n.editor.View()
}

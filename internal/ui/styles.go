package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the application
type Styles struct {
	// Desktop
	Desktop     lipgloss.Style
	TopBar      lipgloss.Style
	Icon        lipgloss.Style
	IconPressed lipgloss.Style

	// Window frames
	HeaderFocused   lipgloss.Style
	HeaderUnfocused lipgloss.Style
	WindowTitle     lipgloss.Style
	ControlButton   lipgloss.Style
	CloseButton     lipgloss.Style
	BodyFocused     lipgloss.Style
	BodyUnfocused   lipgloss.Style

	// Taskbar
	Taskbar           lipgloss.Style
	TaskbarItem       lipgloss.Style
	TaskbarItemActive lipgloss.Style
	Clock             lipgloss.Style

	// Calculator
	CalcDisplay  lipgloss.Style
	CalcPending  lipgloss.Style
	CalcButton   lipgloss.Style
	CalcOperator lipgloss.Style
	CalcEquals   lipgloss.Style

	// General
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Status lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Desktop: lipgloss.NewStyle().
			Background(c.Desktop),
		TopBar: lipgloss.NewStyle().
			Background(c.Taskbar).
			Foreground(c.Text).
			Bold(true),
		Icon: lipgloss.NewStyle().
			Background(c.Desktop).
			Foreground(c.Text),
		IconPressed: lipgloss.NewStyle().
			Background(c.Desktop).
			Foreground(c.Accent).
			Bold(true),

		HeaderFocused: lipgloss.NewStyle().
			Background(c.BorderFocused).
			Foreground(c.Desktop),
		HeaderUnfocused: lipgloss.NewStyle().
			Background(c.BorderUnfocused).
			Foreground(c.Text),
		WindowTitle: lipgloss.NewStyle().
			Bold(true),
		ControlButton: lipgloss.NewStyle(),
		CloseButton: lipgloss.NewStyle().
			Foreground(c.Danger),
		BodyFocused: lipgloss.NewStyle().
			BorderForeground(c.BorderFocused).
			Foreground(c.Text),
		BodyUnfocused: lipgloss.NewStyle().
			BorderForeground(c.BorderUnfocused).
			Foreground(c.Muted),

		Taskbar: lipgloss.NewStyle().
			Background(c.Taskbar).
			Foreground(c.Text),
		TaskbarItem: lipgloss.NewStyle().
			Background(c.Taskbar).
			Foreground(c.Muted).
			Padding(0, 1),
		TaskbarItemActive: lipgloss.NewStyle().
			Background(c.Taskbar).
			Foreground(c.TaskbarActive).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().
			Background(c.Taskbar).
			Foreground(c.Header).
			Bold(true).
			Padding(0, 1),

		CalcDisplay: lipgloss.NewStyle().
			Foreground(c.Text).
			Bold(true).
			Align(lipgloss.Right),
		CalcPending: lipgloss.NewStyle().
			Foreground(c.Muted).
			Align(lipgloss.Right),
		CalcButton: lipgloss.NewStyle().
			Foreground(c.Text).
			Align(lipgloss.Center),
		CalcOperator: lipgloss.NewStyle().
			Foreground(c.Accent).
			Bold(true).
			Align(lipgloss.Center),
		CalcEquals: lipgloss.NewStyle().
			Foreground(c.TaskbarActive).
			Bold(true).
			Align(lipgloss.Center),

		Text: lipgloss.NewStyle().
			Foreground(c.Text),
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Status: lipgloss.NewStyle().
			Background(c.Taskbar).
			Foreground(c.Accent),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)

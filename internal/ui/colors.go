package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/desksim/internal/config"
)

// Colors defines the color palette for the application
type Colors struct {
	Desktop         lipgloss.Color
	Header          lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Taskbar         lipgloss.Color
	TaskbarActive   lipgloss.Color
	Text            lipgloss.Color
	Muted           lipgloss.Color
	Accent          lipgloss.Color
	Danger          lipgloss.Color
}

// ColorsFrom builds a palette from the configured hex colors
func ColorsFrom(c config.ColorConfig) Colors {
	return Colors{
		Desktop:         lipgloss.Color(c.Desktop),
		Header:          lipgloss.Color(c.Header),
		BorderFocused:   lipgloss.Color(c.BorderFocused),
		BorderUnfocused: lipgloss.Color(c.BorderUnfocused),
		Taskbar:         lipgloss.Color(c.Taskbar),
		TaskbarActive:   lipgloss.Color(c.TaskbarActive),
		Text:            lipgloss.Color(c.Text),
		Muted:           lipgloss.Color(c.Muted),
		Accent:          lipgloss.Color(c.Accent),
		Danger:          lipgloss.Color(c.Danger),
	}
}

// DefaultColors returns the default color palette
var DefaultColors = ColorsFrom(config.DefaultConfig().Colors)

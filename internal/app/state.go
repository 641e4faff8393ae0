package app

import (
	"time"

	"github.com/kmacinski/desksim/internal/wm"
)

// statusTTL is how long a status message stays in the top bar
const statusTTL = 3 * time.Second

// State holds the shared application state
type State struct {
	Windows *wm.Manager

	// Status line
	Status        string
	StatusExpires time.Time

	// Pending first click of a desktop icon double click
	PressedIcon   string
	PressedIconAt time.Time
}

// NewState creates a new state around the window manager
func NewState(windows *wm.Manager) *State {
	return &State{Windows: windows}
}

// SetStatus shows msg in the top bar until statusTTL has passed
func (s *State) SetStatus(msg string, now time.Time) {
	s.Status = msg
	s.StatusExpires = now.Add(statusTTL)
}

// ExpireStatus clears a status message that has outlived its TTL
func (s *State) ExpireStatus(now time.Time) {
	if s.Status != "" && !now.Before(s.StatusExpires) {
		s.Status = ""
	}
}

// ClickIcon records a press on a desktop icon and reports whether it
// completes a double click
func (s *State) ClickIcon(name string, now time.Time, within time.Duration) bool {
	if s.PressedIcon == name && now.Sub(s.PressedIconAt) <= within {
		s.PressedIcon = ""
		return true
	}
	s.PressedIcon = name
	s.PressedIconAt = now
	return false
}

// ClearIcon forgets a pending icon press
func (s *State) ClearIcon() {
	s.PressedIcon = ""
}

package wm

import "slices"

// Entry is one taskbar button
type Entry struct {
	Name   string
	Label  string
	Icon   string
	Active bool
}

// Taskbar mirrors the active window set and shows the clock
type Taskbar struct {
	entries []Entry
	time    string
}

// NewTaskbar creates a taskbar with one inactive entry per app
func NewTaskbar(apps []App) *Taskbar {
	entries := make([]Entry, len(apps))
	for i, app := range apps {
		entries[i] = Entry{Name: app.Name, Label: app.Label, Icon: app.Icon}
	}
	return &Taskbar{entries: entries}
}

// Reflect sets every entry's indicator to its membership in active
func (t *Taskbar) Reflect(active []string) {
	for i := range t.entries {
		t.entries[i].Active = slices.Contains(active, t.entries[i].Name)
	}
}

// Entries returns the taskbar buttons in order
func (t *Taskbar) Entries() []Entry {
	return t.entries
}

// SetTime implements the clock display
func (t *Taskbar) SetTime(s string) {
	t.time = s
}

// Time returns the last time written by the clock
func (t *Taskbar) Time() string {
	return t.time
}

// Package clock provides the self-rescheduling taskbar clock.
package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Display receives the formatted time
type Display interface {
	SetTime(string)
}

// TickMsg is sent on every clock period
type TickMsg struct {
	ID   int
	Time time.Time
}

// Clock writes the current time to its display every interval until stopped
type Clock struct {
	id       int
	interval time.Duration
	format   string
	display  Display
	stopped  bool

	// Now returns the current time; replaced in tests
	Now func() time.Time
}

// New creates a clock with the given period and time layout
func New(interval time.Duration, format string) *Clock {
	return &Clock{
		id:       nextID(),
		interval: interval,
		format:   format,
		Now:      time.Now,
	}
}

// ID identifies the ticks belonging to this clock
func (c *Clock) ID() int {
	return c.id
}

// SetDisplay sets the display; nil means ticks skip the write
func (c *Clock) SetDisplay(d Display) {
	c.display = d
}

// SetFormat changes the time layout used from the next write on
func (c *Clock) SetFormat(format string) {
	c.format = format
}

// Format returns the time layout
func (c *Clock) Format() string {
	return c.format
}

// Start writes the current time and schedules the first tick
func (c *Clock) Start() tea.Cmd {
	c.stopped = false
	c.write(c.Now())
	return c.tick()
}

// Update handles a tick: writes the time and schedules the next one.
// Ticks of other clocks and ticks after Stop are ignored.
func (c *Clock) Update(msg tea.Msg) tea.Cmd {
	t, ok := msg.(TickMsg)
	if !ok || t.ID != c.id || c.stopped {
		return nil
	}
	c.write(t.Time)
	return c.tick()
}

// Stop cancels the clock; the pending tick is dropped when it arrives
func (c *Clock) Stop() {
	c.stopped = true
}

// Stopped reports whether Stop was called
func (c *Clock) Stopped() bool {
	return c.stopped
}

func (c *Clock) write(t time.Time) {
	if c.display == nil {
		return
	}
	c.display.SetTime(t.Format(c.format))
}

func (c *Clock) tick() tea.Cmd {
	id := c.id
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/desksim/internal/ui"
	"github.com/kmacinski/desksim/internal/window"
	"github.com/kmacinski/desksim/internal/wm"
)

// Fixed chrome around the desktop area
const (
	TopChrome     = 1
	TaskbarHeight = 1
)

// header controls: [_][^][x], three cells each
const (
	controlWidth  = 3
	controlsWidth = 3 * controlWidth
)

// TargetKind classifies what is under the pointer
type TargetKind int

const (
	TargetDesktop TargetKind = iota
	TargetTopBar
	TargetIcon
	TargetTaskbar
	TargetHeader
	TargetControl
	TargetBody
)

// Control is a window header button
type Control int

const (
	ControlMinimize Control = iota
	ControlMaximize
	ControlClose
)

// Target is the result of a hit test
type Target struct {
	Kind    TargetKind
	Name    string  // window, icon or taskbar app name
	Control Control // for TargetControl
	X, Y    int     // content-relative cell for TargetBody, -1 on the frame
}

// Scene is everything the desktop needs to draw one frame
type Scene struct {
	Windows  *wm.Manager
	Contents map[string]window.Window
	Status   string
	Title    string
}

// Manager handles desktop rendering and hit testing
type Manager struct {
	styles      ui.Styles
	width       int
	height      int
	showClock   bool
	pressedIcon string
}

// NewManager creates a new layout manager
func NewManager(styles ui.Styles) *Manager {
	return &Manager{
		styles:    styles,
		showClock: true,
	}
}

// Resize updates the layout dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles replaces the styles
func (m *Manager) SetStyles(styles ui.Styles) {
	m.styles = styles
}

// SetShowClock shows or hides the taskbar clock
func (m *Manager) SetShowClock(show bool) {
	m.showClock = show
}

// SetPressedIcon highlights the icon awaiting its second click
func (m *Manager) SetPressedIcon(name string) {
	m.pressedIcon = name
}

// Render draws the top bar, icons, windows by stacking order and the taskbar
func (m *Manager) Render(s Scene) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Desktop background
	blank := m.styles.Desktop.Render(strings.Repeat(" ", m.width))
	canvas := make([]string, m.height)
	for i := range canvas {
		canvas[i] = blank
	}

	// Icons
	for i, app := range s.Windows.Apps() {
		r := iconRect(i, app)
		style := m.styles.Icon
		if app.Name == m.pressedIcon {
			style = m.styles.IconPressed
		}
		Overlay(canvas, style.Render(iconText(app)), r.X, r.Y, m.width)
	}

	// Windows, bottom to top
	focused := s.Windows.Focused()
	for _, w := range s.Windows.Stack() {
		g, _ := s.Windows.Geometry(w.Name)
		frame := m.renderFrame(w, g, w.Name == focused, s.Contents[w.Name])
		Overlay(canvas, frame, g.X, g.Y, m.width)
	}

	canvas[0] = m.renderTopBar(s)
	canvas[m.height-1] = m.renderTaskbar(s.Windows.Taskbar())

	return strings.Join(canvas, "\n")
}

func (m *Manager) renderFrame(w *wm.Window, g wm.Geometry, focused bool, content window.Window) string {
	header := m.renderHeader(w, g.Width, focused)
	if g.Height < 3 || g.Width < 3 {
		return header
	}

	border := lipgloss.RoundedBorder()
	if g.Corners == wm.Square {
		border = lipgloss.NormalBorder()
	}

	style := m.styles.BodyUnfocused
	if focused {
		style = m.styles.BodyFocused
	}

	innerW, innerH := g.Width-2, g.Height-2
	var view string
	if content != nil {
		view = content.View(innerW, innerH)
	}

	body := style.Border(border, false, true, true, true).Render(fit(view, innerW, innerH))
	return header + "\n" + body
}

func (m *Manager) renderHeader(w *wm.Window, width int, focused bool) string {
	hs := m.styles.HeaderUnfocused
	if focused {
		hs = m.styles.HeaderFocused
	}

	title := " " + w.Label
	if width <= controlsWidth {
		return hs.Render(fit(title, width, 1))
	}

	maximize := "[^]"
	if w.Maximized {
		maximize = "[v]"
	}

	return hs.Inherit(m.styles.WindowTitle).Render(fit(title, width-controlsWidth, 1)) +
		m.styles.ControlButton.Inherit(hs).Render("[_]") +
		m.styles.ControlButton.Inherit(hs).Render(maximize) +
		m.styles.CloseButton.Inherit(hs).Render("[x]")
}

func (m *Manager) renderTopBar(s Scene) string {
	left := " " + s.Title
	if focused := s.Windows.Focused(); focused != "" {
		if w, ok := s.Windows.Window(focused); ok {
			left += " │ " + w.Label
		}
	}

	right := ""
	if s.Status != "" {
		right = s.Status + " "
	}

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return m.styles.TopBar.Render(fit(left, m.width, 1))
	}

	return m.styles.TopBar.Render(left+strings.Repeat(" ", gap)) + m.styles.Status.Render(right)
}

func (m *Manager) renderTaskbar(tb *wm.Taskbar) string {
	var b strings.Builder
	used := 0

	for _, sp := range taskbarSpans(tb.Entries()) {
		if sp.X > used {
			b.WriteString(m.styles.Taskbar.Render(strings.Repeat(" ", sp.X-used)))
		}
		style := m.styles.TaskbarItem
		if sp.Entry.Active {
			style = m.styles.TaskbarItemActive
		}
		b.WriteString(style.Render(taskbarLabel(sp.Entry)))
		used = sp.X + sp.Width
	}

	clock := ""
	if m.showClock && tb.Time() != "" {
		clock = m.styles.Clock.Render(tb.Time())
	}

	gap := m.width - used - lipgloss.Width(clock)
	if gap < 0 {
		return ansi.Truncate(b.String(), m.width, "")
	}
	b.WriteString(m.styles.Taskbar.Render(strings.Repeat(" ", gap)))
	b.WriteString(clock)
	return b.String()
}

// HitTest returns the topmost target at cell (x, y)
func (m *Manager) HitTest(wins *wm.Manager, x, y int) Target {
	if y < TopChrome {
		return Target{Kind: TargetTopBar}
	}

	if y >= m.height-TaskbarHeight {
		for _, sp := range taskbarSpans(wins.Taskbar().Entries()) {
			if x >= sp.X && x < sp.X+sp.Width {
				return Target{Kind: TargetTaskbar, Name: sp.Entry.Name}
			}
		}
		return Target{Kind: TargetTaskbar}
	}

	stack := wins.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		g, _ := wins.Geometry(w.Name)
		if !g.Contains(x, y) {
			continue
		}

		if y == g.Y {
			rel := x - g.X
			if g.Width > controlsWidth && rel >= g.Width-controlsWidth {
				return Target{
					Kind:    TargetControl,
					Name:    w.Name,
					Control: Control((rel - (g.Width - controlsWidth)) / controlWidth),
				}
			}
			return Target{Kind: TargetHeader, Name: w.Name}
		}

		bx, by := x-g.X-1, y-g.Y-1
		if bx < 0 || bx >= g.Width-2 || by >= g.Height-2 {
			return Target{Kind: TargetBody, Name: w.Name, X: -1, Y: -1}
		}
		return Target{Kind: TargetBody, Name: w.Name, X: bx, Y: by}
	}

	for i, app := range wins.Apps() {
		if iconRect(i, app).Contains(x, y) {
			return Target{Kind: TargetIcon, Name: app.Name}
		}
	}

	return Target{Kind: TargetDesktop}
}

func iconText(app wm.App) string {
	return app.Icon + " " + app.Label
}

func iconRect(i int, app wm.App) wm.Rect {
	return wm.Rect{
		X:      2,
		Y:      TopChrome + 1 + i*2,
		Width:  ansi.StringWidth(iconText(app)),
		Height: 1,
	}
}

type span struct {
	Entry wm.Entry
	X     int
	Width int
}

// taskbarSpans lays out the taskbar buttons from the left edge
func taskbarSpans(entries []wm.Entry) []span {
	spans := make([]span, 0, len(entries))
	x := 1
	for _, e := range entries {
		w := ansi.StringWidth(taskbarLabel(e)) + 2 // item padding
		spans = append(spans, span{Entry: e, X: x, Width: w})
		x += w + 1
	}
	return spans
}

func taskbarLabel(e wm.Entry) string {
	if e.Active {
		return "[" + e.Label + "]"
	}
	return " " + e.Label + " "
}

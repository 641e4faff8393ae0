// Package wm keeps the state of the simulated desktop's windows: visibility,
// stacking order, position, maximize state and header drags. It also owns the
// taskbar, which mirrors the set of visible windows.
//
// The package knows nothing about rendering. Names that are not part of the
// catalog given to New are ignored by every operation.
package wm

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
)

// App describes one entry of the fixed application catalog
type App struct {
	Name  string
	Label string
	Icon  string
}

// Corners is the frame corner style of a window
type Corners int

const (
	// Rounded is used for restored windows.
	Rounded Corners = iota
	// Square is used for maximized windows.
	Square
)

// Rect is a rectangle in terminal cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Geometry is the effective frame of a window
type Geometry struct {
	Rect
	Corners Corners
}

// Window is the state of one application window
type Window struct {
	Name  string
	Label string
	ID    string // instance id, used to correlate log lines

	Visible   bool
	Z         int
	X, Y      int
	Width     int
	Height    int
	Placed    bool // a position has been assigned
	Maximized bool

	Drag *DragController
}

// headerGrip is the number of header cells a drag keeps on screen at the
// left edge: the three controls plus one title cell.
const headerGrip = 10

// Options configures a Manager
type Options struct {
	Apps          []App
	DefaultWidth  int
	DefaultHeight int
	TopChrome     int // rows reserved above the desktop area
	TaskbarHeight int // rows reserved below the desktop area
	Rand          *rand.Rand
	Logger        *slog.Logger
}

// Manager owns every window of the desktop
type Manager struct {
	apps    []App
	windows map[string]*Window
	taskbar *Taskbar

	z             int
	viewW, viewH  int
	topChrome     int
	taskbarHeight int

	rng *rand.Rand
	log *slog.Logger
}

// New creates a manager with one hidden, unplaced window per app
func New(opts Options) *Manager {
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Manager{
		apps:          opts.Apps,
		windows:       make(map[string]*Window, len(opts.Apps)),
		taskbar:       NewTaskbar(opts.Apps),
		topChrome:     opts.TopChrome,
		taskbarHeight: opts.TaskbarHeight,
		rng:           opts.Rand,
		log:           opts.Logger,
	}

	for _, app := range opts.Apps {
		m.windows[app.Name] = &Window{
			Name:   app.Name,
			Label:  app.Label,
			ID:     uuid.NewString(),
			Width:  opts.DefaultWidth,
			Height: opts.DefaultHeight,
			Drag:   &DragController{},
		}
	}

	return m
}

// Apps returns the catalog in taskbar order
func (m *Manager) Apps() []App {
	return m.apps
}

// Taskbar returns the taskbar mirroring this manager
func (m *Manager) Taskbar() *Taskbar {
	return m.taskbar
}

// Window returns the window state for name
func (m *Manager) Window(name string) (*Window, bool) {
	w, ok := m.windows[name]
	return w, ok
}

// Resize updates the viewport dimensions and places windows opened before
// the viewport was known
func (m *Manager) Resize(width, height int) {
	m.viewW = width
	m.viewH = height
	if width == 0 || height == 0 {
		return
	}
	for _, app := range m.apps {
		if w := m.windows[app.Name]; w.Visible && !w.Placed {
			m.place(w)
		}
	}
}

// DesktopArea returns the region between the top chrome and the taskbar
func (m *Manager) DesktopArea() Rect {
	h := m.viewH - m.topChrome - m.taskbarHeight
	if h < 0 {
		h = 0
	}
	return Rect{X: 0, Y: m.topChrome, Width: m.viewW, Height: h}
}

// Open shows the window, raises it and places it on first open
func (m *Manager) Open(name string) {
	w, ok := m.windows[name]
	if !ok {
		return
	}

	w.Visible = true
	m.raise(w)
	if !w.Placed && m.viewW > 0 && m.viewH > 0 {
		m.place(w)
	}

	m.log.Debug("window opened", "name", name, "id", w.ID, "z", w.Z, "x", w.X, "y", w.Y)
	m.reflect()
}

// Close hides the window; its position and size are kept
func (m *Manager) Close(name string) {
	w, ok := m.windows[name]
	if !ok {
		return
	}

	w.Visible = false
	w.Drag.Release()

	m.log.Debug("window closed", "name", name, "id", w.ID)
	m.reflect()
}

// Toggle opens a hidden window and closes a visible one
func (m *Manager) Toggle(name string) {
	w, ok := m.windows[name]
	if !ok {
		return
	}
	if w.Visible {
		m.Close(name)
	} else {
		m.Open(name)
	}
}

// Maximize switches between restored and maximized geometry
func (m *Manager) Maximize(name string) {
	w, ok := m.windows[name]
	if !ok {
		return
	}

	w.Maximized = !w.Maximized
	w.Drag.Release()

	m.log.Debug("window maximize toggled", "name", name, "id", w.ID, "maximized", w.Maximized)
	m.reflect()
}

// Focus raises a visible window above all others
func (m *Manager) Focus(name string) {
	w, ok := m.windows[name]
	if !ok || !w.Visible {
		return
	}
	if m.Focused() == name {
		return
	}
	m.raise(w)
	m.reflect()
}

// Cycle raises the next visible window. Forward raises the bottom-most window,
// reverse raises the one directly below the focused window.
func (m *Manager) Cycle(reverse bool) {
	stack := m.Stack()
	if len(stack) < 2 {
		return
	}
	if reverse {
		m.raise(stack[len(stack)-2])
	} else {
		m.raise(stack[0])
	}
	m.reflect()
}

// IsActive reports whether name is in the active window set
func (m *Manager) IsActive(name string) bool {
	w, ok := m.windows[name]
	return ok && w.Visible
}

// Active returns the visible windows' names in catalog order
func (m *Manager) Active() []string {
	var names []string
	for _, app := range m.apps {
		if m.windows[app.Name].Visible {
			names = append(names, app.Name)
		}
	}
	return names
}

// Stack returns the visible windows ordered bottom to top
func (m *Manager) Stack() []*Window {
	var stack []*Window
	for _, app := range m.apps {
		if w := m.windows[app.Name]; w.Visible {
			stack = append(stack, w)
		}
	}
	slices.SortFunc(stack, func(a, b *Window) int { return a.Z - b.Z })
	return stack
}

// Focused returns the topmost visible window's name, or "" if none
func (m *Manager) Focused() string {
	stack := m.Stack()
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].Name
}

// Geometry returns the effective frame of the window
func (m *Manager) Geometry(name string) (Geometry, bool) {
	w, ok := m.windows[name]
	if !ok {
		return Geometry{}, false
	}

	if w.Maximized {
		area := m.DesktopArea()
		return Geometry{Rect: area, Corners: Square}, true
	}

	return Geometry{
		Rect:    Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height},
		Corners: Rounded,
	}, true
}

// BeginDrag starts a header drag of the window at pointer (px, py).
// Maximized and hidden windows are not draggable.
func (m *Manager) BeginDrag(name string, px, py int) bool {
	w, ok := m.windows[name]
	if !ok || !w.Visible || w.Maximized {
		return false
	}

	m.Focus(name)
	w.Drag.Press(px, py, w.X, w.Y)
	m.log.Debug("drag started", "name", name, "id", w.ID, "x", w.X, "y", w.Y)
	return true
}

// DragTo moves every window whose header is being dragged.
// It reports whether any window moved.
func (m *Manager) DragTo(px, py int) bool {
	moved := false
	for _, app := range m.apps {
		w := m.windows[app.Name]
		x, y, ok := w.Drag.Move(px, py)
		if !ok {
			continue
		}
		w.X, w.Y = m.clampX(w, x), m.clampHeader(y)
		moved = true
	}
	return moved
}

// EndDrag releases every drag, freezing the windows where they are
func (m *Manager) EndDrag() {
	for _, app := range m.apps {
		w := m.windows[app.Name]
		if w.Drag.Dragging() {
			w.Drag.Release()
			m.log.Debug("drag ended", "name", w.Name, "id", w.ID, "x", w.X, "y", w.Y)
		}
	}
}

// Dragging reports whether any header drag is in progress
func (m *Manager) Dragging() bool {
	for _, w := range m.windows {
		if w.Drag.Dragging() {
			return true
		}
	}
	return false
}

// clampHeader keeps the header row between the top chrome and the taskbar
func (m *Manager) clampHeader(y int) int {
	if m.viewH == 0 {
		return y
	}
	area := m.DesktopArea()
	if y < area.Y {
		return area.Y
	}
	if maxY := area.Y + area.Height - 1; y > maxY && maxY >= area.Y {
		return maxY
	}
	return y
}

// clampX keeps at least headerGrip header cells on screen so the title stays
// grabbable next to the controls
func (m *Manager) clampX(w *Window, x int) int {
	if m.viewW == 0 {
		return x
	}
	area := m.DesktopArea()
	minX := area.X - max(w.Width-headerGrip, 0)
	maxX := area.X + area.Width - 1
	return min(max(x, minX), maxX)
}

func (m *Manager) raise(w *Window) {
	m.z++
	w.Z = m.z
}

// place assigns a random position that keeps the restored footprint inside
// the desktop area
func (m *Manager) place(w *Window) {
	area := m.DesktopArea()
	maxX := area.Width - w.Width
	maxY := area.Height - w.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}

	w.X = area.X + m.rng.IntN(maxX+1)
	w.Y = area.Y + m.rng.IntN(maxY+1)
	w.Placed = true
}

func (m *Manager) reflect() {
	m.taskbar.Reflect(m.Active())
}

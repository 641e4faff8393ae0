package wm

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testApps = []App{
	{Name: "calculator", Label: "Calculator"},
	{Name: "notepad", Label: "Notepad"},
	{Name: "system", Label: "System"},
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := New(Options{
		Apps:          testApps,
		DefaultWidth:  40,
		DefaultHeight: 14,
		TopChrome:     1,
		TaskbarHeight: 1,
		Rand:          rand.New(rand.NewPCG(1, 2)),
	})
	m.Resize(120, 40)
	return m
}

func taskbarActive(m *Manager, name string) bool {
	for _, e := range m.Taskbar().Entries() {
		if e.Name == name {
			return e.Active
		}
	}
	return false
}

func TestManager_OpenCloseToggleKeepTaskbarInSync(t *testing.T) {
	m := newTestManager(t)

	ops := []struct {
		op   string
		name string
		want bool
	}{
		{"open", "calculator", true},
		{"open", "calculator", true},
		{"close", "calculator", false},
		{"toggle", "calculator", true},
		{"toggle", "calculator", false},
		{"close", "calculator", false},
		{"toggle", "notepad", true},
		{"open", "calculator", true},
		{"close", "notepad", false},
	}

	for _, step := range ops {
		switch step.op {
		case "open":
			m.Open(step.name)
		case "close":
			m.Close(step.name)
		case "toggle":
			m.Toggle(step.name)
		}

		assert.Equal(t, step.want, m.IsActive(step.name), "%s %s", step.op, step.name)
		assert.Equal(t, step.want, taskbarActive(m, step.name), "taskbar after %s %s", step.op, step.name)

		w, _ := m.Window(step.name)
		assert.Equal(t, step.want, w.Visible)
	}

	assert.Equal(t, []string{"calculator"}, m.Active())
}

func TestManager_UnknownNameIsNoop(t *testing.T) {
	m := newTestManager(t)

	assert.NotPanics(t, func() {
		m.Open("browser")
		m.Close("browser")
		m.Toggle("browser")
		m.Maximize("browser")
		m.Focus("browser")
	})

	assert.Empty(t, m.Active())
	_, ok := m.Geometry("browser")
	assert.False(t, ok)
	assert.False(t, m.BeginDrag("browser", 1, 1))
}

func TestManager_OpenRaisesAboveOthers(t *testing.T) {
	m := newTestManager(t)

	m.Open("calculator")
	m.Open("notepad")
	assert.Equal(t, "notepad", m.Focused())

	m.Open("calculator")
	assert.Equal(t, "calculator", m.Focused())

	calc, _ := m.Window("calculator")
	notes, _ := m.Window("notepad")
	assert.Greater(t, calc.Z, notes.Z)

	m.Focus("notepad")
	assert.Equal(t, "notepad", m.Focused())
	assert.Equal(t, []string{"calculator", "notepad"}, names(m.Stack()))
}

func TestManager_FocusIgnoresHiddenWindows(t *testing.T) {
	m := newTestManager(t)
	m.Open("calculator")

	m.Focus("notepad")

	assert.Equal(t, "calculator", m.Focused())
	assert.False(t, m.IsActive("notepad"))
}

func TestManager_PlacementKeepsFootprintOnScreen(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		m := New(Options{
			Apps:          testApps,
			DefaultWidth:  40,
			DefaultHeight: 14,
			TopChrome:     1,
			TaskbarHeight: 1,
			Rand:          rand.New(rand.NewPCG(seed, seed+7)),
		})
		m.Resize(80, 24)
		m.Open("calculator")

		w, _ := m.Window("calculator")
		require.True(t, w.Placed)
		assert.GreaterOrEqual(t, w.X, 0)
		assert.GreaterOrEqual(t, w.Y, 1)
		assert.LessOrEqual(t, w.X+w.Width, 80)
		assert.LessOrEqual(t, w.Y+w.Height, 23)
	}
}

func TestManager_PlacementOnTinyViewport(t *testing.T) {
	m := newTestManager(t)
	m.Resize(20, 8)

	m.Open("calculator")

	w, _ := m.Window("calculator")
	assert.Equal(t, 0, w.X)
	assert.Equal(t, 1, w.Y)
}

func TestManager_OpenBeforeResizeDefersPlacement(t *testing.T) {
	m := New(Options{
		Apps:          testApps,
		DefaultWidth:  40,
		DefaultHeight: 14,
		TopChrome:     1,
		TaskbarHeight: 1,
		Rand:          rand.New(rand.NewPCG(1, 2)),
	})

	m.Open("calculator")
	w, _ := m.Window("calculator")
	assert.False(t, w.Placed)
	assert.True(t, w.Visible)

	m.Resize(120, 40)
	require.True(t, w.Placed)
	area := m.DesktopArea()
	assert.GreaterOrEqual(t, w.X, area.X)
	assert.LessOrEqual(t, w.X+w.Width, area.X+area.Width)
	assert.GreaterOrEqual(t, w.Y, area.Y)
	assert.LessOrEqual(t, w.Y+w.Height, area.Y+area.Height)

	x, y := w.X, w.Y
	m.Resize(100, 30)
	assert.Equal(t, x, w.X, "placed windows are not moved again")
	assert.Equal(t, y, w.Y)
}

func TestManager_ReopenKeepsPosition(t *testing.T) {
	m := newTestManager(t)
	m.Open("calculator")
	w, _ := m.Window("calculator")
	x, y := w.X, w.Y

	m.Close("calculator")
	m.Open("calculator")

	assert.Equal(t, x, w.X)
	assert.Equal(t, y, w.Y)
}

func TestManager_MaximizeTwiceRestoresGeometry(t *testing.T) {
	m := newTestManager(t)
	m.Open("calculator")

	before, ok := m.Geometry("calculator")
	require.True(t, ok)
	assert.Equal(t, Rounded, before.Corners)

	m.Maximize("calculator")
	maxed, _ := m.Geometry("calculator")
	assert.Equal(t, Geometry{Rect: Rect{X: 0, Y: 1, Width: 120, Height: 38}, Corners: Square}, maxed)

	m.Maximize("calculator")
	after, _ := m.Geometry("calculator")
	assert.Equal(t, before, after)
}

func TestManager_MaximizedFollowsViewport(t *testing.T) {
	m := newTestManager(t)
	m.Open("notepad")
	m.Maximize("notepad")

	m.Resize(100, 30)

	g, _ := m.Geometry("notepad")
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 100, Height: 28}, g.Rect)
}

func TestManager_Cycle(t *testing.T) {
	m := newTestManager(t)
	m.Open("calculator")
	m.Open("notepad")
	m.Open("system")

	m.Cycle(false)
	assert.Equal(t, "calculator", m.Focused())

	m.Cycle(true)
	assert.Equal(t, "system", m.Focused())
}

func names(ws []*Window) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Name
	}
	return out
}

package layout

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/desksim/internal/keys"
	"github.com/kmacinski/desksim/internal/ui"
	"github.com/kmacinski/desksim/internal/window"
	"github.com/kmacinski/desksim/internal/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testApps = []wm.App{
	{Name: "calculator", Label: "Calculator", Icon: "[#]"},
	{Name: "notepad", Label: "Notepad", Icon: "[~]"},
	{Name: "system", Label: "System", Icon: "[%]"},
}

const (
	testW = 80
	testH = 24
)

func newTestDesktop(t *testing.T) (*Manager, *wm.Manager) {
	t.Helper()
	wins := wm.New(wm.Options{
		Apps:          testApps,
		DefaultWidth:  40,
		DefaultHeight: 14,
		TopChrome:     TopChrome,
		TaskbarHeight: TaskbarHeight,
		Rand:          rand.New(rand.NewPCG(1, 2)),
	})
	wins.Resize(testW, testH)

	m := NewManager(ui.DefaultStyles)
	m.Resize(testW, testH)
	return m, wins
}

// openAt opens name and moves it to (x, y)
func openAt(t *testing.T, wins *wm.Manager, name string, x, y int) {
	t.Helper()
	wins.Open(name)
	w, ok := wins.Window(name)
	require.True(t, ok)
	w.X, w.Y = x, y
}

func TestHitTest(t *testing.T) {
	m, wins := newTestDesktop(t)
	openAt(t, wins, "calculator", 10, 5)

	tests := []struct {
		name string
		x, y int
		want Target
	}{
		{"top bar", 30, 0, Target{Kind: TargetTopBar}},
		{"desktop", 70, 20, Target{Kind: TargetDesktop}},
		{"icon", 3, 2, Target{Kind: TargetIcon, Name: "calculator"}},
		{"second icon", 2, 4, Target{Kind: TargetIcon, Name: "notepad"}},
		{"icon covered by window", 12, 6, Target{Kind: TargetBody, Name: "calculator", X: 1, Y: 0}},
		{"header title", 15, 5, Target{Kind: TargetHeader, Name: "calculator"}},
		{"minimize", 41, 5, Target{Kind: TargetControl, Name: "calculator", Control: ControlMinimize}},
		{"maximize", 45, 5, Target{Kind: TargetControl, Name: "calculator", Control: ControlMaximize}},
		{"close", 49, 5, Target{Kind: TargetControl, Name: "calculator", Control: ControlClose}},
		{"body origin", 11, 6, Target{Kind: TargetBody, Name: "calculator", X: 0, Y: 0}},
		{"left border", 10, 8, Target{Kind: TargetBody, Name: "calculator", X: -1, Y: -1}},
		{"bottom border", 20, 18, Target{Kind: TargetBody, Name: "calculator", X: -1, Y: -1}},
		{"below window", 20, 19, Target{Kind: TargetDesktop}},
		{"taskbar entry", 2, testH - 1, Target{Kind: TargetTaskbar, Name: "calculator"}},
		{"taskbar second entry", 17, testH - 1, Target{Kind: TargetTaskbar, Name: "notepad"}},
		{"taskbar gap", 15, testH - 1, Target{Kind: TargetTaskbar}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.HitTest(wins, tt.x, tt.y))
		})
	}
}

func TestHitTest_TopmostWindowWins(t *testing.T) {
	m, wins := newTestDesktop(t)
	openAt(t, wins, "calculator", 10, 5)
	openAt(t, wins, "notepad", 20, 8)

	got := m.HitTest(wins, 25, 10)
	assert.Equal(t, "notepad", got.Name)

	wins.Focus("calculator")
	got = m.HitTest(wins, 25, 10)
	assert.Equal(t, "calculator", got.Name)
}

func TestHitTest_MaximizedWindowShowsRestoreControl(t *testing.T) {
	m, wins := newTestDesktop(t)
	openAt(t, wins, "calculator", 10, 5)
	wins.Maximize("calculator")

	got := m.HitTest(wins, testW-5, TopChrome)
	assert.Equal(t, Target{Kind: TargetControl, Name: "calculator", Control: ControlMaximize}, got)

	out := ansi.Strip(m.Render(Scene{Windows: wins}))
	assert.Contains(t, out, "[v]")
}

func TestRender(t *testing.T) {
	m, wins := newTestDesktop(t)
	openAt(t, wins, "calculator", 10, 5)
	wins.Taskbar().SetTime("12:34")

	calc := window.NewCalculator(ui.DefaultStyles, keys.DefaultKeyMap)
	out := m.Render(Scene{
		Windows:  wins,
		Contents: map[string]window.Window{"calculator": calc},
		Status:   "Copied: 0",
		Title:    "desksim",
	})

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, testH)

	assert.Contains(t, lines[0], "desksim")
	assert.Contains(t, lines[0], "Calculator")
	assert.Contains(t, lines[0], "Copied: 0")
	assert.Contains(t, lines[5], "Calculator")
	assert.Contains(t, lines[5], "[_][^][x]")
	assert.Contains(t, lines[testH-1], "[Calculator]")
	assert.Contains(t, lines[testH-1], "12:34")
	assert.Contains(t, lines[4], "[~] Notepad", "icons stay visible beside the window")

	for i, line := range lines {
		assert.Equal(t, testW, ansi.StringWidth(line), "line %d", i)
	}
}

func TestRender_HiddenClock(t *testing.T) {
	m, wins := newTestDesktop(t)
	wins.Taskbar().SetTime("12:34")
	m.SetShowClock(false)

	out := ansi.Strip(m.Render(Scene{Windows: wins}))
	assert.NotContains(t, out, "12:34")
}

func TestRender_ZeroSize(t *testing.T) {
	m, wins := newTestDesktop(t)
	m.Resize(0, 0)
	assert.Empty(t, m.Render(Scene{Windows: wins}))
}

package window

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/desksim/internal/keys"
	"github.com/kmacinski/desksim/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newFocusedCalculator() *Calculator {
	c := NewCalculator(ui.DefaultStyles, keys.DefaultKeyMap)
	c.SetFocus(true)
	return c
}

func TestCalculator_Keyboard(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"add with enter", []tea.KeyMsg{runes("5"), runes("+"), runes("3"), {Type: tea.KeyEnter}}, "8"},
		{"divide by zero", []tea.KeyMsg{runes("9"), runes("/"), runes("0"), runes("=")}, "0"},
		{"multiply alias", []tea.KeyMsg{runes("6"), runes("*"), runes("7"), runes("=")}, "42"},
		{"escape clears", []tea.KeyMsg{runes("7"), {Type: tea.KeyEsc}}, "0"},
		{"negate", []tea.KeyMsg{runes("4"), runes("n")}, "-4"},
		{"percent", []tea.KeyMsg{runes("5"), runes("0"), runes("%")}, "0.5"},
		{"unknown key ignored", []tea.KeyMsg{runes("1"), runes("q")}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFocusedCalculator()
			for _, k := range tt.keys {
				c.Update(k)
			}
			assert.Equal(t, tt.want, c.Display())
		})
	}
}

func TestCalculator_IgnoresKeysWhenUnfocused(t *testing.T) {
	c := NewCalculator(ui.DefaultStyles, keys.DefaultKeyMap)
	c.Update(runes("5"))
	assert.Equal(t, "0", c.Display())
}

func TestCalculator_Click(t *testing.T) {
	c := newFocusedCalculator()
	c.View(36, 12) // four columns of 9 cells

	// rows 0-2 are the pending line, display and separator
	click := func(col, row int) {
		c.Click(col*9+4, row+keypadTop)
	}

	click(1, 1) // 8
	click(3, 1) // ×
	click(0, 3) // 1
	click(1, 4) // .
	click(1, 2) // 5
	click(2, 4) // =
	assert.Equal(t, "12", c.Display())

	click(0, 0) // C
	assert.Equal(t, "0", c.Display())
}

func TestCalculator_ClickOutsideKeypad(t *testing.T) {
	c := newFocusedCalculator()
	c.View(36, 12)

	assert.Nil(t, c.Click(4, 0))
	assert.Nil(t, c.Click(4, 20))
	assert.Nil(t, c.Click(35, 4+keypadTop)) // empty cell right of "="
	assert.Nil(t, c.Click(-1, 4))
	assert.Equal(t, "0", c.Display())
}

func TestCalculator_CopyDisplay(t *testing.T) {
	c := newFocusedCalculator()
	var copied string
	c.copy = func(s string) error {
		copied = s
		return nil
	}

	c.Press("4")
	c.Press("2")
	_, cmd := c.Update(runes("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, StatusMsg{Text: "Copied: 42"}, msg)
	assert.Equal(t, "42", copied)
}

func TestCalculator_CopyDisplayError(t *testing.T) {
	c := newFocusedCalculator()
	c.copy = func(string) error { return errors.New("no clipboard") }

	_, cmd := c.Update(runes("y"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(StatusMsg)
	require.True(t, ok)
	require.Error(t, msg.Err)
	assert.Contains(t, msg.Err.Error(), "copy display")
}

func TestCalculator_View(t *testing.T) {
	c := newFocusedCalculator()
	c.Press("1")
	c.Press("2")
	c.Press("+")

	out := ansi.Strip(c.View(36, 12))
	assert.Contains(t, out, "12 +")
	for _, label := range []string{"C", "±", "%", "÷", "×", "−", "+", "="} {
		assert.Contains(t, out, label)
	}
}

func TestNotepad(t *testing.T) {
	n := NewNotepad(ui.DefaultStyles)

	n.Update(runes("x"))
	assert.Empty(t, n.Value(), "unfocused notepad ignores input")

	n.SetFocus(true)
	n.Update(runes("h"))
	n.Update(runes("i"))
	assert.Equal(t, "hi", n.Value())
	assert.True(t, n.Focused())

	n.SetFocus(false)
	n.Update(runes("!"))
	assert.Equal(t, "hi", n.Value())
}

func TestHelp_ListsBindings(t *testing.T) {
	h := NewHelp(ui.DefaultStyles, keys.DefaultKeyMap)
	out := ansi.Strip(h.View(60, 30))

	assert.Contains(t, out, "Show/hide Calculator")
	assert.Contains(t, out, "alt+1/f2")
	assert.Contains(t, out, "Move window by header")
}

func TestSystem_View(t *testing.T) {
	s := NewSystem(ui.DefaultStyles)
	assert.Contains(t, ansi.Strip(s.View(40, 12)), "Sampling...")

	s.SetSample(SampleMsg{
		Snapshot: Snapshot{
			Hostname:   "box",
			Platform:   "linux",
			CPUs:       8,
			CPUPercent: 50,
			MemUsed:    2 << 30,
			MemTotal:   8 << 30,
			MemPercent: 25,
			Taken:      time.Now(),
		},
		Err: errors.New("kernel version: unavailable"),
	})

	out := ansi.Strip(s.View(40, 12))
	assert.Contains(t, out, "box")
	assert.Contains(t, out, "2.0 GiB / 8.0 GiB")
	assert.Contains(t, out, "unavailable")
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "1.5 KiB", humanBytes(1536))
	assert.Equal(t, "1.0 GiB", humanBytes(1<<30))
}

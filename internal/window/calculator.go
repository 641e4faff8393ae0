package window

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/desksim/internal/calc"
	"github.com/kmacinski/desksim/internal/keys"
	"github.com/kmacinski/desksim/internal/ui"
)

// rows above the keypad: pending line, display, separator
const keypadTop = 3

// Calculator shows the calculator display and keypad
type Calculator struct {
	Base
	calc  *calc.Calculator
	keys  keys.KeyMap
	cellW int

	// copy writes text to the system clipboard
	copy func(string) error
}

// NewCalculator creates a new calculator window
func NewCalculator(styles ui.Styles, km keys.KeyMap) *Calculator {
	return &Calculator{
		Base: NewBase("calculator", styles),
		calc: calc.New(),
		keys: km,
		copy: clipboard.WriteAll,
	}
}

// SetKeyMap replaces the keybindings
func (c *Calculator) SetKeyMap(km keys.KeyMap) {
	c.keys = km
}

// Display returns the calculator display
func (c *Calculator) Display() string {
	return c.calc.Display()
}

// Press feeds one keypad label to the calculator
func (c *Calculator) Press(label string) {
	c.calc.Input(label)
}

// Update handles keyboard input
func (c *Calculator) Update(msg tea.Msg) (Window, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, c.keys.CopyDisplay) {
			return c, c.copyDisplay()
		}

		switch msg.String() {
		case "enter", "=":
			c.calc.Input(calc.Equals)
		case "esc", "delete":
			c.calc.Input(calc.Clear)
		case "n", "_":
			c.calc.Input(calc.Negate)
		default:
			c.calc.Input(msg.String())
		}
	}

	return c, nil
}

// Click presses the keypad button under (x, y)
func (c *Calculator) Click(x, y int) tea.Cmd {
	row := y - keypadTop
	if row < 0 || row >= len(calc.Buttons) || c.cellW <= 0 || x < 0 {
		return nil
	}
	col := x / c.cellW
	if col >= len(calc.Buttons[row]) {
		return nil
	}
	c.calc.Input(calc.Buttons[row][col])
	return nil
}

func (c *Calculator) copyDisplay() tea.Cmd {
	text := c.calc.Display()
	write := c.copy
	return func() tea.Msg {
		if err := write(text); err != nil {
			return StatusMsg{Err: fmt.Errorf("copy display: %w", err)}
		}
		return StatusMsg{Text: "Copied: " + text}
	}
}

// View renders the display and keypad
func (c *Calculator) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	c.cellW = max(1, width/4)

	var lines []string
	lines = append(lines,
		c.styles.CalcPending.Width(width).Render(c.calc.Pending()),
		c.styles.CalcDisplay.Width(width).Render(c.calc.Display()),
		c.styles.Muted.Render(strings.Repeat("─", width)),
	)

	for _, row := range calc.Buttons {
		var cells []string
		for _, label := range row {
			cells = append(cells, c.buttonStyle(label).Width(c.cellW).Render(label))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(lines, "\n")
}

func (c *Calculator) buttonStyle(label string) lipgloss.Style {
	switch label {
	case calc.Equals:
		return c.styles.CalcEquals
	case string(calc.OpAdd), string(calc.OpSub), string(calc.OpMul), string(calc.OpDiv):
		return c.styles.CalcOperator
	default:
		return c.styles.CalcButton
	}
}

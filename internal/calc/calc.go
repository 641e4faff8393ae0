// Package calc implements the four-function calculator behind the Calculator window.
//
// The calculator is a small state machine over a display string. Every button press
// is fed to Input with the button label; the resulting display is read back with
// Display. Unknown labels are ignored.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Operator is a pending binary operation
type Operator string

const (
	OpNone Operator = ""
	OpAdd  Operator = "+"
	OpSub  Operator = "−"
	OpMul  Operator = "×"
	OpDiv  Operator = "÷"
)

// Button labels that are not digits or operators
const (
	Clear   = "C"
	Negate  = "±"
	Percent = "%"
	Equals  = "="
	Point   = "."
)

// Buttons is the keypad layout, row by row
var Buttons = [][]string{
	{Clear, Negate, Percent, string(OpDiv)},
	{"7", "8", "9", string(OpMul)},
	{"4", "5", "6", string(OpSub)},
	{"1", "2", "3", string(OpAdd)},
	{"0", Point, Equals},
}

// aliases maps keyboard characters to keypad labels
var aliases = map[string]string{
	"-": string(OpSub),
	"*": string(OpMul),
	"x": string(OpMul),
	"/": string(OpDiv),
	",": Point,
	"c": Clear,
}

// Calculator holds the calculator state
type Calculator struct {
	display           string
	firstOperand      *float64
	operator          Operator
	waitingForOperand bool
}

// New returns a calculator showing "0"
func New() *Calculator {
	return &Calculator{display: "0"}
}

// Display returns the current display string
func (c *Calculator) Display() string {
	return c.display
}

// FirstOperand returns the captured left operand, if any
func (c *Calculator) FirstOperand() (float64, bool) {
	if c.firstOperand == nil {
		return 0, false
	}
	return *c.firstOperand, true
}

// Operator returns the pending operator
func (c *Calculator) Operator() Operator {
	return c.operator
}

// WaitingForOperand reports whether the next digit starts a new number
func (c *Calculator) WaitingForOperand() bool {
	return c.waitingForOperand
}

// Pending renders the captured operand and operator, e.g. "12 +"
func (c *Calculator) Pending() string {
	if c.firstOperand == nil || c.operator == OpNone {
		return ""
	}
	return format(*c.firstOperand) + " " + string(c.operator)
}

// Normalize maps a keyboard character to a keypad label.
// It returns "" when the character has no meaning for the keypad.
func Normalize(s string) string {
	if alias, ok := aliases[s]; ok {
		return alias
	}
	if isLabel(s) {
		return s
	}
	return ""
}

func isLabel(s string) bool {
	for _, row := range Buttons {
		for _, label := range row {
			if label == s {
				return true
			}
		}
	}
	return false
}

// Input applies one keypad press
func (c *Calculator) Input(label string) {
	label = Normalize(label)

	switch {
	case label == "":
		return

	case label == Clear:
		c.display = "0"
		c.firstOperand = nil
		c.operator = OpNone
		c.waitingForOperand = false

	case label == Negate:
		if c.display != "0" {
			c.display = format(c.value() * -1)
		}

	case label == Percent:
		c.display = format(c.value() / 100)

	case isOperator(label):
		if c.firstOperand == nil {
			v := c.value()
			c.firstOperand = &v
		} else if c.operator != OpNone {
			result := c.calculate()
			c.display = format(result)
			c.firstOperand = &result
		}
		c.waitingForOperand = true
		c.operator = Operator(label)

	case label == Equals:
		if c.firstOperand != nil && c.operator != OpNone {
			c.display = format(c.calculate())
			c.firstOperand = nil
			c.operator = OpNone
			c.waitingForOperand = true
		}

	case label == Point:
		if c.waitingForOperand {
			c.display = "0."
			c.waitingForOperand = false
		} else if !strings.Contains(c.display, ".") {
			c.display += "."
		}

	default: // digit
		if c.waitingForOperand {
			c.display = label
			c.waitingForOperand = false
		} else if c.display == "0" {
			c.display = label
		} else {
			c.display += label
		}
	}
}

// calculate applies the pending operator to the first operand and the display.
// Division by zero yields 0.
func (c *Calculator) calculate() float64 {
	first := 0.0
	if c.firstOperand != nil {
		first = *c.firstOperand
	}
	second := c.value()

	switch c.operator {
	case OpAdd:
		return first + second
	case OpSub:
		return first - second
	case OpMul:
		return first * second
	case OpDiv:
		if second == 0 {
			return 0
		}
		return first / second
	default:
		return second
	}
}

// value parses the display; an unparsable display counts as 0
func (c *Calculator) value() float64 {
	v, err := strconv.ParseFloat(c.display, 64)
	if err != nil {
		return 0
	}
	return v
}

func isOperator(label string) bool {
	switch Operator(label) {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// format renders v in its shortest decimal form, switching to exponent
// notation for very large and very small magnitudes.
func format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0" // drops the sign of -0
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		// exponent without zero padding: 1e-7, 1e+21
		s := strconv.FormatFloat(v, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay paints block over canvas with its top-left corner at (x, y).
// Canvas lines are width cells wide; parts of block outside the canvas are clipped.
func Overlay(canvas []string, block string, x, y, width int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}

		fx := x
		if fx < 0 {
			line = ansi.TruncateLeft(line, -fx, "")
			fx = 0
		}
		if fx >= width {
			continue
		}

		lw := ansi.StringWidth(line)
		if fx+lw > width {
			line = ansi.Truncate(line, width-fx, "")
			lw = ansi.StringWidth(line)
		}
		if lw == 0 {
			continue
		}

		bg := canvas[row]
		left := ansi.Truncate(bg, fx, "")
		if pad := fx - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bg, fx+lw, "")

		canvas[row] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}
}

// fit pads or cuts content to exactly width x height cells
func fit(content string, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i, line := range lines {
		w := ansi.StringWidth(line)
		switch {
		case w > width:
			lines[i] = ansi.Truncate(line, width, "")
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}

	return strings.Join(lines, "\n")
}

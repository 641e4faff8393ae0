package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func blankCanvas(w, h int) []string {
	canvas := make([]string, h)
	for i := range canvas {
		canvas[i] = strings.Repeat(".", w)
	}
	return canvas
}

func strip(canvas []string) []string {
	out := make([]string, len(canvas))
	for i, line := range canvas {
		out[i] = ansi.Strip(line)
	}
	return out
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name  string
		block string
		x, y  int
		want  []string
	}{
		{
			name:  "inside",
			block: "ab\ncd",
			x:     1,
			y:     1,
			want:  []string{"......", ".ab...", ".cd...", "......"},
		},
		{
			name:  "clipped right and bottom",
			block: "abc\ndef",
			x:     4,
			y:     3,
			want:  []string{"......", "......", "......", "....ab"},
		},
		{
			name:  "clipped left and top",
			block: "abc\ndef",
			x:     -1,
			y:     -1,
			want:  []string{"ef....", "......", "......", "......"},
		},
		{
			name:  "outside",
			block: "abc",
			x:     10,
			y:     0,
			want:  []string{"......", "......", "......", "......"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := blankCanvas(6, 4)
			Overlay(canvas, tt.block, tt.x, tt.y, 6)
			assert.Equal(t, tt.want, strip(canvas))
		})
	}
}

func TestOverlay_StackedBlocks(t *testing.T) {
	canvas := blankCanvas(6, 1)
	Overlay(canvas, "aaaa", 0, 0, 6)
	Overlay(canvas, "bb", 1, 0, 6)

	assert.Equal(t, []string{"abba.."}, strip(canvas))
}

func TestOverlay_KeepsStyledBackground(t *testing.T) {
	canvas := []string{"\x1b[31m......\x1b[0m"}
	Overlay(canvas, "xy", 2, 0, 6)

	assert.Equal(t, "..xy..", ansi.Strip(canvas[0]))
	assert.Equal(t, 6, ansi.StringWidth(canvas[0]))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  \n    ", fit("ab", 4, 2))
	assert.Equal(t, "abc", fit("abcdef\nxyz", 3, 1))
	assert.Equal(t, "", fit("abc", 0, 1))
}

package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ClampLinesToWidth cuts every line of text to width terminal cells.
// width <= 0 leaves text unchanged.
func ClampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Truncate(ln, width, "…")
	}
	return strings.Join(lines, "\n")
}

// Window returns the [start, end) range of n items to show in height
// rows so that selected stays visible.
func Window(n, selected, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := selected - height/2
	start = max(0, min(start, n-height))
	return start, start + height
}

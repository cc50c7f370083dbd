package navbar

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayRow composites overlay onto a single base row at column x, keeping
// the result exactly width cells wide. Both strings may carry ANSI styling.
func overlayRow(base, overlay string, x, width int) string {
	target := padRight(base, width)

	left := ansi.Truncate(target, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}

	pos := x + ansi.StringWidth(overlay)
	right := ansi.TruncateLeft(target, pos, "")
	if gap := width - pos - ansi.StringWidth(right); gap > 0 {
		right = strings.Repeat(" ", gap) + right
	}

	return left + overlay + right
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites the panel over base at column x, row y, treating both
// as line grids of a width-by-height screen. The chat panel floats over the
// dashboard this way, like the original's floating assistant. ANSI-aware, so
// styled dashboard text keeps its escapes intact on either side of the panel.
func overlayAt(base, panel string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	panelLines := strings.Split(panel, "\n")
	panelWidth := 0
	for _, line := range panelLines {
		if w := ansi.StringWidth(line); w > panelWidth {
			panelWidth = w
		}
	}

	for i, line := range panelLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], padRight(line, panelWidth), x, width)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine overwrites the cells of line starting at column x with panel,
// keeping whatever lies to either side.
func spliceLine(line, panel string, x, width int) string {
	target := padRight(line, width)

	left := ansi.Truncate(target, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	pos := x + ansi.StringWidth(panel)
	right := ansi.TruncateLeft(target, pos, "")
	if gap := width - pos - ansi.StringWidth(right); gap > 0 {
		right = strings.Repeat(" ", gap) + right
	}

	return left + panel + right
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

// truncate shortens s to width cells, appending an ellipsis if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

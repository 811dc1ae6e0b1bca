package format

import "github.com/mattn/go-runewidth"

const (
	// minColumnWidth still fits an ellipsis.
	minColumnWidth = 3
	// maxColumnWidth caps any single column while measuring content.
	maxColumnWidth = 50
)

// allocateWidths computes the display width of every column for the
// given terminal width. Content is measured per column (header and
// cells, each capped at a soft per-column ceiling); if the total still
// exceeds the available space, every column shrinks proportionally and
// is re-floored at the ellipsis minimum.
func allocateWidths(headers []string, rows [][]string, termWidth int) []int {
	numCols := len(headers)

	// "| x |" framing per column plus the trailing border.
	borderOverhead := numCols*3 + 1
	available := termWidth - borderOverhead
	if available < numCols {
		available = numCols
	}

	softCap := available / numCols
	if softCap < minColumnWidth {
		softCap = minColumnWidth
	}
	if softCap > maxColumnWidth {
		softCap = maxColumnWidth
	}

	widths := make([]int, numCols)
	for i, h := range headers {
		widths[i] = capWidth(runewidth.StringWidth(h), softCap)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= numCols {
				break
			}
			if w := capWidth(runewidth.StringWidth(cell), softCap); w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	if total > available {
		scale := float64(available) / float64(total)
		for i, w := range widths {
			scaled := int(float64(w) * scale)
			if scaled < minColumnWidth {
				scaled = minColumnWidth
			}
			widths[i] = scaled
		}
	}

	return widths
}

func capWidth(w, limit int) int {
	if w > limit {
		return limit
	}
	return w
}

// truncate cuts a string to the given display width, appending a
// three-character ellipsis when there is room for one. Strings that
// already fit come back unchanged.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= minColumnWidth {
		return cutToWidth(s, width)
	}
	return cutToWidth(s, width-3) + "..."
}

func cutToWidth(s string, width int) string {
	taken := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if taken+rw > width {
			return s[:i]
		}
		taken += rw
	}
	return s
}

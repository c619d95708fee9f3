package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// putString draws s at (x, y) clipped to maxWidth cells, returns cells used
func putString(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return 0
	}
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if used+rw > maxWidth {
			break
		}
		if cx := x + used; cx >= 0 && cx+rw <= w {
			screen.SetContent(cx, y, r, nil, style)
		}
		used += rw
	}
	return used
}

// putCell draws one rune if (x, y) is on screen
func putCell(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	w, h := screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	screen.SetContent(x, y, r, nil, style)
}

// wrap splits text into lines no wider than width cells
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = ww
		case lineWidth+1+ww <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + ww
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = ww
		}
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

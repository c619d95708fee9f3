package render

import (
	"math"

	"github.com/lixenwraith/swipe-deck/vmath"
)

// Card size limits in cells
const (
	maxCardWidth  = 44
	maxCardHeight = 12
	minCardWidth  = 12
	minCardHeight = 5
	statusRows    = 1
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translate returns r moved by (dx, dy) cells
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CardRect returns the rest slot of the active card for a screen size
func CardRect(width, height int) Rect {
	w := min(maxCardWidth, width-4)
	if w < minCardWidth {
		w = max(width-2, 1)
	}
	h := min(maxCardHeight, height-statusRows-6)
	if h < minCardHeight {
		h = max(height-statusRows-1, 1)
	}
	return Rect{X: (width - w) / 2, Y: 1, W: w, H: h}
}

// OffsetCells converts a length-unit offset to whole cells
func OffsetCells(dx, dy float64) (int, int) {
	return int(math.Round(dx)), int(math.Round(dy / CellAspect))
}

// shear returns the horizontal shift of card row r under a rotation in degrees
// A clockwise rotation moves rows above the center right and rows below left
func shear(r, h int, rotationDeg float64) int {
	if rotationDeg == 0 {
		return 0
	}
	center := float64(h-1) / 2
	dy := (float64(r) - center) * CellAspect
	return int(math.Round(-dy * math.Sin(vmath.DegToRad(rotationDeg))))
}

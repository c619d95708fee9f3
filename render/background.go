package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleTrack      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkSlateGray)
	styleMarkerHot  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
	styleIndicator  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// BackgroundRenderer fills the screen and draws the swipe meter
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates the background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// MeterRow returns the screen row of the swipe meter
func MeterRow(height int) int {
	return height - statusRows - 1
}

// Render fills the frame and draws a track under the stack marking both
// thresholds around the card center, with the live offset as an indicator
func (r *BackgroundRenderer) Render(ctx Context, screen tcell.Screen) {
	screen.Fill(' ', styleBackground)
	if ctx.Plan.Exhausted || ctx.Threshold <= 0 {
		return
	}

	y := MeterRow(ctx.Height)
	slot := CardRect(ctx.Width, ctx.Height)
	if y < slot.Y+slot.H {
		return
	}

	center := slot.X + slot.W/2
	t := int(math.Round(ctx.Threshold))
	for x := 0; x < ctx.Width; x++ {
		putCell(screen, x, y, '·', styleTrack)
	}

	leftStyle, rightStyle := styleTrack, styleTrack
	if ctx.DX < -ctx.Threshold {
		leftStyle = styleMarkerHot
	}
	if ctx.DX > ctx.Threshold {
		rightStyle = styleMarkerHot
	}
	putCell(screen, center-t, y, '┃', leftStyle)
	putCell(screen, center+t, y, '┃', rightStyle)

	if ctx.Dragging || ctx.Swiping {
		putCell(screen, center+int(math.Round(ctx.DX)), y, '●', styleIndicator)
	}
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swipe-deck/deck"
	"github.com/lixenwraith/swipe-deck/vmath"
)

var (
	styleStatus     = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleStatusKeys = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorSilver)
)

const statusKeys = "h/l swipe  r reload  s status  q quit"

// StatusRenderer draws the bottom status bar
type StatusRenderer struct {
	visible bool
}

// NewStatusRenderer creates a visible status bar
func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{visible: true}
}

// IsVisible implements VisibilityToggle
func (r *StatusRenderer) IsVisible() bool {
	return r.visible
}

// Toggle flips status bar visibility
func (r *StatusRenderer) Toggle() {
	r.visible = !r.visible
}

// Render draws deck progress, the live decision preview and key help
func (r *StatusRenderer) Render(ctx Context, screen tcell.Screen) {
	if ctx.Height < 1 {
		return
	}
	y := ctx.Height - 1
	for x := 0; x < ctx.Width; x++ {
		putCell(screen, x, y, ' ', styleStatus)
	}

	used := putString(screen, 1, y, ctx.Width-1, StatusLine(ctx), styleStatus)
	keysWidth := len(statusKeys)
	if x := ctx.Width - keysWidth - 1; x > used+2 {
		putString(screen, x, y, keysWidth, statusKeys, styleStatusKeys)
	}
}

// StatusLine formats the left part of the status bar
func StatusLine(ctx Context) string {
	position := fmt.Sprintf("%d/%d", min(ctx.Index+1, ctx.Total), ctx.Total)
	if ctx.Plan.Exhausted {
		position = fmt.Sprintf("done/%d", ctx.Total)
	}

	state := "idle"
	switch {
	case ctx.Dragging:
		state = fmt.Sprintf("dx %+.0f/%.0f %s", ctx.DX, ctx.Threshold, ctx.Preview)
	case ctx.Swiping:
		state = "swiping " + swipeDirection(ctx.DX).String()
	}

	name := ctx.DeckName
	if name == "" {
		name = "deck"
	}
	return fmt.Sprintf("%s  %s  %s", name, position, state)
}

func swipeDirection(dx float64) deck.Direction {
	if vmath.Sign(dx) < 0 {
		return deck.Left
	}
	return deck.Right
}

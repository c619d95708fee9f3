package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swipe-deck/deck"
	"github.com/lixenwraith/swipe-deck/render"
)

// HandleEvent applies one terminal event, returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.handleResize()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.swipe(deck.Left)
	case tcell.KeyRight:
		a.swipe(deck.Right)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			a.swipe(deck.Left)
		case 'l':
			a.swipe(deck.Right)
		case 'r':
			if err := a.Reload(); err != nil {
				a.logger.Error("reload failed", "error", err)
			}
		case 's':
			a.status.Toggle()
		}
	}
	return true
}

func (a *App) swipe(dir deck.Direction) {
	if !a.deck.Swipe(dir) {
		a.logger.Debug("swipe ignored, deck exhausted", "direction", dir)
	}
}

// handleMouse turns button-1 press, drag and release into deck gestures
// Only a press on the active card starts a gesture
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	px, py := pointer(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !a.pointerDown:
		a.pointerDown = true
		if a.hitActive(x, y) {
			a.deck.GestureStart(px, py)
		}
	case pressed && a.deck.Dragging():
		a.deck.GestureMove(px, py)
	case !pressed && a.pointerDown:
		a.pointerDown = false
		if a.deck.Dragging() {
			a.deck.GestureRelease(px, py)
		}
	}
}

// hitActive reports whether cell (x, y) lies on the active card's current rect
func (a *App) hitActive(x, y int) bool {
	if a.deck.Exhausted() {
		return false
	}
	pos := a.deck.Position()
	cx, cy := render.OffsetCells(pos.X, pos.Y)
	return render.CardRect(a.width, a.height).Translate(cx, cy).Contains(x, y)
}

func (a *App) handleResize() {
	a.width, a.height = a.screen.Size()
	a.orchestrator.Resize()
	if a.cfg.ScreenWidth > 0 {
		return
	}
	if err := a.deck.Resize(float64(a.width)); err != nil {
		a.logger.Warn("resize ignored", "width", a.width, "error", err)
	}
}

// pointer converts a cell position to length units
func pointer(x, y int) (float64, float64) {
	return float64(x), float64(y) * render.CellAspect
}

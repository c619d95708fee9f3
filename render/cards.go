package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swipe-deck/cards"
	"github.com/lixenwraith/swipe-deck/deck"
)

// Card border runes
const (
	runeTopLeft     = '╭'
	runeTopRight    = '╮'
	runeBottomLeft  = '╰'
	runeBottomRight = '╯'
	runeHorizontal  = '─'
	runeVertical    = '│'
)

var (
	styleCardFill    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleQueued      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	styleCommitLeft  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed)
	styleCommitRight = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
)

// CardView is the terminal rendition of one card
type CardView struct {
	Title  string
	Body   string
	Accent tcell.Color
	Empty  bool
}

// NewCardView renders a card's content
func NewCardView(c cards.Card) CardView {
	return CardView{Title: c.Title, Body: c.Body, Accent: c.Accent()}
}

// NoMoreCardsView is shown once every card is consumed
func NoMoreCardsView() CardView {
	return CardView{
		Title:  "No more cards",
		Body:   "Press r to reload the deck or q to quit.",
		Accent: tcell.ColorYellow,
		Empty:  true,
	}
}

// CardStackRenderer draws the deck plan
type CardStackRenderer struct{}

// NewCardStackRenderer creates the card stack renderer
func NewCardStackRenderer() *CardStackRenderer {
	return &CardStackRenderer{}
}

// Render paints layers in plan order so the active card lands on top
func (r *CardStackRenderer) Render(ctx Context, screen tcell.Screen) {
	slot := CardRect(ctx.Width, ctx.Height)
	for _, layer := range deck.Render(ctx.Plan, NewCardView, NoMoreCardsView) {
		dx, dy := layer.Offset.X, layer.Offset.Y
		if layer.Role == deck.RoleQueued {
			dy += ctx.LayoutProgress * ctx.StackOffset
		}
		cx, cy := OffsetCells(dx, dy)
		drawCard(screen, slot.Translate(cx, cy), layer.View, layer.Rotation, borderStyle(ctx, layer))
	}
}

func borderStyle(ctx Context, layer deck.Layer[CardView]) tcell.Style {
	if layer.Role == deck.RoleQueued {
		return styleQueued
	}
	if ctx.Dragging {
		switch ctx.Preview {
		case deck.CommitLeft:
			return styleCommitLeft
		case deck.CommitRight:
			return styleCommitRight
		}
	}
	return styleCardFill.Foreground(layer.View.Accent)
}

// drawCard paints a bordered card with its content sheared by rotation
func drawCard(screen tcell.Screen, rect Rect, view CardView, rotation float64, border tcell.Style) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	inner := rect.W - 4
	lines := make([]string, 0, rect.H)
	lines = append(lines, view.Title, "")
	lines = append(lines, wrap(view.Body, inner)...)

	titleStyle := styleCardFill.Foreground(view.Accent).Bold(true)
	for row := 0; row < rect.H; row++ {
		y := rect.Y + row
		x := rect.X + shear(row, rect.H, rotation)

		switch row {
		case 0:
			drawEdge(screen, x, y, rect.W, runeTopLeft, runeTopRight, border)
			continue
		case rect.H - 1:
			drawEdge(screen, x, y, rect.W, runeBottomLeft, runeBottomRight, border)
			continue
		}

		putCell(screen, x, y, runeVertical, border)
		for col := 1; col < rect.W-1; col++ {
			putCell(screen, x+col, y, ' ', styleCardFill)
		}
		putCell(screen, x+rect.W-1, y, runeVertical, border)

		if line := row - 1; line < len(lines) && inner > 0 {
			style := styleCardFill
			if line == 0 {
				style = titleStyle
			}
			putString(screen, x+2, y, inner, lines[line], style)
		}
	}
}

func drawEdge(screen tcell.Screen, x, y, w int, left, right rune, style tcell.Style) {
	putCell(screen, x, y, left, style)
	for col := 1; col < w-1; col++ {
		putCell(screen, x+col, y, runeHorizontal, style)
	}
	putCell(screen, x+w-1, y, right, style)
}

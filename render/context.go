package render

import (
	"github.com/lixenwraith/swipe-deck/cards"
	"github.com/lixenwraith/swipe-deck/deck"
)

// CellAspect is the number of length units per terminal row
// Terminal cells are roughly twice as tall as they are wide
const CellAspect = 2.0

// Context provides frame state for renderers, passed by value
type Context struct {
	// Screen dimensions (terminal size)
	Width  int
	Height int

	DeckName string
	Plan     deck.Plan[cards.Card]
	Index    int
	Total    int

	// Live interaction state
	Dragging  bool
	Swiping   bool
	DX        float64
	Threshold float64
	Preview   deck.Decision

	// StackOffset is the queued card spacing in length units
	StackOffset float64
	// LayoutProgress eases queued cards from their previous slot: 1 = old slot, 0 = settled
	LayoutProgress float64
}

// NewContext snapshots a deck for one frame
func NewContext(width, height int, name string, d *deck.Deck[cards.Card], layout float64) Context {
	pos := d.Position()
	return Context{
		Width:          width,
		Height:         height,
		DeckName:       name,
		Plan:           d.Plan(),
		Index:          d.Index(),
		Total:          d.Len(),
		Dragging:       d.Dragging(),
		Swiping:        d.Swiping(),
		DX:             pos.X,
		Threshold:      d.Threshold(),
		Preview:        d.Preview(),
		StackOffset:    d.Config().StackOffset,
		LayoutProgress: layout,
	}
}

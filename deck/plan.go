package deck

import "github.com/lixenwraith/swipe-deck/anim"

// Role of a card in the rendered stack
type Role uint8

const (
	RoleActive Role = iota
	RoleQueued
)

// String returns human-readable role name
func (r Role) String() string {
	if r == RoleActive {
		return "active"
	}
	return "queued"
}

// Placement is how one card is drawn
type Placement[T Item] struct {
	Item  T
	Index int
	Role  Role

	// Offset from the card's rest slot
	Offset anim.Vec
	// Rotation in degrees, positive is clockwise
	Rotation float64
	// Z is the paint layer; higher draws on top, the active card is highest
	Z int
}

// Plan is the rendering plan for the current state
// Cards are ordered by descending item index so painting in order leaves the
// active card on top; Exhausted means the host draws its no-more-cards view
type Plan[T Item] struct {
	Exhausted bool
	Cards     []Placement[T]
}

// Plan builds the rendering plan
// Items before the active index are omitted entirely
func (d *Deck[T]) Plan() Plan[T] {
	n := len(d.props.Data)
	if d.index >= n {
		return Plan[T]{Exhausted: true}
	}

	cards := make([]Placement[T], 0, n-d.index)
	for i := n - 1; i >= d.index; i-- {
		p := Placement[T]{
			Item:  d.props.Data[i],
			Index: i,
			Role:  RoleQueued,
			Z:     n - i,
		}
		if i == d.index {
			pos := d.position.Value()
			p.Role = RoleActive
			p.Offset = pos
			p.Rotation = d.rotation.At(pos.X)
		} else {
			p.Offset = anim.Vec{Y: d.cfg.StackOffset * float64(i-d.index)}
		}
		cards = append(cards, p)
	}
	return Plan[T]{Cards: cards}
}

// Active returns the active placement, the last card of the plan
func (p Plan[T]) Active() (Placement[T], bool) {
	if p.Exhausted || len(p.Cards) == 0 {
		return Placement[T]{}, false
	}
	return p.Cards[len(p.Cards)-1], true
}

// Layer is one rendered card view with its transform
type Layer[V any] struct {
	Key      string
	View     V
	Role     Role
	Offset   anim.Vec
	Rotation float64
	Z        int
}

// Render maps a plan to host views in paint order
// renderCard renders an item's content; an exhausted plan yields exactly one
// layer holding the no-more-cards view
func Render[T Item, V any](p Plan[T], renderCard func(T) V, renderNoMoreCards func() V) []Layer[V] {
	if p.Exhausted {
		return []Layer[V]{{View: renderNoMoreCards()}}
	}
	layers := make([]Layer[V], 0, len(p.Cards))
	for _, c := range p.Cards {
		layers = append(layers, Layer[V]{
			Key:      c.Item.Key(),
			View:     renderCard(c.Item),
			Role:     c.Role,
			Offset:   c.Offset,
			Rotation: c.Rotation,
			Z:        c.Z,
		})
	}
	return layers
}

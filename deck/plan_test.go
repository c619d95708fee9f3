package deck

import (
	"testing"

	"github.com/lixenwraith/swipe-deck/anim"
)

func TestPlanOmitsSwipedAndOrdersDescending(t *testing.T) {
	d := newTestDeck(t, Props[testItem]{Data: items("a", "b", "c", "d")})
	drag(d, 300)
	settle(t, d)

	d.GestureStart(0, 0)
	d.GestureMove(40, 8)

	plan := d.Plan()
	if plan.Exhausted {
		t.Fatal("Plan unexpectedly exhausted")
	}

	wantIdx := []int{3, 2, 1}
	if len(plan.Cards) != len(wantIdx) {
		t.Fatalf("Plan has %d cards, want %d", len(plan.Cards), len(wantIdx))
	}
	for i, c := range plan.Cards {
		if c.Index != wantIdx[i] {
			t.Errorf("Card %d has index %d, want %d", i, c.Index, wantIdx[i])
		}
		if c.Index < d.Index() {
			t.Errorf("Swiped item %d present in plan", c.Index)
		}
	}

	// Queued cards: static descending offset, no rotation
	for _, c := range plan.Cards[:2] {
		if c.Role != RoleQueued {
			t.Errorf("Card %d role = %v, want queued", c.Index, c.Role)
		}
		want := anim.Vec{Y: 5 * float64(c.Index-d.Index())}
		if c.Offset != want || c.Rotation != 0 {
			t.Errorf("Card %d offset=%+v rot=%v, want %+v rot=0", c.Index, c.Offset, c.Rotation, want)
		}
	}

	active, ok := plan.Active()
	if !ok {
		t.Fatal("Plan has no active card")
	}
	if active.Role != RoleActive || active.Item.id != "b" {
		t.Errorf("Active = %+v, want item b", active)
	}
	if active.Offset != (anim.Vec{X: 40, Y: 8}) {
		t.Errorf("Active offset = %+v, want {40 8}", active.Offset)
	}
	if active.Rotation != d.Rotation(40) || active.Rotation <= 0 {
		t.Errorf("Active rotation = %v, want %v", active.Rotation, d.Rotation(40))
	}

	// Z increases toward the active card
	for i := 1; i < len(plan.Cards); i++ {
		if plan.Cards[i].Z <= plan.Cards[i-1].Z {
			t.Errorf("Z not increasing: %d then %d", plan.Cards[i-1].Z, plan.Cards[i].Z)
		}
	}
}

func TestRenderPaintOrderAndTerminal(t *testing.T) {
	d := newTestDeck(t, Props[testItem]{Data: items("a", "b")})

	layers := Render(d.Plan(),
		func(it testItem) string { return "card:" + it.id },
		func() string { return "empty" },
	)
	if len(layers) != 2 || layers[0].View != "card:b" || layers[1].View != "card:a" {
		t.Fatalf("Unexpected layers: %+v", layers)
	}
	if layers[1].Key != "a" || layers[1].Role != RoleActive {
		t.Errorf("Top layer = %+v, want active a", layers[1])
	}

	d.Swipe(Right)
	settle(t, d)
	d.Swipe(Right)
	settle(t, d)

	rendered := 0
	layers = Render(d.Plan(),
		func(it testItem) string { rendered++; return it.id },
		func() string { return "empty" },
	)
	if rendered != 0 {
		t.Errorf("renderCard called %d times on exhausted deck", rendered)
	}
	if len(layers) != 1 || layers[0].View != "empty" {
		t.Errorf("Exhausted render = %+v, want single empty view", layers)
	}
	if _, ok := d.Plan().Active(); ok {
		t.Error("Exhausted plan reported an active card")
	}
}

func TestPlanEmptyList(t *testing.T) {
	d := newTestDeck(t, Props[testItem]{})
	if !d.Plan().Exhausted {
		t.Error("Empty list should produce an exhausted plan")
	}
	if _, ok := d.Active(); ok {
		t.Error("Empty list reported an active item")
	}
}

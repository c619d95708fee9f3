package app

import (
	"time"

	"github.com/lixenwraith/swipe-deck/anim"
	"github.com/lixenwraith/swipe-deck/deck"
)

// layoutEase springs queued cards into their new slots after the deck advances
// Its value is 1 right after the advance and settles at 0
type layoutEase struct {
	deck.NopObserver

	value  *anim.Scalar
	spring anim.Spring
	// enabled is false when the settle time is zero
	enabled bool
}

func newLayoutEase(settle time.Duration) *layoutEase {
	l := &layoutEase{value: anim.NewScalar(0), enabled: settle > 0}
	if l.enabled {
		l.spring = anim.CriticalSpring(settle)
	}
	return l
}

// LayoutWillChange implements deck.LayoutHook
func (l *layoutEase) LayoutWillChange() {
	if !l.enabled {
		return
	}
	l.value.Set(1)
	l.value.SpringTo(0, l.spring, nil)
}

// Replaced implements deck.Observer
// A new list has no previous slots to ease from
func (l *layoutEase) Replaced(int) {
	l.value.Set(0)
}

// Step implements anim.Stepper
func (l *layoutEase) Step(dt time.Duration) {
	l.value.Step(dt)
}

// Value returns the current ease progress
func (l *layoutEase) Value() float64 {
	return l.value.Value()
}

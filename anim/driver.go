package anim

import (
	"time"

	"github.com/lixenwraith/swipe-deck/clock"
)

// Stepper is anything advanced once per frame
type Stepper interface {
	Step(dt time.Duration)
}

// Driver advances registered steppers by the real time elapsed between frames
type Driver struct {
	delta    *clock.Delta
	steppers []Stepper
}

// NewDriver creates a driver over provider, capping per-frame delta at maxDelta
func NewDriver(provider clock.TimeProvider, maxDelta time.Duration) *Driver {
	return &Driver{
		delta:    clock.NewDelta(provider, maxDelta),
		steppers: make([]Stepper, 0, 4),
	}
}

// Add registers a stepper; steppers run in registration order
func (d *Driver) Add(s Stepper) {
	d.steppers = append(d.steppers, s)
}

// Frame advances all steppers and returns the elapsed delta
func (d *Driver) Frame() time.Duration {
	dt := d.delta.Tick()
	for _, s := range d.steppers {
		s.Step(dt)
	}
	return dt
}

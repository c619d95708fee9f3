package anim

import "time"

// Result reports how an animation ended
type Result struct {
	Finished bool
}

// Done is the completion continuation of an animation
type Done func(Result)

type motion interface {
	// step advances pos/vel by dt and reports whether the target was reached
	step(pos, vel *Vec, dt time.Duration) bool
}

// ValueXY is a 2D animated value
// Not safe for concurrent use; owned by one frame loop
type ValueXY struct {
	pos    Vec
	vel    Vec
	active motion
	done   Done
}

// NewValueXY creates a value at rest at initial
func NewValueXY(initial Vec) *ValueXY {
	return &ValueXY{pos: initial}
}

// Value returns the current value
func (v *ValueXY) Value() Vec { return v.pos }

// X returns the horizontal component
func (v *ValueXY) X() float64 { return v.pos.X }

// Y returns the vertical component
func (v *ValueXY) Y() float64 { return v.pos.Y }

// Animating reports whether an animation is in flight
func (v *ValueXY) Animating() bool { return v.active != nil }

// Set overwrites the value, superseding any in-flight animation
func (v *ValueXY) Set(p Vec) {
	v.Stop()
	v.pos = p
	v.vel = Zero
}

// Stop halts the in-flight animation at its current value
func (v *ValueXY) Stop() {
	v.finish(false)
}

// SpringTo animates toward target with spring physics, preserving current velocity
func (v *ValueXY) SpringTo(target Vec, cfg Spring, done Done) {
	v.start(&springMotion{cfg: cfg, target: target}, done)
}

// TimingTo animates toward target over a fixed duration
func (v *ValueXY) TimingTo(target Vec, duration time.Duration, easing Easing, done Done) {
	if easing == nil {
		easing = Linear
	}
	v.start(&timingMotion{
		from:     v.pos,
		target:   target,
		duration: duration,
		easing:   easing,
	}, done)
}

// Step advances the in-flight animation by dt
func (v *ValueXY) Step(dt time.Duration) {
	if v.active == nil || dt < 0 {
		return
	}
	if v.active.step(&v.pos, &v.vel, dt) {
		v.finish(true)
	}
}

func (v *ValueXY) start(m motion, done Done) {
	v.finish(false)
	v.active = m
	v.done = done
}

// finish clears the animation before invoking its continuation so the
// continuation may start a new animation or Set the value
func (v *ValueXY) finish(finished bool) {
	if v.active == nil {
		return
	}
	done := v.done
	v.active = nil
	v.done = nil
	if done != nil {
		done(Result{Finished: finished})
	}
}

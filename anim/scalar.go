package anim

import "time"

// Scalar is a 1D animated value backed by the horizontal axis of a ValueXY
type Scalar struct {
	v ValueXY
}

// NewScalar creates a scalar at rest at initial
func NewScalar(initial float64) *Scalar {
	return &Scalar{v: ValueXY{pos: Vec{X: initial}}}
}

// Value returns the current value
func (s *Scalar) Value() float64 { return s.v.pos.X }

// Animating reports whether an animation is in flight
func (s *Scalar) Animating() bool { return s.v.Animating() }

// Set overwrites the value, superseding any in-flight animation
func (s *Scalar) Set(x float64) { s.v.Set(Vec{X: x}) }

// Step advances the in-flight animation by dt
func (s *Scalar) Step(dt time.Duration) { s.v.Step(dt) }

// SpringTo animates toward target with spring physics
func (s *Scalar) SpringTo(target float64, cfg Spring, done Done) {
	s.v.SpringTo(Vec{X: target}, cfg, done)
}

// TimingTo animates toward target over a fixed duration
func (s *Scalar) TimingTo(target float64, duration time.Duration, easing Easing, done Done) {
	s.v.TimingTo(Vec{X: target}, duration, easing, done)
}

package anim

import (
	"math"
	"time"
)

// springSubstep bounds the integration step so stiff springs stay stable at low frame rates
const springSubstep = time.Millisecond

// Spring holds damped harmonic oscillator parameters
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	// Rest thresholds, per axis; once both are met the value snaps to target
	RestDisplacement float64
	RestSpeed        float64
}

// DefaultSpring returns an underdamped spring that overshoots slightly before settling
func DefaultSpring() Spring {
	return Spring{
		Stiffness:        100,
		Damping:          10,
		Mass:             1,
		RestDisplacement: 0.001,
		RestSpeed:        0.001,
	}
}

// CriticalSpring returns a unit-mass spring that approaches its target without
// overshoot, covering most of the distance within settle
func CriticalSpring(settle time.Duration) Spring {
	omega := 4 / settle.Seconds()
	s := DefaultSpring()
	s.Stiffness = omega * omega
	s.Damping = 2 * omega
	return s
}

// springMotion drives a value toward target under spring force
type springMotion struct {
	cfg    Spring
	target Vec
}

func (m *springMotion) step(pos, vel *Vec, dt time.Duration) bool {
	for dt > 0 {
		h := springSubstep
		if dt < h {
			h = dt
		}
		dt -= h
		s := h.Seconds()

		// Semi-implicit Euler: v = v + a*dt; p = p + v*dt
		ax := (-m.cfg.Stiffness*(pos.X-m.target.X) - m.cfg.Damping*vel.X) / m.cfg.Mass
		ay := (-m.cfg.Stiffness*(pos.Y-m.target.Y) - m.cfg.Damping*vel.Y) / m.cfg.Mass
		vel.X += ax * s
		vel.Y += ay * s
		pos.X += vel.X * s
		pos.Y += vel.Y * s

		if m.atRest(*pos, *vel) {
			*pos = m.target
			*vel = Zero
			return true
		}
	}
	return false
}

func (m *springMotion) atRest(pos, vel Vec) bool {
	return math.Abs(pos.X-m.target.X) <= m.cfg.RestDisplacement &&
		math.Abs(pos.Y-m.target.Y) <= m.cfg.RestDisplacement &&
		math.Abs(vel.X) <= m.cfg.RestSpeed &&
		math.Abs(vel.Y) <= m.cfg.RestSpeed
}

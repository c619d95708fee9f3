package anim

import (
	"time"

	"github.com/lixenwraith/swipe-deck/vmath"
)

// Easing maps normalized progress [0,1] to eased progress
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 { return t }

// timingMotion interpolates from start to target over a fixed duration
type timingMotion struct {
	from     Vec
	target   Vec
	duration time.Duration
	elapsed  time.Duration
	easing   Easing
}

func (m *timingMotion) step(pos, vel *Vec, dt time.Duration) bool {
	m.elapsed += dt
	if m.duration <= 0 || m.elapsed >= m.duration {
		*pos = m.target
		*vel = Zero
		return true
	}

	t := m.easing(vmath.Clamp(float64(m.elapsed)/float64(m.duration), 0, 1))
	*pos = Vec{
		X: vmath.Lerp(m.from.X, m.target.X, t),
		Y: vmath.Lerp(m.from.Y, m.target.Y, t),
	}
	return false
}

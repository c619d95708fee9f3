package deck

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/swipe-deck/anim"
)

// ErrInvalidConfig wraps every Config validation failure
var ErrInvalidConfig = errors.New("deck: invalid config")

// Default tuning
const (
	DefaultThresholdFraction = 0.25
	DefaultSwipeOut          = 250 * time.Millisecond
	DefaultStackOffset       = 5
	DefaultRotationDeg       = 120
	DefaultRotationSpan      = 1.5
)

// Config holds the geometry and timing of a deck
// ScreenWidth is injected so the deck is independent of any viewport query
type Config struct {
	ScreenWidth float64

	// Fraction of ScreenWidth a release must exceed to commit
	ThresholdFraction float64

	// Fixed duration of the off-screen throw
	SwipeOut time.Duration

	// Vertical offset per queued position
	StackOffset float64

	// Rotation reaches ±RotationDeg at ±RotationSpan*ScreenWidth
	RotationDeg  float64
	RotationSpan float64

	// Spring used to return a cancelled card to rest
	Spring anim.Spring
}

// DefaultConfig returns the standard tuning for a viewport of the given width
func DefaultConfig(screenWidth float64) Config {
	return Config{
		ScreenWidth:       screenWidth,
		ThresholdFraction: DefaultThresholdFraction,
		SwipeOut:          DefaultSwipeOut,
		StackOffset:       DefaultStackOffset,
		RotationDeg:       DefaultRotationDeg,
		RotationSpan:      DefaultRotationSpan,
		Spring:            anim.DefaultSpring(),
	}
}

// Threshold returns the absolute commit distance
func (c Config) Threshold() float64 {
	return c.ThresholdFraction * c.ScreenWidth
}

// Validate checks the config for values the deck cannot operate with
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0:
		return fmt.Errorf("%w: screen width %v must be positive", ErrInvalidConfig, c.ScreenWidth)
	case c.ThresholdFraction <= 0 || c.ThresholdFraction > 1:
		return fmt.Errorf("%w: threshold fraction %v must be in (0, 1]", ErrInvalidConfig, c.ThresholdFraction)
	case c.SwipeOut < 0:
		return fmt.Errorf("%w: swipe-out duration %v must not be negative", ErrInvalidConfig, c.SwipeOut)
	case c.RotationSpan <= 0:
		return fmt.Errorf("%w: rotation span %v must be positive", ErrInvalidConfig, c.RotationSpan)
	case c.Spring.Mass <= 0 || c.Spring.Stiffness <= 0 || c.Spring.Damping <= 0:
		return fmt.Errorf("%w: spring mass, stiffness and damping must be positive", ErrInvalidConfig)
	}
	return nil
}

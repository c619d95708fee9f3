// Package config loads swipedeck settings from defaults, an optional YAML
// file, and SWIPEDECK_ environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/swipe-deck/anim"
	"github.com/lixenwraith/swipe-deck/deck"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full application configuration
type Config struct {
	// Deck geometry and timing
	ThresholdFraction float64 `koanf:"threshold_fraction"`
	SwipeOutMS        int     `koanf:"swipe_out_ms"`
	StackOffset       float64 `koanf:"stack_offset"`
	RotationDeg       float64 `koanf:"rotation_deg"`
	RotationSpan      float64 `koanf:"rotation_span"`
	ScreenWidth       float64 `koanf:"screen_width"` // 0 uses the terminal width

	// Spring-back physics
	SpringStiffness float64 `koanf:"spring_stiffness"`
	SpringDamping   float64 `koanf:"spring_damping"`
	SpringMass      float64 `koanf:"spring_mass"`

	// Frame loop
	FrameMS  int `koanf:"frame_ms"`
	LayoutMS int `koanf:"layout_ms"`

	Audio       bool   `koanf:"audio"`
	LogLevel    string `koanf:"log_level"`
	LogFile     string `koanf:"log_file"`
	DeckFile    string `koanf:"deck_file"`
	MetricsFile string `koanf:"metrics_file"`
}

// New returns the default configuration
func New() *Config {
	spring := anim.DefaultSpring()
	return &Config{
		ThresholdFraction: deck.DefaultThresholdFraction,
		SwipeOutMS:        int(deck.DefaultSwipeOut / time.Millisecond),
		StackOffset:       deck.DefaultStackOffset,
		RotationDeg:       deck.DefaultRotationDeg,
		RotationSpan:      deck.DefaultRotationSpan,
		SpringStiffness:   spring.Stiffness,
		SpringDamping:     spring.Damping,
		SpringMass:        spring.Mass,
		FrameMS:           16,
		LayoutMS:          300,
		Audio:             true,
		LogLevel:          "info",
	}
}

// Validate checks ranges the application cannot run with
func (c *Config) Validate() error {
	switch {
	case c.ThresholdFraction <= 0 || c.ThresholdFraction > 1:
		return fmt.Errorf("%w: threshold_fraction %v must be in (0, 1]", ErrInvalidConfig, c.ThresholdFraction)
	case c.SwipeOutMS < 0:
		return fmt.Errorf("%w: swipe_out_ms %d must not be negative", ErrInvalidConfig, c.SwipeOutMS)
	case c.RotationSpan <= 0:
		return fmt.Errorf("%w: rotation_span %v must be positive", ErrInvalidConfig, c.RotationSpan)
	case c.ScreenWidth < 0:
		return fmt.Errorf("%w: screen_width %v must not be negative", ErrInvalidConfig, c.ScreenWidth)
	case c.SpringStiffness <= 0 || c.SpringDamping <= 0 || c.SpringMass <= 0:
		return fmt.Errorf("%w: spring stiffness, damping and mass must be positive", ErrInvalidConfig)
	case c.FrameMS <= 0:
		return fmt.Errorf("%w: frame_ms %d must be positive", ErrInvalidConfig, c.FrameMS)
	case c.LayoutMS < 0:
		return fmt.Errorf("%w: layout_ms %d must not be negative", ErrInvalidConfig, c.LayoutMS)
	}
	return nil
}

// FrameInterval returns the frame tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameMS) * time.Millisecond
}

// LayoutDuration returns the settle time of the re-layout spring; zero disables it
func (c *Config) LayoutDuration() time.Duration {
	return time.Duration(c.LayoutMS) * time.Millisecond
}

// Spring returns the spring-back parameters
func (c *Config) Spring() anim.Spring {
	s := anim.DefaultSpring()
	s.Stiffness = c.SpringStiffness
	s.Damping = c.SpringDamping
	s.Mass = c.SpringMass
	return s
}

// DeckConfig builds the deck configuration for a viewport
// A configured ScreenWidth overrides the viewport width
func (c *Config) DeckConfig(viewportWidth float64) deck.Config {
	width := viewportWidth
	if c.ScreenWidth > 0 {
		width = c.ScreenWidth
	}
	return deck.Config{
		ScreenWidth:       width,
		ThresholdFraction: c.ThresholdFraction,
		SwipeOut:          time.Duration(c.SwipeOutMS) * time.Millisecond,
		StackOffset:       c.StackOffset,
		RotationDeg:       c.RotationDeg,
		RotationSpan:      c.RotationSpan,
		Spring:            c.Spring(),
	}
}

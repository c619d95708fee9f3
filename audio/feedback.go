package audio

import "github.com/lixenwraith/swipe-deck/deck"

// Player is the subset of SoundManager used for deck feedback
type Player interface {
	PlaySwipe(pan float64)
	PlaySpringBack()
	PlayEmpty()
}

// Feedback plays sound cues for deck events
type Feedback struct {
	deck.NopObserver

	player Player
	// exhausted reports whether the deck has no cards left
	exhausted func() bool
}

// NewFeedback creates deck feedback over player; exhausted may be nil
func NewFeedback(player Player, exhausted func() bool) *Feedback {
	if exhausted == nil {
		exhausted = func() bool { return false }
	}
	return &Feedback{player: player, exhausted: exhausted}
}

// Decided plays the spring-back tick for cancelled releases
func (f *Feedback) Decided(d deck.Decision, _ float64) {
	if d == deck.Cancel {
		f.player.PlaySpringBack()
	}
}

// Committed plays the whoosh, or the chime when the last card left
func (f *Feedback) Committed(dir deck.Direction, _ int) {
	if f.exhausted() {
		f.player.PlayEmpty()
		return
	}
	pan := -1.0
	if dir == deck.Right {
		pan = 1.0
	}
	f.player.PlaySwipe(pan)
}

var _ deck.Observer = (*Feedback)(nil)

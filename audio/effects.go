package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sound timings
const (
	swipeDuration  = 180 * time.Millisecond
	swipeAttack    = 10 * time.Millisecond
	swipeRelease   = 120 * time.Millisecond
	springDuration = 60 * time.Millisecond
	springAttack   = 5 * time.Millisecond
	springRelease  = 45 * time.Millisecond
	emptyNote      = 120 * time.Millisecond
	emptyAttack    = 5 * time.Millisecond
	emptyRelease   = 90 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at linear volume vol; math.Log2(0) is -Inf so 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSwipeSound generates a noise whoosh panned toward the throw direction
// pan is -1 for left, 1 for right
func CreateSwipeSound(rate beep.SampleRate, pan, vol float64) beep.Streamer {
	noise := NewOscillator(0, swipeDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, swipeDuration, swipeAttack, swipeRelease, rate)
	panned := &effects.Pan{Streamer: shaped, Pan: pan}
	return newVolume(panned, vol)
}

// CreateSpringSound generates a soft low tick for a card returning to rest
func CreateSpringSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(180.0, springDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, springDuration, springAttack, springRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateEmptySound generates a descending two-note chime for the last card
func CreateEmptySound(rate beep.SampleRate, vol float64) beep.Streamer {
	// E6 then B5
	n1 := NewOscillator(1318.51, emptyNote, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, emptyNote, emptyAttack, emptyRelease, rate)
	n2 := NewOscillator(987.77, emptyNote, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, emptyNote, emptyAttack, emptyRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

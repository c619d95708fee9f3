package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/swipe-deck/deck"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (total int, peakL, peakR float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peakL = max(peakL, abs(buf[i][0]))
			peakR = max(peakR, abs(buf[i][1]))
		}
		total += n
		if !ok {
			return
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok=true, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the oscillator drains after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)

	total, _, _ := drain(osc)
	if total != 50 {
		t.Errorf("Expected 50 samples, got %d", total)
	}
}

// TestEnvelopeShaping verifies attack starts silent
func TestEnvelopeShaping(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 20)
	env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample during attack, got %f", samples[0][0])
	}
	if samples[15][0] != 1.0 {
		t.Errorf("Expected full volume during sustain, got %f", samples[15][0])
	}
}

// TestSwipeSoundPans verifies a right swipe is louder on the right channel
func TestSwipeSoundPans(t *testing.T) {
	_, left, right := drain(CreateSwipeSound(DefaultSampleRate, 1, 1))
	if right <= 0 {
		t.Fatal("Expected audible right channel")
	}
	if left >= right {
		t.Errorf("Expected right-panned whoosh, peaks L=%f R=%f", left, right)
	}
}

// TestSilentVolume verifies zero volume produces silence
func TestSilentVolume(t *testing.T) {
	_, left, right := drain(CreateSpringSound(DefaultSampleRate, 0))
	if left != 0 || right != 0 {
		t.Errorf("Expected silence, peaks L=%f R=%f", left, right)
	}
}

type recordingPlayer struct {
	swipes  []float64
	springs int
	empties int
}

func (p *recordingPlayer) PlaySwipe(pan float64) { p.swipes = append(p.swipes, pan) }
func (p *recordingPlayer) PlaySpringBack()       { p.springs++ }
func (p *recordingPlayer) PlayEmpty()            { p.empties++ }

// TestFeedback verifies deck events map to cues
func TestFeedback(t *testing.T) {
	p := &recordingPlayer{}
	exhausted := false
	f := NewFeedback(p, func() bool { return exhausted })

	f.Decided(deck.Cancel, 10)
	f.Decided(deck.CommitLeft, -200)
	f.Committed(deck.Left, 0)
	f.Committed(deck.Right, 1)
	exhausted = true
	f.Committed(deck.Right, 2)

	if p.springs != 1 {
		t.Errorf("Expected 1 spring cue, got %d", p.springs)
	}
	if len(p.swipes) != 2 || p.swipes[0] != -1 || p.swipes[1] != 1 {
		t.Errorf("Unexpected swipe pans: %v", p.swipes)
	}
	if p.empties != 1 {
		t.Errorf("Expected 1 empty cue, got %d", p.empties)
	}
}

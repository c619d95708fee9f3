package anim

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/swipe-deck/clock"
)

const frame = 16 * time.Millisecond

// stepUntilIdle advances v one frame at a time, failing after limit
func stepUntilIdle(t *testing.T, v *ValueXY, limit time.Duration) time.Duration {
	t.Helper()
	var elapsed time.Duration
	for v.Animating() {
		if elapsed > limit {
			t.Fatalf("animation did not settle within %v, value=%+v", limit, v.Value())
		}
		v.Step(frame)
		elapsed += frame
	}
	return elapsed
}

func TestSpringSettlesExactlyOnTarget(t *testing.T) {
	v := NewValueXY(Vec{X: 80, Y: -12})

	var results []Result
	v.SpringTo(Zero, DefaultSpring(), func(r Result) { results = append(results, r) })

	stepUntilIdle(t, v, 10*time.Second)

	if got := v.Value(); got != Zero {
		t.Errorf("Expected exact rest at zero, got %+v", got)
	}
	if len(results) != 1 || !results[0].Finished {
		t.Errorf("Expected one finished completion, got %+v", results)
	}
}

func TestSpringOvershoots(t *testing.T) {
	v := NewValueXY(Vec{X: 100})
	v.SpringTo(Zero, DefaultSpring(), nil)

	minX := math.Inf(1)
	for i := 0; i < 200 && v.Animating(); i++ {
		v.Step(frame)
		minX = math.Min(minX, v.X())
	}
	if minX >= 0 {
		t.Errorf("Expected underdamped spring to overshoot below zero, min=%v", minX)
	}
}

func TestTimingIsLinearAndFixedDuration(t *testing.T) {
	v := NewValueXY(Zero)

	fired := 0
	v.TimingTo(Vec{X: 400}, 250*time.Millisecond, nil, func(r Result) {
		fired++
		if !r.Finished {
			t.Error("Expected Finished=true")
		}
	})

	v.Step(125 * time.Millisecond)
	if got := v.X(); math.Abs(got-200) > 1e-9 {
		t.Errorf("Expected midpoint 200 at half duration, got %v", got)
	}
	if v.Y() != 0 {
		t.Errorf("Expected Y held at 0, got %v", v.Y())
	}

	v.Step(124 * time.Millisecond)
	if fired != 0 {
		t.Fatal("Completion fired before duration elapsed")
	}

	v.Step(time.Millisecond)
	if fired != 1 {
		t.Fatalf("Expected completion after full duration, fired=%d", fired)
	}
	if v.X() != 400 {
		t.Errorf("Expected exact target 400, got %v", v.X())
	}

	// Further steps are inert
	v.Step(time.Second)
	if fired != 1 {
		t.Errorf("Completion fired more than once: %d", fired)
	}
}

func TestSupersededAnimationFiresOnceUnfinished(t *testing.T) {
	v := NewValueXY(Zero)

	var first []Result
	v.TimingTo(Vec{X: 300}, 250*time.Millisecond, nil, func(r Result) { first = append(first, r) })
	v.Step(50 * time.Millisecond)

	// A drag overwrites the in-flight value
	v.Set(Vec{X: 10, Y: 5})

	if len(first) != 1 || first[0].Finished {
		t.Fatalf("Expected one unfinished completion, got %+v", first)
	}
	if v.Animating() {
		t.Error("Expected no animation after Set")
	}
	if got := v.Value(); got != (Vec{X: 10, Y: 5}) {
		t.Errorf("Expected overwritten value, got %+v", got)
	}

	v.Step(time.Second)
	if len(first) != 1 {
		t.Errorf("Completion fired again after supersede: %+v", first)
	}
}

func TestContinuationMayRestartAnimation(t *testing.T) {
	v := NewValueXY(Zero)

	var order []string
	v.TimingTo(Vec{X: 100}, 10*time.Millisecond, nil, func(Result) {
		order = append(order, "timing")
		v.Set(Zero)
		v.SpringTo(Vec{Y: 1}, DefaultSpring(), func(Result) { order = append(order, "spring") })
	})

	v.Step(10 * time.Millisecond)
	if !v.Animating() {
		t.Fatal("Expected spring started by continuation to be in flight")
	}
	stepUntilIdle(t, v, 10*time.Second)

	if len(order) != 2 || order[0] != "timing" || order[1] != "spring" {
		t.Errorf("Unexpected continuation order: %v", order)
	}
}

func TestScalarSpring(t *testing.T) {
	s := NewScalar(1)
	s.SpringTo(0, DefaultSpring(), nil)
	for i := 0; i < 1000 && s.Animating(); i++ {
		s.Step(frame)
	}
	if s.Animating() || s.Value() != 0 {
		t.Errorf("Expected scalar at rest at 0, got %v (animating=%v)", s.Value(), s.Animating())
	}
}

func TestDriverFrame(t *testing.T) {
	mock := clock.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDriver(mock, 100*time.Millisecond)

	v := NewValueXY(Zero)
	v.TimingTo(Vec{X: 100}, 100*time.Millisecond, nil, nil)
	d.Add(v)

	mock.Advance(50 * time.Millisecond)
	if dt := d.Frame(); dt != 50*time.Millisecond {
		t.Errorf("Expected 50ms delta, got %v", dt)
	}
	if math.Abs(v.X()-50) > 1e-9 {
		t.Errorf("Expected value 50 after half duration, got %v", v.X())
	}
}

func TestCriticalSpringSettlesWithoutOvershoot(t *testing.T) {
	s := NewScalar(1)
	s.SpringTo(0, CriticalSpring(300*time.Millisecond), nil)

	var elapsed time.Duration
	for s.Animating() {
		if elapsed > 2*time.Second {
			t.Fatalf("critical spring did not settle, value=%v", s.Value())
		}
		s.Step(frame)
		elapsed += frame
		if v := s.Value(); v < -1e-3 {
			t.Fatalf("critical spring overshot to %v at %v", v, elapsed)
		}
		if elapsed == 304*time.Millisecond && s.Value() > 0.25 {
			t.Errorf("value at settle time = %v, want mostly settled", s.Value())
		}
	}
	if s.Value() != 0 {
		t.Errorf("settled value = %v, want 0", s.Value())
	}
}

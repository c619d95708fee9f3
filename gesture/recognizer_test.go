package gesture

import "testing"

func TestRecognizerCycle(t *testing.T) {
	r := NewRecognizer()

	if r.Engaged() {
		t.Fatal("New recognizer should be idle")
	}
	if _, ok := r.Move(5, 5); ok {
		t.Error("Move while idle should report ok=false")
	}

	if !r.Begin(10, 20) {
		t.Fatal("Begin must claim the gesture")
	}
	if !r.Engaged() {
		t.Error("Expected engaged after Begin")
	}

	s, ok := r.Move(14, 17)
	if !ok || s != (Sample{DX: 4, DY: -3}) {
		t.Errorf("Move = %+v, %v; want {4 -3}, true", s, ok)
	}

	// Displacement is cumulative from origin, not per-move
	s, _ = r.Move(30, 20)
	if s != (Sample{DX: 20, DY: 0}) {
		t.Errorf("Second move = %+v, want {20 0}", s)
	}

	s, ok = r.Release(35, 22)
	if !ok || s != (Sample{DX: 25, DY: 2}) {
		t.Errorf("Release = %+v, %v; want {25 2}, true", s, ok)
	}
	if r.Engaged() {
		t.Error("Recognizer should be idle after release")
	}
	if _, ok := r.Release(0, 0); ok {
		t.Error("Second release should report ok=false")
	}
}

func TestRecognizerRestartAndCancel(t *testing.T) {
	r := NewRecognizer()
	r.Begin(0, 0)
	r.Move(50, 0)

	// Missed release: new press restarts from its own origin
	r.Begin(100, 100)
	s, _ := r.Move(101, 100)
	if s.DX != 1 {
		t.Errorf("Expected DX=1 after restart, got %v", s.DX)
	}

	r.Cancel()
	if r.Engaged() {
		t.Error("Cancel should return to idle")
	}
	if _, ok := r.Move(200, 200); ok {
		t.Error("Move after Cancel should report ok=false")
	}
}

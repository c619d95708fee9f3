package gesture

// Sample is the cumulative displacement since gesture start
type Sample struct {
	DX, DY float64
}

// Recognizer converts pointer down/move/up into cumulative drag deltas
// It holds exclusive ownership of one press-to-release cycle at a time
type Recognizer struct {
	engaged          bool
	originX, originY float64
}

// NewRecognizer creates an idle recognizer
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Begin claims the gesture starting at (x, y)
// Claims unconditionally; a press while already engaged restarts from the new origin
func (r *Recognizer) Begin(x, y float64) bool {
	r.engaged = true
	r.originX, r.originY = x, y
	return true
}

// Move reports displacement from the gesture origin; ok is false when idle
func (r *Recognizer) Move(x, y float64) (Sample, bool) {
	if !r.engaged {
		return Sample{}, false
	}
	return r.sample(x, y), true
}

// Release ends the gesture and reports the final displacement; ok is false when idle
func (r *Recognizer) Release(x, y float64) (Sample, bool) {
	if !r.engaged {
		return Sample{}, false
	}
	r.engaged = false
	return r.sample(x, y), true
}

// Cancel drops an engaged gesture without a release decision
func (r *Recognizer) Cancel() {
	r.engaged = false
}

// Engaged reports whether a gesture is in progress
func (r *Recognizer) Engaged() bool { return r.engaged }

func (r *Recognizer) sample(x, y float64) Sample {
	return Sample{DX: x - r.originX, DY: y - r.originY}
}

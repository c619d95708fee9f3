package deck

import (
	"log/slog"
	"time"
	"unsafe"

	"github.com/lixenwraith/swipe-deck/anim"
	"github.com/lixenwraith/swipe-deck/gesture"
	"github.com/lixenwraith/swipe-deck/vmath"
)

// commitToken identifies the card a commit animation was started for
// seq is unique per throw so a superseded throw never matches its successor
type commitToken struct {
	seq        uint64
	generation uint64
	index      int
	dir        Direction
}

// Deck is the swipe interaction state machine over an ordered item list
type Deck[T Item] struct {
	cfg       Config
	props     Props[T]
	threshold float64
	rotation  *vmath.Interpolator

	// index of the active card; len(props.Data) means exhausted
	index int
	// generation increments whenever the item list is replaced
	generation uint64

	position   *anim.ValueXY
	recognizer *gesture.Recognizer
	pending    *commitToken
	seq        uint64

	logger   *slog.Logger
	layout   LayoutHook
	observer Observer
}

// New creates a deck at index 0 over props.Data
func New[T Item](cfg Config, props Props[T], opts ...Option) (*Deck[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rotation, err := newRotation(cfg)
	if err != nil {
		return nil, err
	}

	d := &Deck[T]{
		cfg:        cfg,
		threshold:  cfg.Threshold(),
		rotation:   rotation,
		position:   anim.NewValueXY(anim.Zero),
		recognizer: gesture.NewRecognizer(),
		logger:     o.logger,
		layout:     o.layout,
		observer:   o.observer,
	}
	d.props = withDefaults(props)
	return d, nil
}

// newRotation maps horizontal offset to card angle, clamped beyond the span
func newRotation(cfg Config) (*vmath.Interpolator, error) {
	span := cfg.RotationSpan * cfg.ScreenWidth
	return vmath.NewInterpolator(
		[]float64{-span, 0, span},
		[]float64{-cfg.RotationDeg, 0, cfg.RotationDeg},
	)
}

// Resize rescales threshold, throw distance and rotation span to a new screen width
// A throw already in flight keeps its original target
func (d *Deck[T]) Resize(screenWidth float64) error {
	cfg := d.cfg
	cfg.ScreenWidth = screenWidth
	if err := cfg.Validate(); err != nil {
		return err
	}
	rotation, err := newRotation(cfg)
	if err != nil {
		return err
	}
	d.cfg = cfg
	d.threshold = cfg.Threshold()
	d.rotation = rotation
	d.logger.Debug("deck resized", "screen_width", screenWidth, "threshold", d.threshold)
	return nil
}

// SetProps supplies new input
// A list with a different identity replaces the deck and restarts at index 0,
// even mid-gesture; the same list only refreshes the callbacks
func (d *Deck[T]) SetProps(p Props[T]) {
	p = withDefaults(p)
	if !sameList(p.Data, d.props.Data) {
		prev := d.index
		d.layout.LayoutWillChange()
		d.generation++
		d.index = 0
		d.logger.Debug("deck replaced", "previous_index", prev, "items", len(p.Data))
		d.observer.Replaced(prev)
	}
	d.props = p
}

// GestureStart claims a pointer press on the active card
// Returns false only when there is no active card to receive it
func (d *Deck[T]) GestureStart(x, y float64) bool {
	if d.Exhausted() {
		return false
	}
	d.logger.Debug("gesture start", "x", x, "y", y, "index", d.index)
	return d.recognizer.Begin(x, y)
}

// GestureMove tracks the pointer, overwriting any in-flight animation
func (d *Deck[T]) GestureMove(x, y float64) {
	s, ok := d.recognizer.Move(x, y)
	if !ok {
		return
	}
	d.position.Set(anim.Vec{X: s.DX, Y: s.DY})
}

// GestureRelease ends the gesture and starts the commit or cancel animation
func (d *Deck[T]) GestureRelease(x, y float64) Decision {
	s, ok := d.recognizer.Release(x, y)
	if !ok {
		return Cancel
	}

	decision := Decide(s.DX, d.threshold)
	d.logger.Debug("gesture release", "dx", s.DX, "dy", s.DY, "threshold", d.threshold, "decision", decision)
	d.observer.Decided(decision, s.DX)

	if dir, ok := decision.Direction(); ok {
		if !d.forceSwipe(dir) {
			d.logger.Debug("release landed on an emptied deck", "decision", decision)
		}
	} else {
		d.resetPosition()
	}
	return decision
}

// Swipe throws the active card off-screen without a gesture
// A throw already in flight commits first; returns false when no card is left to throw
func (d *Deck[T]) Swipe(dir Direction) bool {
	if d.Exhausted() {
		return false
	}
	d.recognizer.Cancel()
	return d.forceSwipe(dir)
}

// Step advances the position animation by dt
func (d *Deck[T]) Step(dt time.Duration) {
	d.position.Step(dt)
}

func (d *Deck[T]) resetPosition() {
	d.position.SpringTo(anim.Zero, d.cfg.Spring, nil)
}

// forceSwipe animates the card to ±ScreenWidth and commits on completion
// The completion runs whether the throw finished or was overwritten by a new drag.
// An in-flight throw is settled first so the token is cut from the post-commit index
func (d *Deck[T]) forceSwipe(dir Direction) bool {
	d.position.Stop()
	if d.Exhausted() {
		return false
	}

	d.seq++
	tok := commitToken{seq: d.seq, generation: d.generation, index: d.index, dir: dir}
	d.pending = &tok
	target := anim.Vec{X: dir.sign() * d.cfg.ScreenWidth}
	d.position.TimingTo(target, d.cfg.SwipeOut, anim.Linear, func(anim.Result) {
		d.completeSwipe(tok)
	})
	return true
}

// completeSwipe applies commit side effects: callback with the pre-increment
// item, position reset, then index advance
func (d *Deck[T]) completeSwipe(tok commitToken) {
	if d.pending != nil && *d.pending == tok {
		d.pending = nil
	}

	if tok.generation != d.generation || tok.index != d.index || d.index >= len(d.props.Data) {
		d.logger.Debug("stale swipe completion dropped",
			"direction", tok.dir, "token_index", tok.index, "index", d.index)
		d.observer.StaleCompletion(tok.dir)
		if !d.recognizer.Engaged() {
			d.position.Set(anim.Zero)
		}
		return
	}

	item := d.props.Data[d.index]
	if tok.dir == Right {
		d.props.OnSwipeRight(item)
	} else {
		d.props.OnSwipeLeft(item)
	}

	d.position.Set(anim.Zero)
	d.layout.LayoutWillChange()
	d.index++

	d.logger.Debug("swipe committed", "direction", tok.dir, "key", item.Key(), "index", d.index)
	d.observer.Committed(tok.dir, tok.index)
}

// Index returns the active index; equal to Len when exhausted
func (d *Deck[T]) Index() int { return d.index }

// Len returns the number of items in the current list
func (d *Deck[T]) Len() int { return len(d.props.Data) }

// Exhausted reports whether every card has been swiped
func (d *Deck[T]) Exhausted() bool { return d.index >= len(d.props.Data) }

// Active returns the active item
func (d *Deck[T]) Active() (T, bool) {
	if d.Exhausted() {
		var zero T
		return zero, false
	}
	return d.props.Data[d.index], true
}

// Position returns the active card's offset from rest
func (d *Deck[T]) Position() anim.Vec { return d.position.Value() }

// Threshold returns the absolute commit distance
func (d *Deck[T]) Threshold() float64 { return d.threshold }

// Config returns the deck configuration
func (d *Deck[T]) Config() Config { return d.cfg }

// Dragging reports whether a gesture is engaged
func (d *Deck[T]) Dragging() bool { return d.recognizer.Engaged() }

// Swiping reports whether a commit animation is in flight
func (d *Deck[T]) Swiping() bool { return d.pending != nil }

// Animating reports whether the position is moving on its own
func (d *Deck[T]) Animating() bool { return d.position.Animating() }

// Preview returns the decision a release at the current position would make
func (d *Deck[T]) Preview() Decision {
	return Decide(d.position.X(), d.threshold)
}

// Rotation returns the card angle in degrees for horizontal offset x
func (d *Deck[T]) Rotation(x float64) float64 {
	return d.rotation.At(x)
}

func withDefaults[T Item](p Props[T]) Props[T] {
	if p.OnSwipeLeft == nil {
		p.OnSwipeLeft = func(T) {}
	}
	if p.OnSwipeRight == nil {
		p.OnSwipeRight = func(T) {}
	}
	return p
}

// sameList compares slices by identity: same backing array start and length
func sameList[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b) && len(a) == len(b)
}

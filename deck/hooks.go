package deck

import "log/slog"

// Item is an application record shown on a card
// Key must be stable and unique within a list; it is used as the render key
type Item interface {
	Key() string
}

// Props is the application-facing input of a deck
// Data is compared by identity: a new backing array replaces the deck
type Props[T Item] struct {
	Data         []T
	OnSwipeLeft  func(T)
	OnSwipeRight func(T)
}

// LayoutHook is invoked immediately before a change that alters the rendered stack
type LayoutHook interface {
	LayoutWillChange()
}

// LayoutHookFunc adapts a function to LayoutHook
type LayoutHookFunc func()

func (f LayoutHookFunc) LayoutWillChange() { f() }

// Observer receives interaction events for metrics and feedback
type Observer interface {
	Decided(decision Decision, dx float64)
	Committed(dir Direction, index int)
	StaleCompletion(dir Direction)
	Replaced(previousIndex int)
}

// NopObserver ignores all events
type NopObserver struct{}

func (NopObserver) Decided(Decision, float64) {}
func (NopObserver) Committed(Direction, int)  {}
func (NopObserver) StaleCompletion(Direction) {}
func (NopObserver) Replaced(int)              {}

// Option configures optional collaborators of a Deck
type Option func(*options)

type options struct {
	logger   *slog.Logger
	layout   LayoutHook
	observer Observer
}

// WithLogger sets the logger for interaction tracing
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLayoutHook sets the hook requested before structural re-layouts
func WithLayoutHook(h LayoutHook) Option {
	return func(o *options) {
		if h != nil {
			o.layout = h
		}
	}
}

// WithObserver sets the interaction event observer
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.DiscardHandler),
		layout:   LayoutHookFunc(func() {}),
		observer: NopObserver{},
	}
}

// Observers fans events out to each observer in order
type Observers []Observer

func (obs Observers) Decided(d Decision, dx float64) {
	for _, o := range obs {
		o.Decided(d, dx)
	}
}

func (obs Observers) Committed(dir Direction, index int) {
	for _, o := range obs {
		o.Committed(dir, index)
	}
}

func (obs Observers) StaleCompletion(dir Direction) {
	for _, o := range obs {
		o.StaleCompletion(dir)
	}
}

func (obs Observers) Replaced(previousIndex int) {
	for _, o := range obs {
		o.Replaced(previousIndex)
	}
}

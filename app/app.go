// Package app runs the swipedeck terminal host: it owns the tcell screen,
// maps pointer and key events onto the deck and drives animation frames.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swipe-deck/anim"
	"github.com/lixenwraith/swipe-deck/cards"
	"github.com/lixenwraith/swipe-deck/clock"
	"github.com/lixenwraith/swipe-deck/config"
	"github.com/lixenwraith/swipe-deck/deck"
	"github.com/lixenwraith/swipe-deck/render"
)

// maxFrameDeltas caps a single frame step after a stall
const maxFrameDeltas = 4

// Loader returns a fresh card deck; every call yields a new slice
type Loader func() (cards.Deck, error)

// Options configures an App
type Options struct {
	Config   *config.Config
	Loader   Loader
	Logger   *slog.Logger
	Provider clock.TimeProvider
	// Observers receive deck events, e.g. metrics and audio feedback
	Observers deck.Observers
}

// App is the terminal host for one deck
type App struct {
	screen tcell.Screen
	cfg    *config.Config
	loader Loader
	logger *slog.Logger

	name string
	deck *deck.Deck[cards.Card]

	layout       *layoutEase
	driver       *anim.Driver
	orchestrator *render.Orchestrator
	status       *render.StatusRenderer

	width, height int
	pointerDown   bool

	swipedLeft  int
	swipedRight int
}

// New creates an app drawing to an initialized screen
func New(screen tcell.Screen, opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = config.New()
	}
	if opts.Loader == nil {
		opts.Loader = cards.Default
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Provider == nil {
		opts.Provider = clock.NewMonotonicTimeProvider()
	}

	a := &App{
		screen: screen,
		cfg:    opts.Config,
		loader: opts.Loader,
		logger: opts.Logger,
		layout: newLayoutEase(opts.Config.LayoutDuration()),
	}
	a.width, a.height = screen.Size()

	loaded, err := a.loader()
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	a.name = loaded.Name

	observers := append(deck.Observers{a.layout}, opts.Observers...)
	d, err := deck.New(
		a.cfg.DeckConfig(float64(a.width)),
		a.props(loaded.Cards),
		deck.WithLogger(a.logger),
		deck.WithLayoutHook(a.layout),
		deck.WithObserver(observers),
	)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	a.deck = d

	a.driver = anim.NewDriver(opts.Provider, maxFrameDeltas*a.cfg.FrameInterval())
	a.driver.Add(a.deck)
	a.driver.Add(a.layout)

	a.status = render.NewStatusRenderer()
	a.orchestrator = render.NewOrchestrator(screen)
	a.orchestrator.Register(render.NewBackgroundRenderer(), render.PriorityBackground)
	a.orchestrator.Register(render.NewCardStackRenderer(), render.PriorityCards)
	a.orchestrator.Register(a.status, render.PriorityUI)

	a.logger.Info("deck loaded", "name", a.name, "cards", d.Len(), "width", a.width, "height", a.height)
	return a, nil
}

// Deck returns the deck driven by the app
func (a *App) Deck() *deck.Deck[cards.Card] {
	return a.deck
}

// Tally returns the number of cards swiped left and right
func (a *App) Tally() (left, right int) {
	return a.swipedLeft, a.swipedRight
}

// Run processes events and frame ticks on one goroutine until quit or ctx ends
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// Frame advances animations and draws one frame
func (a *App) Frame() {
	a.driver.Frame()
	a.orchestrator.RenderFrame(render.NewContext(a.width, a.height, a.name, a.deck, a.layout.Value()))
}

// Reload replaces the deck with a freshly loaded list, restarting at the first card
func (a *App) Reload() error {
	loaded, err := a.loader()
	if err != nil {
		return fmt.Errorf("reload deck: %w", err)
	}
	a.name = loaded.Name
	a.deck.SetProps(a.props(loaded.Cards))
	a.logger.Info("deck reloaded", "name", a.name, "cards", len(loaded.Cards))
	return nil
}

func (a *App) props(data []cards.Card) deck.Props[cards.Card] {
	return deck.Props[cards.Card]{
		Data: data,
		OnSwipeLeft: func(c cards.Card) {
			a.swipedLeft++
			a.logger.Info("card swiped", "id", c.ID, "title", c.Title, "direction", deck.Left)
		},
		OnSwipeRight: func(c cards.Card) {
			a.swipedRight++
			a.logger.Info("card swiped", "id", c.ID, "title", c.Title, "direction", deck.Right)
		},
	}
}

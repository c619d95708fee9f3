// Package metrics records deck interaction counters with Prometheus.
// There is no scrape endpoint; the registry is written as a textfile on exit.
package metrics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/swipe-deck/deck"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "swipedeck"

// Recorder implements deck.Observer over a private Prometheus registry
type Recorder struct {
	registry *prometheus.Registry

	decisions    *prometheus.CounterVec
	swipes       *prometheus.CounterVec
	staleSwipes  prometheus.Counter
	replacements prometheus.Counter
	dragDistance prometheus.Histogram
	activeIndex  prometheus.Gauge
}

// NewRecorder creates and registers all deck metrics
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Gesture releases by decision.",
		}, []string{"decision"}),
		swipes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swipes_total",
			Help:      "Committed swipes by direction.",
		}, []string{"direction"}),
		staleSwipes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_completions_total",
			Help:      "Swipe completions dropped because the deck was replaced.",
		}),
		replacements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deck_replacements_total",
			Help:      "Item list replacements that reset the active index.",
		}),
		dragDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "release_distance_cells",
			Help:      "Absolute horizontal drag distance at release.",
			Buckets:   prometheus.LinearBuckets(0, 10, 12),
		}),
		activeIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_index",
			Help:      "Active index after the most recent commit or replacement.",
		}),
	}

	r.registry.MustRegister(
		r.decisions,
		r.swipes,
		r.staleSwipes,
		r.replacements,
		r.dragDistance,
		r.activeIndex,
	)
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Decided implements deck.Observer
func (r *Recorder) Decided(d deck.Decision, dx float64) {
	r.decisions.WithLabelValues(d.String()).Inc()
	r.dragDistance.Observe(math.Abs(dx))
}

// Committed implements deck.Observer
func (r *Recorder) Committed(dir deck.Direction, index int) {
	r.swipes.WithLabelValues(dir.String()).Inc()
	r.activeIndex.Set(float64(index + 1))
}

// StaleCompletion implements deck.Observer
func (r *Recorder) StaleCompletion(deck.Direction) {
	r.staleSwipes.Inc()
}

// Replaced implements deck.Observer
func (r *Recorder) Replaced(int) {
	r.replacements.Inc()
	r.activeIndex.Set(0)
}

// WriteFile writes the registry in text exposition format
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

var _ deck.Observer = (*Recorder)(nil)

package clock

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time to frame drivers
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Delta tracks elapsed time between successive frames of a provider
type Delta struct {
	provider TimeProvider
	last     time.Time
	max      time.Duration
}

// NewDelta starts tracking from the provider's current time
// Frame gaps larger than max are capped so a stalled terminal does not fast-forward animations
func NewDelta(provider TimeProvider, max time.Duration) *Delta {
	return &Delta{
		provider: provider,
		last:     provider.Now(),
		max:      max,
	}
}

// Tick returns the time elapsed since the previous Tick
func (d *Delta) Tick() time.Duration {
	now := d.provider.Now()
	dt := now.Sub(d.last)
	d.last = now
	if dt < 0 {
		return 0
	}
	if d.max > 0 && dt > d.max {
		return d.max
	}
	return dt
}

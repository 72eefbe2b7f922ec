package textreact

import (
	"sync"
	"time"
)

// TimeProvider is the clock used to stamp events and measure call durations.
// Inject a [MockTimeProvider] in tests to get deterministic durations.
type TimeProvider interface {
	// Now returns the current time.
	Now() time.Time
}

// DefaultTimeProvider is the standard TimeProvider using the system clock.
type DefaultTimeProvider struct{}

// NewDefaultTimeProvider creates a new DefaultTimeProvider.
func NewDefaultTimeProvider() *DefaultTimeProvider {
	return &DefaultTimeProvider{}
}

// Now returns the current system time.
func (p *DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since start according to tp.
func Since(tp TimeProvider, start time.Time) time.Duration {
	return tp.Now().Sub(start)
}

// MockTimeProvider is a TimeProvider that returns a fixed time, optionally
// advancing by a fixed step on every call to Now.
type MockTimeProvider struct {
	mu        sync.Mutex
	fixedTime time.Time
	step      time.Duration
}

// NewMockTimeProvider creates a MockTimeProvider with the given fixed time.
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{fixedTime: t}
}

// WithStep makes every call to Now advance the clock by step after reading it.
func (m *MockTimeProvider) WithStep(step time.Duration) *MockTimeProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = step
	return m
}

// SetTime updates the time returned by the next call to Now.
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedTime = t
}

// Advance moves the clock forward by d.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedTime = m.fixedTime.Add(d)
}

// Now returns the current mock time.
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.fixedTime
	m.fixedTime = m.fixedTime.Add(m.step)
	return now
}

// Compile-time checks that both providers implement TimeProvider.
var (
	_ TimeProvider = (*DefaultTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)

package textreact

import (
	"maps"
	"sync"
)

// Stats holds monotonically increasing counters updated from events.
// All standard keys are prefixed with "textreact:" (see stats_keys.go).
//
// Stats is itself a subscriber: register it with an events.Registry and it
// keeps itself up to date.
//
//	stats := textreact.NewStats()
//	registry := events.NewRegistry().Subscribe(stats)
//	agent := react.NewAgent(completer, lookup).WithEvents(registry)
//	...
//	stats.Counter(textreact.KeyLookups)
//
// All methods are safe for concurrent use.
type Stats struct {
	mu       sync.RWMutex
	counters map[string]int64
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{counters: make(map[string]int64)}
}

// Incr adds delta to the counter at key.
func (s *Stats) Incr(key string, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key] += delta
}

// Counter returns the value of the counter at key, 0 if never incremented.
func (s *Stats) Counter(key string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[key]
}

// Snapshot returns a copy of all counters.
func (s *Stats) Snapshot() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.counters)
}

// Reset clears all counters.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = make(map[string]int64)
}

// OnRunStarted implements RunStartedSubscriber.
func (s *Stats) OnRunStarted(_ *RunStartedEvent) {
	s.Incr(KeyRuns, 1)
}

// OnRunFinished implements RunFinishedSubscriber.
func (s *Stats) OnRunFinished(event *RunFinishedEvent) {
	s.Incr(KeyRunsEndedWith+string(event.Reason), 1)
}

// OnStepStarted implements StepStartedSubscriber.
func (s *Stats) OnStepStarted(_ *StepStartedEvent) {
	s.Incr(KeySteps, 1)
}

// OnModelCalled implements ModelCalledSubscriber.
func (s *Stats) OnModelCalled(event *ModelCalledEvent) {
	s.Incr(KeyModelCalls, 1)
	if event.Error != nil {
		s.Incr(KeyModelErrors, 1)
	}
}

// OnStepParsed implements StepParsedSubscriber.
func (s *Stats) OnStepParsed(event *StepParsedEvent) {
	s.Incr(KeyParsedAs+string(event.Kind), 1)
}

// OnLookup implements LookupSubscriber.
func (s *Stats) OnLookup(event *LookupEvent) {
	s.Incr(KeyLookups, 1)
	if event.Error != nil {
		s.Incr(KeyLookupErrors, 1)
	}
}

// OnModelUsage implements ModelUsageSubscriber.
func (s *Stats) OnModelUsage(event *ModelUsageEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[KeyInputTokens] += int64(event.InputTokens)
	s.counters[KeyOutputTokens] += int64(event.OutputTokens)
	if event.Model != "" {
		s.counters[KeyInputTokensFor+event.Model] += int64(event.InputTokens)
		s.counters[KeyOutputTokensFor+event.Model] += int64(event.OutputTokens)
	}
}

// OnSample implements SampleSubscriber.
func (s *Stats) OnSample(_ *SampleEvent) {
	s.Incr(KeySamples, 1)
}

// Compile-time checks that Stats subscribes to the events it counts.
var (
	_ RunStartedSubscriber  = (*Stats)(nil)
	_ RunFinishedSubscriber = (*Stats)(nil)
	_ StepStartedSubscriber = (*Stats)(nil)
	_ ModelCalledSubscriber = (*Stats)(nil)
	_ StepParsedSubscriber  = (*Stats)(nil)
	_ LookupSubscriber      = (*Stats)(nil)
	_ ModelUsageSubscriber  = (*Stats)(nil)
	_ SampleSubscriber      = (*Stats)(nil)
)

// Package tt provides test helpers shared by the textreact packages.
package tt

import (
	"sync"

	"github.com/rickchristie/textreact"
)

// -----------------------------------------------------------------------------
// Recorder - implements textreact.Publisher
// -----------------------------------------------------------------------------

// Recorder is a Publisher that keeps every event it receives, in order.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []textreact.Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish implements textreact.Publisher.
func (r *Recorder) Publish(event textreact.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []textreact.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]textreact.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Names returns the EventName of every recorded event, in order.
func (r *Recorder) Names() []string {
	events := r.Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.EventName()
	}
	return names
}

// CountByName counts recorded events by EventName.
func (r *Recorder) CountByName() map[string]int {
	counts := make(map[string]int)
	for _, e := range r.Events() {
		counts[e.EventName()]++
	}
	return counts
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// EventsOf returns the recorded events of type T, in order.
func EventsOf[T textreact.Event](r *Recorder) []T {
	var out []T
	for _, e := range r.Events() {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

var _ textreact.Publisher = (*Recorder)(nil)

package events

import (
	"sync"

	"github.com/rickchristie/textreact"
)

// Registry manages event subscribers and dispatches events to them.
//
// # Overview
//
// Registry is the central coordination point for event subscribers. It:
//   - Stores registered subscribers in order
//   - Dispatches events to subscribers that implement the relevant interface
//
// Subscribers can implement any combination of subscriber interfaces - they only
// receive events for the interfaces they implement.
//
// # Creating and Using
//
//	registry := events.NewRegistry().
//	    Subscribe(textreact.NewStats()).
//	    Subscribe(loggers.NewZap(logger))
//
//	agent := react.NewAgent(completer, lookup).WithEvents(registry)
//
// # Thread Safety
//
// Subscribe and Publish may be called concurrently. Subscribers are called
// synchronously on the publishing goroutine, so a subscriber shared by
// concurrent runs must guard its own state.
type Registry struct {
	mu          sync.RWMutex
	subscribers []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		subscribers: make([]any, 0),
	}
}

// Subscribe adds a subscriber to the registry. The subscriber can implement any
// combination of subscriber interfaces (RunStartedSubscriber,
// LookupSubscriber, etc.).
//
// Subscribers are called in the order they are registered.
func (r *Registry) Subscribe(subscriber any) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, subscriber)
	return r
}

// Publish implements textreact.Publisher by dispatching the event to all
// matching subscribers.
func (r *Registry) Publish(event textreact.Event) {
	r.mu.RLock()
	subscribers := r.subscribers
	r.mu.RUnlock()

	switch e := event.(type) {
	case *textreact.RunStartedEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.RunStartedSubscriber); ok {
				sub.OnRunStarted(e)
			}
		}
	case *textreact.RunFinishedEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.RunFinishedSubscriber); ok {
				sub.OnRunFinished(e)
			}
		}
	case *textreact.StepStartedEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.StepStartedSubscriber); ok {
				sub.OnStepStarted(e)
			}
		}
	case *textreact.ModelCalledEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.ModelCalledSubscriber); ok {
				sub.OnModelCalled(e)
			}
		}
	case *textreact.StepParsedEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.StepParsedSubscriber); ok {
				sub.OnStepParsed(e)
			}
		}
	case *textreact.LookupEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.LookupSubscriber); ok {
				sub.OnLookup(e)
			}
		}
	case *textreact.ModelUsageEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.ModelUsageSubscriber); ok {
				sub.OnModelUsage(e)
			}
		}
	case *textreact.ModelActivityEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.ModelActivitySubscriber); ok {
				sub.OnModelActivity(e)
			}
		}
	case *textreact.SampleEvent:
		for _, s := range subscribers {
			if sub, ok := s.(textreact.SampleSubscriber); ok {
				sub.OnSample(e)
			}
		}
	}
}

// Len returns the number of registered subscribers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscribers)
}

// Clear removes all registered subscribers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = make([]any, 0)
}

// Compile-time check that Registry implements textreact.Publisher.
var _ textreact.Publisher = (*Registry)(nil)

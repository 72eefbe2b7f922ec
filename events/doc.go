// Package events provides the event subscription registry for textreact.
//
// # Overview
//
// Components (the reasoning loop, model wrappers, the self-consistency
// runner) publish typed events to a textreact.Publisher. [Registry] is the
// standard publisher: it forwards each event to every registered subscriber
// that implements the matching interface.
//
// # Quick Start
//
//	// 1. Create subscribers by implementing subscriber interfaces
//	type LookupLogger struct{}
//
//	func (s *LookupLogger) OnLookup(event *textreact.LookupEvent) {
//	    log.Printf("step %d looked up %q in %v", event.Step, event.Query, event.Duration)
//	}
//
//	// 2. Create and configure registry
//	registry := events.NewRegistry()
//	registry.Subscribe(&LookupLogger{})
//
//	// 3. Hand it to the components
//	agent := react.NewAgent(completer, lookup).WithEvents(registry)
//
// # Event Types
//
//   - RunStartedEvent, RunFinishedEvent: run lifecycle
//   - StepStartedEvent, StepParsedEvent: step lifecycle
//   - ModelCalledEvent, LookupEvent: collaborator calls made by the loop
//   - ModelUsageEvent, ModelActivityEvent: published by model wrappers
//   - SampleEvent: published by the self-consistency runner
//
// Publishing is an observability side effect only. Nothing a subscriber does
// changes what the publishing component returns.
package events

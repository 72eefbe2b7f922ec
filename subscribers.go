package textreact

// Subscriber interfaces define type-safe event subscriptions.
//
// Implement any combination of these interfaces on a single struct to receive
// multiple event types. The events.Registry detects which interfaces your
// struct implements and calls the matching methods.
//
// # Example
//
//	type StepCounter struct{ steps int }
//
//	func (s *StepCounter) OnStepStarted(event *textreact.StepStartedEvent) {
//	    s.steps++
//	}
//
//	registry := events.NewRegistry()
//	registry.Subscribe(&StepCounter{})

// RunStartedSubscriber receives RunStartedEvent events.
type RunStartedSubscriber interface {
	OnRunStarted(event *RunStartedEvent)
}

// RunFinishedSubscriber receives RunFinishedEvent events.
type RunFinishedSubscriber interface {
	OnRunFinished(event *RunFinishedEvent)
}

// StepStartedSubscriber receives StepStartedEvent events.
type StepStartedSubscriber interface {
	OnStepStarted(event *StepStartedEvent)
}

// ModelCalledSubscriber receives ModelCalledEvent events.
type ModelCalledSubscriber interface {
	OnModelCalled(event *ModelCalledEvent)
}

// StepParsedSubscriber receives StepParsedEvent events.
type StepParsedSubscriber interface {
	OnStepParsed(event *StepParsedEvent)
}

// LookupSubscriber receives LookupEvent events.
type LookupSubscriber interface {
	OnLookup(event *LookupEvent)
}

// ModelUsageSubscriber receives ModelUsageEvent events.
type ModelUsageSubscriber interface {
	OnModelUsage(event *ModelUsageEvent)
}

// ModelActivitySubscriber receives ModelActivityEvent events.
type ModelActivitySubscriber interface {
	OnModelActivity(event *ModelActivityEvent)
}

// SampleSubscriber receives SampleEvent events.
type SampleSubscriber interface {
	OnSample(event *SampleEvent)
}

package textreact

import "time"

// -----------------------------------------------------------------------------
// Event Interface
// -----------------------------------------------------------------------------

// Event is implemented by every event published by the framework.
type Event interface {
	// EventName returns one of the EventName* constants.
	EventName() string
}

// Publisher receives events. [events.Registry] is the standard implementation.
// Components accept a nil Publisher and then publish nothing.
type Publisher interface {
	Publish(event Event)
}

// -----------------------------------------------------------------------------
// Run Events
// -----------------------------------------------------------------------------

// RunStartedEvent is emitted once before the first model call of a run.
type RunStartedEvent struct {
	RunID        string
	Question     string
	MaxSteps     int
	ShowActivity bool
	Time         time.Time
}

func (*RunStartedEvent) EventName() string { return EventNameRunStarted }

// RunFinishedEvent is emitted once when a run returns, with or without error.
type RunFinishedEvent struct {
	RunID    string
	Question string
	Answer   string
	Reason   TerminationReason

	// ModelCalls and Lookups count the collaborator calls made by the run.
	ModelCalls int
	Lookups    int

	// Transcript is the last prompt text the run built.
	Transcript string

	Duration time.Duration
	Error    error
}

func (*RunFinishedEvent) EventName() string { return EventNameRunFinished }

// -----------------------------------------------------------------------------
// Step Events
// -----------------------------------------------------------------------------

// StepStartedEvent is emitted before the model call of each step.
type StepStartedEvent struct {
	RunID        string
	Step         int
	ShowActivity bool
}

func (*StepStartedEvent) EventName() string { return EventNameStepStarted }

// ModelCalledEvent is emitted after each model call of a step.
type ModelCalledEvent struct {
	RunID    string
	Step     int
	Prompt   string
	Response string
	Duration time.Duration
	Error    error
}

func (*ModelCalledEvent) EventName() string { return EventNameModelCalled }

// StepParsedEvent is emitted after a response was parsed.
type StepParsedEvent struct {
	RunID  string
	Step   int
	Kind   StepKind
	Answer string
	Query  string
}

func (*StepParsedEvent) EventName() string { return EventNameStepParsed }

// LookupEvent is emitted after each lookup call.
type LookupEvent struct {
	RunID    string
	Step     int
	Query    string
	Snippet  string
	Duration time.Duration
	Error    error
}

func (*LookupEvent) EventName() string { return EventNameLookup }

// -----------------------------------------------------------------------------
// Model Events
// -----------------------------------------------------------------------------

// ModelUsageEvent is emitted by model wrappers after every provider call with
// normalized token counts.
type ModelUsageEvent struct {
	Model        string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	Duration     time.Duration
	Error        error
}

func (*ModelUsageEvent) EventName() string { return EventNameModelUsage }

// ModelActivityEvent is emitted by model wrappers when the caller asked for
// activity. It carries the full prompt and response for display.
type ModelActivityEvent struct {
	Model    string
	Prompt   string
	Response string
}

func (*ModelActivityEvent) EventName() string { return EventNameModelActivity }

// -----------------------------------------------------------------------------
// Sampling Events
// -----------------------------------------------------------------------------

// SampleEvent is emitted once per completed self-consistency sample.
type SampleEvent struct {
	Index    int
	Response string
	Answer   string
}

func (*SampleEvent) EventName() string { return EventNameSample }

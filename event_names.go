package textreact

// Event name constants identify framework events in logs.
//
// # Naming Convention
//
// Event names follow the pattern: "namespace:category:timing"
//   - namespace: "textreact" for framework events
//   - category: what the event is about (run, step, model_call, lookup, ...)
//   - timing: when in the lifecycle (started, finished) - omitted for single events
const (
	// Run lifecycle
	EventNameRunStarted  = "textreact:run:started"
	EventNameRunFinished = "textreact:run:finished"

	// Step lifecycle
	EventNameStepStarted = "textreact:step:started"
	EventNameStepParsed  = "textreact:step:parsed"

	// Collaborator calls
	EventNameModelCalled   = "textreact:model_call"
	EventNameModelUsage    = "textreact:model_call:usage"
	EventNameModelActivity = "textreact:model_call:activity"
	EventNameLookup        = "textreact:lookup"

	// Repeated sampling
	EventNameSample = "textreact:sample"
)

// StepKind tags the outcome of parsing one model response.
type StepKind string

const (
	// StepKindAnswer means line 1 or line 2 carried a resolved Answer[...].
	StepKindAnswer StepKind = "answer"

	// StepKindAction means line 2 is an action whose query should be looked up.
	StepKindAction StepKind = "action"

	// StepKindMalformed means there was no answer and no action line.
	StepKindMalformed StepKind = "malformed"
)

// TerminationReason indicates why a run ended.
type TerminationReason string

const (
	// TerminationAnswered means the model produced a resolved answer.
	TerminationAnswered TerminationReason = "answered"

	// TerminationMalformed means a response had neither an answer nor an
	// action line, so the run stopped early without an answer.
	TerminationMalformed TerminationReason = "malformed"

	// TerminationExhausted means the step budget ran out without an answer.
	TerminationExhausted TerminationReason = "exhausted"

	// TerminationError means a collaborator failed or the context was done.
	TerminationError TerminationReason = "error"
)

// Resolved reports whether the reason carries an answer.
func (r TerminationReason) Resolved() bool {
	return r == TerminationAnswered
}

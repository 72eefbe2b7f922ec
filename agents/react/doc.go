// Package react implements the ReAct (Reasoning and Acting) loop over a plain
// text completion model and a lookup service.
//
// # Overview
//
// The prompt is a single growing transcript:
//
//	{context}
//
//	{exemplar}
//
//	Question: {question}
//	Thought 1:
//
// On every step the model continues the transcript. The first line of its
// response is the thought and the second the action:
//
//	I need to search Ronald Reagan.
//	Action 1: Ronald Reagan<STOP>
//
// The query before the stop marker is looked up and the result appended as
// "Observation 1: ...", followed by the next "Thought 2:" label. The model's
// own lines are kept verbatim, so every prompt extends the previous one.
//
// # Termination
//
// The loop stops when:
//   - a response carries Answer[...] on line 1 or 2 (answered)
//   - a response has no answer and no second line (malformed, no retry)
//   - the step budget runs out (exhausted)
//   - the completer or lookup fails, or the context is done (error)
//
// # Configuration
//
// The agent can be configured with:
//   - WithMaxSteps: step budget (default 7)
//   - WithShowActivity: surface prompts and responses through activity events
//   - WithStopMarker / WithParser: action query delimiter (default "<STOP>")
//   - WithEvents: event publisher, usually an events.Registry
//   - WithTimeProvider: clock for event durations
package react

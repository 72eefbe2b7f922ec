package react

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rickchristie/textreact"
	"github.com/rickchristie/textreact/parser"
)

// DefaultMaxSteps is the step budget used when neither the agent nor the
// request sets one.
const DefaultMaxSteps = 7

// Request is the input of one reasoning run.
type Request struct {
	// Context is the instruction block placed at the top of the prompt.
	Context string

	// Exemplar is the worked example shown to the model before the question.
	Exemplar string

	// Question is the question to answer.
	Question string

	// MaxSteps overrides the agent's step budget when greater than zero.
	MaxSteps int

	// ShowActivity turns on activity for this run even if the agent has it off.
	ShowActivity bool
}

// Result is the outcome of a run that finished without error.
type Result struct {
	// RunID identifies the run in published events.
	RunID string

	// Answer is the resolved answer. Empty unless Reason is answered.
	Answer string

	// Reason tells which terminal state the run reached.
	Reason textreact.TerminationReason

	// Steps is the number of model calls made.
	Steps int

	// Lookups is the number of lookup calls made.
	Lookups int

	// Transcript is the prompt text sent on the last model call.
	Transcript string

	Duration time.Duration
}

// Resolved reports whether the run produced an answer.
func (r *Result) Resolved() bool {
	return r.Reason.Resolved()
}

// ----------------------------------------------------------------------------
// Agent
// ----------------------------------------------------------------------------

// Agent runs the ReAct reasoning loop: think, act, observe, repeat.
//
// Each step sends the whole transcript to the completer, parses the first two
// lines of the response, and either stops with an answer or looks up the
// action's query and appends the observation. An Agent holds no per-run state
// and may serve concurrent Run calls.
type Agent struct {
	completer    textreact.Completer
	lookup       textreact.Lookup
	parser       *parser.Parser
	events       textreact.Publisher
	timeProvider textreact.TimeProvider
	newRunID     func() string
	maxSteps     int
	showActivity bool
}

// NewAgent creates a new Agent with the given collaborators and default settings.
// Defaults:
//   - Parser: parser.Default() (stop marker "<STOP>")
//   - MaxSteps: DefaultMaxSteps
//   - ShowActivity: false
//   - TimeProvider: textreact.NewDefaultTimeProvider()
//   - Events: none
func NewAgent(completer textreact.Completer, lookup textreact.Lookup) *Agent {
	return &Agent{
		completer:    completer,
		lookup:       lookup,
		parser:       parser.Default(),
		timeProvider: textreact.NewDefaultTimeProvider(),
		newRunID:     uuid.NewString,
		maxSteps:     DefaultMaxSteps,
	}
}

// WithParser sets the response parser.
func (a *Agent) WithParser(p *parser.Parser) *Agent {
	a.parser = p
	return a
}

// WithStopMarker replaces the parser with one that ends queries at marker.
func (a *Agent) WithStopMarker(marker string) *Agent {
	a.parser = parser.New(marker)
	return a
}

// WithEvents sets the publisher that receives run, step, model call and
// lookup events.
func (a *Agent) WithEvents(events textreact.Publisher) *Agent {
	a.events = events
	return a
}

// WithMaxSteps sets the default step budget. A budget below 1 makes every
// run end exhausted without calling the model.
func (a *Agent) WithMaxSteps(n int) *Agent {
	a.maxSteps = n
	return a
}

// WithShowActivity turns activity on for every run.
func (a *Agent) WithShowActivity(show bool) *Agent {
	a.showActivity = show
	return a
}

// WithTimeProvider sets the clock used for event timestamps and durations.
// Use this to inject a mock time provider for testing.
func (a *Agent) WithTimeProvider(tp textreact.TimeProvider) *Agent {
	a.timeProvider = tp
	return a
}

// WithRunIDFunc sets the generator of run IDs. Defaults to random UUIDs.
func (a *Agent) WithRunIDFunc(fn func() string) *Agent {
	a.newRunID = fn
	return a
}

// MaxSteps returns the default step budget.
func (a *Agent) MaxSteps() int {
	return a.maxSteps
}

// Run drives one reasoning run to completion.
//
// A run ends in one of three ways that are not errors:
//   - answered: a response carried Answer[...]
//   - malformed: a response had no answer and no action line
//   - exhausted: the step budget ran out
//
// Failures of the completer or the lookup end the run with an error wrapping
// textreact.ErrModelCall or textreact.ErrLookup. A done context is checked
// before every step and reported as textreact.ErrCanceled. Nothing is retried.
func (a *Agent) Run(ctx context.Context, req Request) (*Result, error) {
	maxSteps := a.maxSteps
	if req.MaxSteps > 0 {
		maxSteps = req.MaxSteps
	}
	showActivity := a.showActivity || req.ShowActivity

	started := a.timeProvider.Now()
	result := &Result{RunID: a.newRunID()}
	transcript := textreact.NewTranscript(req.Context, req.Exemplar, req.Question)

	a.publish(&textreact.RunStartedEvent{
		RunID:        result.RunID,
		Question:     req.Question,
		MaxSteps:     maxSteps,
		ShowActivity: showActivity,
		Time:         started,
	})

	finish := func(err error) (*Result, error) {
		result.Transcript = transcript.String()
		result.Duration = textreact.Since(a.timeProvider, started)
		if err != nil {
			result.Reason = textreact.TerminationError
		}
		a.publish(&textreact.RunFinishedEvent{
			RunID:      result.RunID,
			Question:   req.Question,
			Answer:     result.Answer,
			Reason:     result.Reason,
			ModelCalls: result.Steps,
			Lookups:    result.Lookups,
			Transcript: result.Transcript,
			Duration:   result.Duration,
			Error:      err,
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	for step := 1; step <= maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return finish(fmt.Errorf("%w before step %d: %w", textreact.ErrCanceled, step, err))
		}

		a.publish(&textreact.StepStartedEvent{
			RunID:        result.RunID,
			Step:         step,
			ShowActivity: showActivity,
		})

		prompt := transcript.String()
		callStart := a.timeProvider.Now()
		response, err := a.completer.Complete(ctx, prompt, showActivity)
		result.Steps++
		a.publish(&textreact.ModelCalledEvent{
			RunID:    result.RunID,
			Step:     step,
			Prompt:   prompt,
			Response: response,
			Duration: textreact.Since(a.timeProvider, callStart),
			Error:    err,
		})
		if err != nil {
			return finish(fmt.Errorf("%w at step %d: %w", textreact.ErrModelCall, step, err))
		}

		parsed := a.parser.Parse(response)
		a.publish(&textreact.StepParsedEvent{
			RunID:  result.RunID,
			Step:   step,
			Kind:   parsed.Kind,
			Answer: parsed.Answer,
			Query:  parsed.Query,
		})

		switch parsed.Kind {
		case textreact.StepKindAnswer:
			result.Answer = parsed.Answer
			result.Reason = textreact.TerminationAnswered
			return finish(nil)
		case textreact.StepKindMalformed:
			result.Reason = textreact.TerminationMalformed
			return finish(nil)
		}

		lookupStart := a.timeProvider.Now()
		snippet, err := a.lookup.Lookup(ctx, parsed.Query)
		result.Lookups++
		a.publish(&textreact.LookupEvent{
			RunID:    result.RunID,
			Step:     step,
			Query:    parsed.Query,
			Snippet:  snippet,
			Duration: textreact.Since(a.timeProvider, lookupStart),
			Error:    err,
		})
		if err != nil {
			return finish(fmt.Errorf("%w at step %d for %q: %w", textreact.ErrLookup, step, parsed.Query, err))
		}

		transcript.AppendStep(step, parsed.Thought, parsed.Action, snippet)
	}

	result.Reason = textreact.TerminationExhausted
	return finish(nil)
}

// Answer runs the loop with the agent's own step budget and activity setting
// and reports the answer with a resolved flag. Malformed and exhausted runs
// both return ("", false, nil).
func (a *Agent) Answer(ctx context.Context, contextText, exemplar, question string) (string, bool, error) {
	result, err := a.Run(ctx, Request{
		Context:  contextText,
		Exemplar: exemplar,
		Question: question,
	})
	if err != nil {
		return "", false, err
	}
	return result.Answer, result.Resolved(), nil
}

func (a *Agent) publish(event textreact.Event) {
	if a.events != nil {
		a.events.Publish(event)
	}
}

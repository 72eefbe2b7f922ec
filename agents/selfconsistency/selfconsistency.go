// Package selfconsistency samples the same prompt many times and tallies the
// final answers, so the most frequent answer can be taken as the result.
package selfconsistency

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rickchristie/textreact"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultRuns is the number of samples taken per prompt.
	DefaultRuns = 40

	// DefaultConcurrency is the number of samples requested at once.
	DefaultConcurrency = 4

	// NoAnswer is tallied for responses that never state an answer.
	NoAnswer = "NA"

	answerMarker = "The answer is"
)

// ExtractAnswer returns the text after the first "The answer is" up to the
// next period or the next "The answer is", trimmed. Responses without the
// marker give [NoAnswer].
func ExtractAnswer(response string) string {
	_, after, found := strings.Cut(response, answerMarker)
	if !found {
		return NoAnswer
	}
	after, _, _ = strings.Cut(after, answerMarker)
	after, _, _ = strings.Cut(after, ".")
	return strings.TrimSpace(after)
}

// AnswerCount is one row of a tally.
type AnswerCount struct {
	Answer string `yaml:"answer" json:"answer"`
	Count  int    `yaml:"count" json:"count"`
}

// Tally holds the samples of one run in sample order.
type Tally struct {
	Responses []string
	Answers   []string
	Counts    map[string]int
}

func newTally(responses []string) *Tally {
	t := &Tally{
		Responses: responses,
		Answers:   make([]string, len(responses)),
		Counts:    make(map[string]int),
	}
	for i, r := range responses {
		answer := ExtractAnswer(r)
		t.Answers[i] = answer
		t.Counts[answer]++
	}
	return t
}

// MostCommon returns every distinct answer with its count, most frequent
// first. Ties keep the order in which answers first appeared.
func (t *Tally) MostCommon() []AnswerCount {
	firstSeen := make(map[string]int, len(t.Counts))
	for i, a := range t.Answers {
		if _, ok := firstSeen[a]; !ok {
			firstSeen[a] = i
		}
	}

	rows := make([]AnswerCount, 0, len(t.Counts))
	for answer, count := range t.Counts {
		rows = append(rows, AnswerCount{Answer: answer, Count: count})
	}
	slices.SortFunc(rows, func(a, b AnswerCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(firstSeen[a.Answer], firstSeen[b.Answer])
	})
	return rows
}

// Best returns the most common answer. ok is false for an empty tally.
func (t *Tally) Best() (answer string, count int, ok bool) {
	rows := t.MostCommon()
	if len(rows) == 0 {
		return "", 0, false
	}
	return rows[0].Answer, rows[0].Count, true
}

// Runner samples a completer repeatedly.
type Runner struct {
	completer   textreact.Completer
	events      textreact.Publisher
	runs        int
	concurrency int
}

// New creates a Runner with [DefaultRuns] and [DefaultConcurrency].
func New(completer textreact.Completer) *Runner {
	return &Runner{
		completer:   completer,
		runs:        DefaultRuns,
		concurrency: DefaultConcurrency,
	}
}

// WithRuns sets the number of samples.
func (r *Runner) WithRuns(n int) *Runner {
	r.runs = n
	return r
}

// WithConcurrency sets how many samples are requested at once. Values below 1
// mean one at a time.
func (r *Runner) WithConcurrency(n int) *Runner {
	r.concurrency = n
	return r
}

// WithEvents sets the publisher that receives a SampleEvent per sample.
func (r *Runner) WithEvents(events textreact.Publisher) *Runner {
	r.events = events
	return r
}

// Run samples prompt the configured number of times without activity and
// tallies the answers. The first completer failure cancels the remaining
// samples and is returned wrapped with textreact.ErrModelCall. A done context
// is reported as textreact.ErrCanceled.
func (r *Runner) Run(ctx context.Context, prompt string) (*Tally, error) {
	responses := make([]string, max(r.runs, 0))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.concurrency, 1))
	for i := range responses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("%w: sample %d: %w", textreact.ErrCanceled, i+1, err)
			}
			response, err := r.completer.Complete(gctx, prompt, false)
			if err != nil {
				return fmt.Errorf("%w: sample %d: %w", textreact.ErrModelCall, i+1, err)
			}
			responses[i] = response
			if r.events != nil {
				r.events.Publish(&textreact.SampleEvent{
					Index:    i,
					Response: response,
					Answer:   ExtractAnswer(response),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newTally(responses), nil
}

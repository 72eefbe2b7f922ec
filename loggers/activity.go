package loggers

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rickchristie/textreact"
)

const (
	bold  = "\033[1m"
	reset = "\033[0m"
)

// Activity prints the human trace of a run. Step headers are printed only
// for steps that asked for activity; prompt and response blocks come from
// ModelActivityEvent, which completers publish only when asked to.
type Activity struct {
	mu      sync.Mutex
	out     io.Writer
	samples bool
}

// NewActivity creates an Activity printer writing to w (stdout when nil).
func NewActivity(w io.Writer) *Activity {
	if w == nil {
		w = os.Stdout
	}
	return &Activity{out: w}
}

// WithSamples also prints every self-consistency sample as it completes.
func (a *Activity) WithSamples(show bool) *Activity {
	a.samples = show
	return a
}

// OnStepStarted implements textreact.StepStartedSubscriber.
func (a *Activity) OnStepStarted(event *textreact.StepStartedEvent) {
	if !event.ShowActivity {
		return
	}
	a.printf("%sReAct chain step %d:%s\x1B[0m\n", bold, event.Step, reset)
}

// OnModelActivity implements textreact.ModelActivitySubscriber.
func (a *Activity) OnModelActivity(event *textreact.ModelActivityEvent) {
	a.printf("The call to the LLM:\n%s\n\nThe response:\n%s\n", event.Prompt, event.Response)
}

// OnSample implements textreact.SampleSubscriber.
func (a *Activity) OnSample(event *textreact.SampleEvent) {
	if !a.samples {
		return
	}
	a.printf("Response %d...\n%s\n", event.Index+1, event.Response)
}

func (a *Activity) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

var (
	_ textreact.StepStartedSubscriber   = (*Activity)(nil)
	_ textreact.ModelActivitySubscriber = (*Activity)(nil)
	_ textreact.SampleSubscriber        = (*Activity)(nil)
)

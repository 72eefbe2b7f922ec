package textreact

import (
	"fmt"
	"strings"
)

// Transcript is the append-only prompt text carried between reasoning steps.
//
// It starts as context, exemplar, question and the first step label:
//
//	{context}\n\n{exemplar}\n\nQuestion: {question}\nThought 1:
//
// and every completed action step extends it with
//
//	 {thought line}\n{action line}\nObservation {k}: {snippet}\nThought {k+1}:
//
// The thought and action lines are the model's own lines, kept verbatim.
// Segments are never rewritten or removed, so the text rendered for step n+1
// always starts with the text rendered for step n.
type Transcript struct {
	segments []string
}

// NewTranscript creates a transcript seeded for step 1.
func NewTranscript(context, exemplar, question string) *Transcript {
	return &Transcript{
		segments: []string{
			context + "\n\n" + exemplar + "\n\nQuestion: " + question + "\n" + StepLabel(1),
		},
	}
}

// AppendStep records one completed action step: the model's thought and
// action lines, the observation for step, and the label for step+1.
func (t *Transcript) AppendStep(step int, thought, action, snippet string) {
	t.segments = append(t.segments,
		" "+thought+"\n"+action,
		"\n"+ObservationLine(step, snippet),
		"\n"+StepLabel(step+1),
	)
}

// Segments returns a copy of the appended segments in order.
func (t *Transcript) Segments() []string {
	out := make([]string, len(t.segments))
	copy(out, t.segments)
	return out
}

// Len returns the number of segments.
func (t *Transcript) Len() int {
	return len(t.segments)
}

// String renders the transcript as the prompt for the next model call.
func (t *Transcript) String() string {
	return strings.Join(t.segments, "")
}

// StepLabel returns the "Thought {step}:" label that opens a step.
func StepLabel(step int) string {
	return fmt.Sprintf("Thought %d:", step)
}

// ObservationLine formats a lookup snippet for the transcript.
func ObservationLine(step int, snippet string) string {
	return fmt.Sprintf("Observation %d: %s", step, snippet)
}

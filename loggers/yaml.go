package loggers

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rickchristie/textreact"
	"gopkg.in/yaml.v3"
)

// RunRecord is the YAML document written for each finished run.
type RunRecord struct {
	RunID      string `yaml:"run_id"`
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer,omitempty"`
	Reason     string `yaml:"reason"`
	ModelCalls int    `yaml:"model_calls"`
	Lookups    int    `yaml:"lookups"`
	Duration   string `yaml:"duration"`
	Error      string `yaml:"error,omitempty"`
	Transcript string `yaml:"transcript"`
}

// YAML writes one YAML document per finished run. Multi-line strings such as
// the transcript are written as literal block scalars so they stay readable.
// Nothing is truncated.
type YAML struct {
	mu  sync.Mutex
	out io.Writer
}

// NewYAML creates a YAML run logger writing to w.
func NewYAML(w io.Writer) *YAML {
	return &YAML{out: w}
}

// OnRunFinished implements textreact.RunFinishedSubscriber.
func (y *YAML) OnRunFinished(event *textreact.RunFinishedEvent) {
	record := RunRecord{
		RunID:      event.RunID,
		Question:   event.Question,
		Answer:     event.Answer,
		Reason:     string(event.Reason),
		ModelCalls: event.ModelCalls,
		Lookups:    event.Lookups,
		Duration:   event.Duration.String(),
		Transcript: event.Transcript,
	}
	if event.Error != nil {
		record.Error = event.Error.Error()
	}

	data, err := marshalBlock(record)

	y.mu.Lock()
	defer y.mu.Unlock()
	if err != nil {
		fmt.Fprintf(y.out, "# failed to marshal run %s: %v\n", event.RunID, err)
		return
	}
	fmt.Fprintf(y.out, "---\n%s", data)
}

// marshalBlock marshals v, forcing literal style on multi-line strings.
func marshalBlock(v any) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	setLiteralStyle(&node)
	return yaml.Marshal(&node)
}

func setLiteralStyle(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		n.Style = yaml.LiteralStyle
	}
	for _, c := range n.Content {
		setLiteralStyle(c)
	}
}

var _ textreact.RunFinishedSubscriber = (*YAML)(nil)

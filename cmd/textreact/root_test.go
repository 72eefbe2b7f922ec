package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rickchristie/textreact"
	"github.com/rickchristie/textreact/agents/react"
	"github.com/rickchristie/textreact/agents/selfconsistency"
	"github.com/rickchristie/textreact/config"
	"github.com/rickchristie/textreact/internal/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

type fixture struct {
	dir       string
	completer *tt.MockCompleter
	lookup    *tt.MockLookup
	out       bytes.Buffer
}

func newFixture(t *testing.T, responses ...string) *fixture {
	t.Helper()
	return &fixture{
		dir:       t.TempDir(),
		completer: tt.NewMockCompleter(responses...),
		lookup:    tt.NewMockLookup(),
	}
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.dir, name)
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	p := f.path(name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// run executes the CLI with args against the fixture's mocks and a config
// file that does not exist unless a --config flag is given.
func (f *fixture) run(t *testing.T, args ...string) error {
	t.Helper()
	a := &app{
		logger: zap.NewNop(),
		newCompleter: func(_ *config.Config, _ textreact.Publisher) (textreact.Completer, error) {
			return f.completer, nil
		},
		newLookup: func(_ *config.Config) textreact.Lookup {
			return f.lookup
		},
	}
	base := []string{"--config", f.path("missing.yaml"), "--env", f.path("missing.env")}
	cmd := newRootCmd(a)
	cmd.SetArgs(append(base, args...))
	cmd.SetOut(&f.out)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// -----------------------------------------------------------------------------
// ask
// -----------------------------------------------------------------------------

func TestAsk_Answered(t *testing.T) {
	f := newFixture(t,
		"I need to look up Gerald Ford.\nAction 1: Gerald Ford<STOP>",
		"Ford was born in 1913. Answer[Ronald Reagan]",
	)
	f.lookup.WithSnippet("Gerald Ford", "Gerald Ford was born July 14, 1913.")

	err := f.run(t, "ask", "Who", "was", "born", "first?")
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "ReAct Answer:")
	assert.Contains(t, f.out.String(), "Ronald Reagan\n")
	assert.Equal(t, []string{"Gerald Ford"}, f.lookup.CapturedQueries)

	require.Len(t, f.completer.CapturedPrompts, 2)
	assert.Equal(t,
		react.DefaultContext+"\n\n"+react.DefaultExemplar+"\n\nQuestion: Who was born first?\nThought 1:",
		f.completer.CapturedPrompts[0])
}

func TestAsk_PromptFilesAndBudget(t *testing.T) {
	f := newFixture(t)
	f.completer.WithFallback("Still thinking.\nAction 1: Rome<STOP>")
	f.lookup.WithDefault("Rome is a city.")
	ctxFile := f.write(t, "context.txt", "CTX")
	exFile := f.write(t, "exemplar.txt", "EX")

	err := f.run(t, "ask",
		"--context-file", ctxFile,
		"--exemplar-file", exFile,
		"--max-steps", "2",
		"Where?")
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "No answer (exhausted) after 2 steps and 2 lookups.")
	require.Len(t, f.completer.CapturedPrompts, 2)
	assert.True(t, strings.HasPrefix(f.completer.CapturedPrompts[0], "CTX\n\nEX\n\nQuestion: Where?"))
}

func TestAsk_ConfigFileBudget(t *testing.T) {
	f := newFixture(t)
	f.completer.WithFallback("t\nAction 1: x<STOP>")
	f.lookup.WithDefault("y")
	cfgPath := f.write(t, "textreact.yaml", "react:\n  max_steps: 3\n")

	err := f.run(t, "--config", cfgPath, "ask", "Q?")
	require.NoError(t, err)
	assert.Equal(t, 3, f.completer.CallCount())
}

func TestAsk_ShowActivity(t *testing.T) {
	f := newFixture(t, "Answer[42]")

	err := f.run(t, "ask", "--show-activity", "Q?")
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "ReAct chain step 1:")
	require.Len(t, f.completer.CapturedActivity, 1)
	assert.True(t, f.completer.CapturedActivity[0])
}

func TestAsk_LookupFailure(t *testing.T) {
	f := newFixture(t, "t\nAction 1: Nowhere<STOP>")

	err := f.run(t, "ask", "Q?")
	require.Error(t, err)
	assert.ErrorIs(t, err, textreact.ErrLookup)
	assert.ErrorIs(t, err, textreact.ErrLookupNotFound)
}

func TestAsk_RequiresQuestion(t *testing.T) {
	f := newFixture(t)
	assert.Error(t, f.run(t, "ask"))
	assert.Equal(t, 0, f.completer.CallCount())
}

func TestAsk_MissingPromptFile(t *testing.T) {
	f := newFixture(t)
	err := f.run(t, "ask", "--context-file", f.path("nope.txt"), "Q?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestRoot_InvalidConfig(t *testing.T) {
	f := newFixture(t)
	cfgPath := f.write(t, "textreact.yaml", "react:\n  max_steps: 0\n")

	err := f.run(t, "--config", cfgPath, "ask", "Q?")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_CompleterFailure(t *testing.T) {
	boom := errors.New("no token")
	a := &app{
		logger: zap.NewNop(),
		newCompleter: func(_ *config.Config, _ textreact.Publisher) (textreact.Completer, error) {
			return nil, boom
		},
		newLookup: func(_ *config.Config) textreact.Lookup { return tt.NewMockLookup() },
	}
	dir := t.TempDir()
	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "x.yaml"), "--env", filepath.Join(dir, "x.env"), "ask", "Q?"})
	cmd.SetOut(io.Discard)

	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestRoot_TranscriptFile(t *testing.T) {
	f := newFixture(t)
	f.completer.WithFallback("Answer[Paris]")
	transcript := f.path("runs.yaml")

	require.NoError(t, f.run(t, "--transcript", transcript, "ask", "Capital of France?"))
	require.NoError(t, f.run(t, "--transcript", transcript, "ask", "Capital of France?"))

	data, err := os.ReadFile(transcript)
	require.NoError(t, err)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var records []map[string]any
	for {
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		records = append(records, rec)
	}
	require.Len(t, records, 2)
	assert.Equal(t, "Paris", records[0]["answer"])
	assert.Equal(t, "answered", records[1]["reason"])
	assert.Equal(t, "Capital of France?", records[1]["question"])
}

// -----------------------------------------------------------------------------
// cot and consistency
// -----------------------------------------------------------------------------

func TestCoT(t *testing.T) {
	f := newFixture(t, " 3 briefs of 3 sections of 4 hours is 36 hours. The answer is 36.")

	err := f.run(t, "cot", "How long did it take?")
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "Chain of Thought Response:")
	assert.Contains(t, f.out.String(), "The answer is 36.")
	require.Len(t, f.completer.CapturedPrompts, 1)
	assert.True(t, strings.HasSuffix(f.completer.CapturedPrompts[0], "\nQ: How long did it take?\nA:"))
}

func TestConsistency(t *testing.T) {
	f := newFixture(t,
		"5 + 0 = 5. The answer is 5.",
		"The answer is 6.",
		"The answer is 5.",
		"I am not sure.",
	)

	err := f.run(t, "consistency", "--runs", "4", "--concurrency", "1", "How many?")
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "Answer distribution (4 samples):")
	assert.Contains(t, out, "Most common answer:"+colorReset+" 5 (2/4)")
	assert.Contains(t, out, "NA")
	assert.Equal(t, 4, f.completer.CallCount())
	for _, shown := range f.completer.CapturedActivity {
		assert.False(t, shown)
	}
}

func TestConsistency_ShowSamples(t *testing.T) {
	f := newFixture(t)
	f.completer.WithFallback("The answer is 7.")

	err := f.run(t, "consistency", "--runs", "2", "--show-samples", "Q?")
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Response 1...\nThe answer is 7.")
	assert.Contains(t, f.out.String(), "Response 2...\nThe answer is 7.")
}

func TestPrintTally_Empty(t *testing.T) {
	var buf bytes.Buffer
	printTally(&buf, &selfconsistency.Tally{})
	assert.Contains(t, buf.String(), "No samples.")
}

// -----------------------------------------------------------------------------
// chat
// -----------------------------------------------------------------------------

func TestRunChat(t *testing.T) {
	completer := tt.NewMockCompleter("Answer[one]", "t\nAction 1: missing<STOP>", "Answer[three]")
	agent := react.NewAgent(completer, tt.NewMockLookup())
	reader := &scriptedReader{lines: []string{"", "first?", "second?", "third?", "exit", "never"}}

	var out bytes.Buffer
	err := runChat(context.Background(), &out, reader, agent, &promptFlags{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "one\n")
	assert.Contains(t, out.String(), "Error: ")
	assert.Contains(t, out.String(), "three\n")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Equal(t, []string{"never"}, reader.lines)
	assert.Equal(t, 3, completer.CallCount())
}

func TestRunChat_EOF(t *testing.T) {
	agent := react.NewAgent(tt.NewMockCompleter(), tt.NewMockLookup())

	var out bytes.Buffer
	err := runChat(context.Background(), &out, &scriptedReader{}, agent, &promptFlags{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunChat_CanceledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	agent := react.NewAgent(tt.NewMockCompleter("Answer[x]"), tt.NewMockLookup())

	var out bytes.Buffer
	err := runChat(ctx, &out, &scriptedReader{lines: []string{"q?", "q?"}}, agent, &promptFlags{})
	assert.ErrorIs(t, err, textreact.ErrCanceled)
}

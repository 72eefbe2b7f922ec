package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rickchristie/textreact"
	"github.com/stretchr/testify/assert"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     Result
	}{
		{
			name:     "answer on second line",
			response: "Thought 2: d\nAnswer[dogs]",
			want: Result{
				Kind:    textreact.StepKindAnswer,
				Answer:  "dogs",
				Thought: "Thought 2: d",
				Action:  "Answer[dogs]",
			},
		},
		{
			name:     "answer inside first line thought",
			response: "Thought 3: Guido van Rossum developed Python. Answer[Guido van Rossum]",
			want: Result{
				Kind:    textreact.StepKindAnswer,
				Answer:  "Guido van Rossum",
				Thought: "Thought 3: Guido van Rossum developed Python. Answer[Guido van Rossum]",
			},
		},
		{
			name:     "answer wins over action on line 2",
			response: "Answer[yes] and more\nAction 1: ignored<STOP>\nObservation 1: junk",
			want: Result{
				Kind:    textreact.StepKindAnswer,
				Answer:  "yes",
				Thought: "Answer[yes] and more",
			},
		},
		{
			name:     "answer without closing bracket takes rest of line",
			response: "Thought: Answer[open ended\nnext",
			want: Result{
				Kind:    textreact.StepKindAnswer,
				Answer:  "open ended",
				Thought: "Thought: Answer[open ended",
			},
		},
		{
			name:     "empty answer",
			response: "Answer[]",
			want:     Result{Kind: textreact.StepKindAnswer, Answer: "", Thought: "Answer[]"},
		},
		{
			name:     "answer keeps inner whitespace",
			response: "Answer[  spaced  ]",
			want:     Result{Kind: textreact.StepKindAnswer, Answer: "  spaced  ", Thought: "Answer[  spaced  ]"},
		},
		{
			name:     "lowercase answer is not an answer",
			response: "answer[no]",
			want:     Result{Kind: textreact.StepKindMalformed, Thought: "answer[no]"},
		},
		{
			name:     "single line without answer is malformed",
			response: "Thought 1: t",
			want:     Result{Kind: textreact.StepKindMalformed, Thought: "Thought 1: t"},
		},
		{
			name:     "trailing newline does not add a line",
			response: "Thought 1: t\n",
			want:     Result{Kind: textreact.StepKindMalformed, Thought: "Thought 1: t"},
		},
		{
			name:     "empty response is malformed",
			response: "",
			want:     Result{Kind: textreact.StepKindMalformed},
		},
		{
			name:     "action with stop marker",
			response: "Thought 1: t\nAction 1: dog<STOP>",
			want: Result{
				Kind:    textreact.StepKindAction,
				Query:   "dog",
				Thought: "Thought 1: t",
				Action:  "Action 1: dog<STOP>",
			},
		},
		{
			name:     "lines after the action line are ignored",
			response: "Thought 1: t\nAction 1: cat<STOP>\nObservation 1: made up\nThought 2: more",
			want: Result{
				Kind:    textreact.StepKindAction,
				Query:   "cat",
				Thought: "Thought 1: t",
				Action:  "Action 1: cat<STOP>",
			},
		},
		{
			name:     "action without stop marker keeps whole line",
			response: "Thought 1: t\n  Python  ",
			want: Result{
				Kind:    textreact.StepKindAction,
				Query:   "Python",
				Thought: "Thought 1: t",
				Action:  "  Python  ",
			},
		},
		{
			name:     "crlf line endings",
			response: "Thought 1: t\r\nAction 1: dog<STOP>\r\n",
			want: Result{
				Kind:    textreact.StepKindAction,
				Query:   "dog",
				Thought: "Thought 1: t",
				Action:  "Action 1: dog<STOP>",
			},
		},
		{
			name:     "empty first line then answer on line 2",
			response: "\nAnswer[late]",
			want: Result{
				Kind:    textreact.StepKindAnswer,
				Answer:  "late",
				Thought: "",
				Action:  "Answer[late]",
			},
		},
		{
			name:     "answer on line 3 does not count",
			response: "Thought 1: t\nAction 1: Rome<STOP>\nAnswer[Rome]",
			want: Result{
				Kind:    textreact.StepKindAction,
				Query:   "Rome",
				Thought: "Thought 1: t",
				Action:  "Action 1: Rome<STOP>",
			},
		},
		{
			name:     "non bracket answer format is an action",
			response: "Thought 2: t\nAnswer: Python is great.",
			want: Result{
				Kind:    textreact.StepKindAction,
				Query:   "Answer: Python is great.",
				Thought: "Thought 2: t",
				Action:  "Answer: Python is great.",
			},
		},
	}

	p := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.response)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_AnswerIsExactRegardlessOfLaterLines(t *testing.T) {
	p := Default()
	tails := []string{"", "\n", "\nAction 1: x<STOP>", "\n\n\nAnswer[other]", "\r\nfoo]bar"}
	for _, tail := range tails {
		got := p.Parse("Thought: so Answer[X] done" + tail)
		assert.Equal(t, textreact.StepKindAnswer, got.Kind)
		assert.Equal(t, "X", got.Answer)
	}
}

func TestParser_CustomStopMarker(t *testing.T) {
	p := New("###")
	assert.Equal(t, "###", p.StopMarker())

	got := p.Parse("Thought 1: t\nAction 1: Rome###<STOP>")
	assert.Equal(t, textreact.StepKindAction, got.Kind)
	assert.Equal(t, "Rome", got.Query)
}

func TestExtractQuery(t *testing.T) {
	tests := []struct {
		name string
		text string
		stop string
		want string
	}{
		{
			name: "text after newline is ignored",
			text: "Action 1: cat<STOP>\nExtra",
			stop: DefaultStopMarker,
			want: "cat",
		},
		{
			name: "stop marker on a later line is not honored",
			text: "Action 1: Python (programming language)\nmore<STOP>",
			stop: DefaultStopMarker,
			want: "Python (programming language)",
		},
		{
			name: "only the text before the first marker is kept",
			text: "a<STOP>b<STOP>c",
			stop: DefaultStopMarker,
			want: "a",
		},
		{
			name: "surrounding whitespace is trimmed",
			text: " \t Python (programming language)  <STOP>  ",
			stop: DefaultStopMarker,
			want: "Python (programming language)",
		},
		{
			name: "marker at the start gives empty query",
			text: "<STOP>dog",
			stop: DefaultStopMarker,
			want: "",
		},
		{
			name: "label without step number",
			text: "Action: Gerald Ford<STOP>",
			stop: DefaultStopMarker,
			want: "Gerald Ford",
		},
		{
			name: "label with extra spacing",
			text: "  Action  12 :  Tampico, Illinois <STOP>",
			stop: DefaultStopMarker,
			want: "Tampico, Illinois",
		},
		{
			name: "word starting with Action is not a label",
			text: "Actionable intelligence<STOP>",
			stop: DefaultStopMarker,
			want: "Actionable intelligence",
		},
		{
			name: "label without colon is kept",
			text: "Action 1 Rome<STOP>",
			stop: DefaultStopMarker,
			want: "Action 1 Rome",
		},
		{
			name: "empty text",
			text: "",
			stop: DefaultStopMarker,
			want: "",
		},
		{
			name: "empty marker keeps the first line",
			text: "Action 2: dog<STOP>\ncat",
			stop: "",
			want: "dog<STOP>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractQuery(tt.text, tt.stop))
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single newline", in: "\n", want: []string{""}},
		{name: "no terminator", in: "a", want: []string{"a"}},
		{name: "trailing terminator", in: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank line kept", in: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf is one break", in: "a\r\nb", want: []string{"a", "b"}},
		{name: "lone cr", in: "a\rb", want: []string{"a", "b"}},
		{name: "lf cr is two breaks", in: "a\n\rb", want: []string{"a", "", "b"}},
		{name: "unicode separators", in: "a\u2028b\u2029c\u0085d", want: []string{"a", "b", "c", "d"}},
		{name: "form feed and vertical tab", in: "a\fb\vc", want: []string{"a", "b", "c"}},
		{name: "multibyte text", in: "héllo\nwörld", want: []string{"héllo", "wörld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestFindAnswer(t *testing.T) {
	got, ok := FindAnswer("x Answer[a] Answer[b]")
	assert.True(t, ok)
	assert.Equal(t, "a", got)

	_, ok = FindAnswer("Answer: Python is great.")
	assert.False(t, ok)
}

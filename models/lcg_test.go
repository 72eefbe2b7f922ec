package models

import (
	"context"
	"errors"
	"testing"

	"github.com/rickchristie/textreact"
	"github.com/rickchristie/textreact/internal/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// ----------------------------------------------------------------------------
// Stub llms.Model
// ----------------------------------------------------------------------------

type stubModel struct {
	resp *llms.ContentResponse
	err  error

	messages [][]llms.MessageContent
	options  []llms.CallOptions
}

func (m *stubModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	options ...llms.CallOption,
) (*llms.ContentResponse, error) {
	m.messages = append(m.messages, messages)
	var opts llms.CallOptions
	for _, o := range options {
		o(&opts)
	}
	m.options = append(m.options, opts)
	return m.resp, m.err
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func textResponse(content string, info map[string]any) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content, GenerationInfo: info}},
	}
}

// ----------------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------------

func TestCompleter_SendsPromptAsSingleHumanMessage(t *testing.T) {
	model := &stubModel{resp: textResponse(" Thought\nAction 1: x<STOP>", nil)}

	got, err := NewCompleter(model).Complete(context.Background(), "Question: q\nThought 1:", false)

	require.NoError(t, err)
	assert.Equal(t, " Thought\nAction 1: x<STOP>", got)
	require.Len(t, model.messages, 1)
	require.Len(t, model.messages[0], 1)
	msg := model.messages[0][0]
	assert.Equal(t, llms.ChatMessageTypeHuman, msg.Role)
	require.Len(t, msg.Parts, 1)
	assert.Equal(t, llms.TextContent{Text: "Question: q\nThought 1:"}, msg.Parts[0])
}

func TestCompleter_DecodingOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		model := &stubModel{resp: textResponse("ok", nil)}
		_, err := NewCompleter(model).Complete(context.Background(), "p", false)
		require.NoError(t, err)

		opts := model.options[0]
		assert.Equal(t, 0.0, opts.Temperature)
		assert.Equal(t, 1024, opts.MaxTokens)
		assert.Equal(t, 0.8, opts.TopP)
		assert.Equal(t, 40, opts.TopK)
		assert.Empty(t, opts.StopWords)
	})

	t.Run("custom", func(t *testing.T) {
		model := &stubModel{resp: textResponse("ok", nil)}
		completer := NewCompleter(model).WithDecoding(textreact.DecodingConfig{
			Temperature:     0.7,
			MaxOutputTokens: 256,
			TopP:            0.95,
			StopWords:       []string{"\nObservation"},
		})
		_, err := completer.Complete(context.Background(), "p", false)
		require.NoError(t, err)

		opts := model.options[0]
		assert.Equal(t, 0.7, opts.Temperature)
		assert.Equal(t, 256, opts.MaxTokens)
		assert.Equal(t, 0.95, opts.TopP)
		assert.Equal(t, 0, opts.TopK, "zero top-k leaves the provider default")
		assert.Equal(t, []string{"\nObservation"}, opts.StopWords)
		assert.Equal(t, 0.7, completer.Decoding().Temperature)
	})
}

func TestCompleter_PublishesUsage(t *testing.T) {
	tests := []struct {
		name string
		info map[string]any
		want textreact.ModelUsageEvent
	}{
		{
			name: "openai keys",
			info: map[string]any{"PromptTokens": 12, "CompletionTokens": 3, "TotalTokens": 15},
			want: textreact.ModelUsageEvent{Model: "m", InputTokens: 12, OutputTokens: 3, TotalTokens: 15},
		},
		{
			name: "anthropic keys with computed total",
			info: map[string]any{"InputTokens": int64(7), "OutputTokens": float64(2)},
			want: textreact.ModelUsageEvent{Model: "m", InputTokens: 7, OutputTokens: 2, TotalTokens: 9},
		},
		{
			name: "google keys",
			info: map[string]any{"input_tokens": int32(4), "output_tokens": 1, "total_tokens": 5},
			want: textreact.ModelUsageEvent{Model: "m", InputTokens: 4, OutputTokens: 1, TotalTokens: 5},
		},
		{
			name: "no info",
			info: nil,
			want: textreact.ModelUsageEvent{Model: "m"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := tt.NewRecorder()
			model := &stubModel{resp: textResponse("ok", tc.info)}

			_, err := NewCompleter(model).WithModelName("m").WithEvents(recorder).
				Complete(context.Background(), "p", false)
			require.NoError(t, err)

			usage := tt.EventsOf[*textreact.ModelUsageEvent](recorder)
			require.Len(t, usage, 1)
			got := *usage[0]
			got.Duration = 0
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompleter_ActivityOnlyWhenRequested(t *testing.T) {
	recorder := tt.NewRecorder()
	model := &stubModel{resp: textResponse("response text", nil)}
	completer := NewCompleter(model).WithModelName("m").WithEvents(recorder)

	quiet, err := completer.Complete(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.Empty(t, tt.EventsOf[*textreact.ModelActivityEvent](recorder))

	loud, err := completer.Complete(context.Background(), "p2", true)
	require.NoError(t, err)
	assert.Equal(t, quiet, loud)

	activity := tt.EventsOf[*textreact.ModelActivityEvent](recorder)
	require.Len(t, activity, 1)
	assert.Equal(t, "m", activity[0].Model)
	assert.Equal(t, "p2", activity[0].Prompt)
	assert.Equal(t, "response text", activity[0].Response)
}

func TestCompleter_Errors(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		boom := errors.New("429 too many requests")
		recorder := tt.NewRecorder()
		model := &stubModel{err: boom}

		_, err := NewCompleter(model).WithEvents(recorder).Complete(context.Background(), "p", true)

		assert.ErrorIs(t, err, boom)
		usage := tt.EventsOf[*textreact.ModelUsageEvent](recorder)
		require.Len(t, usage, 1)
		assert.ErrorIs(t, usage[0].Error, boom)
		assert.Empty(t, tt.EventsOf[*textreact.ModelActivityEvent](recorder))
	})

	t.Run("no choices", func(t *testing.T) {
		model := &stubModel{resp: &llms.ContentResponse{}}
		_, err := NewCompleter(model).Complete(context.Background(), "p", false)
		assert.ErrorIs(t, err, textreact.ErrEmptyResponse)
	})

	t.Run("nil response", func(t *testing.T) {
		model := &stubModel{}
		_, err := NewCompleter(model).Complete(context.Background(), "p", false)
		assert.ErrorIs(t, err, textreact.ErrEmptyResponse)
	})
}

func TestCompleter_Unwrap(t *testing.T) {
	model := &stubModel{}
	completer := NewCompleter(model).WithModelName("name")
	assert.Same(t, model, completer.Unwrap())
	assert.Equal(t, "name", completer.ModelName())
}

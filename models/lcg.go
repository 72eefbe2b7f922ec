package models

import (
	"context"
	"time"

	"github.com/rickchristie/textreact"
	"github.com/tmc/langchaingo/llms"
)

// Completer wraps an llms.Model and implements textreact.Completer.
// Every prompt is sent as a single human message with the configured decoding
// options. Token usage is normalized across providers and published as a
// textreact.ModelUsageEvent when a publisher is set.
//
// Example usage:
//
//	llm, _ := openai.New(openai.WithToken(apiKey))
//	completer := models.NewCompleter(llm).
//	    WithModelName("gpt-4o-mini").
//	    WithEvents(registry)
//
//	text, err := completer.Complete(ctx, prompt, false)
type Completer struct {
	model     llms.Model
	modelName string // Optional model name for events
	decoding  textreact.DecodingConfig
	events    textreact.Publisher
}

// NewCompleter creates a new Completer wrapping the given llms.Model with
// textreact.DefaultDecodingConfig.
func NewCompleter(model llms.Model) *Completer {
	return &Completer{
		model:    model,
		decoding: textreact.DefaultDecodingConfig(),
	}
}

// WithModelName sets the model name used in events.
func (c *Completer) WithModelName(name string) *Completer {
	c.modelName = name
	return c
}

// WithDecoding sets the sampling parameters sent with every call.
func (c *Completer) WithDecoding(cfg textreact.DecodingConfig) *Completer {
	c.decoding = cfg
	return c
}

// WithEvents sets the publisher for usage and activity events.
func (c *Completer) WithEvents(events textreact.Publisher) *Completer {
	c.events = events
	return c
}

// ModelName returns the model name used in events.
func (c *Completer) ModelName() string {
	return c.modelName
}

// Decoding returns the sampling parameters sent with every call.
func (c *Completer) Decoding() textreact.DecodingConfig {
	return c.decoding
}

// Unwrap returns the underlying llms.Model.
func (c *Completer) Unwrap() llms.Model {
	return c.model
}

// Complete implements textreact.Completer.
//
// A provider response without choices is reported as
// textreact.ErrEmptyResponse. With showActivity the prompt and the response
// are published as a textreact.ModelActivityEvent; the returned text is the
// same either way.
func (c *Completer) Complete(ctx context.Context, prompt string, showActivity bool) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	startTime := time.Now()
	resp, err := c.model.GenerateContent(ctx, messages, c.callOptions()...)
	duration := time.Since(startTime)

	usage := extractUsage(resp)
	c.publish(&textreact.ModelUsageEvent{
		Model:        c.modelName,
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		TotalTokens:  usage.TotalTokens,
		Duration:     duration,
		Error:        err,
	})
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", textreact.ErrEmptyResponse
	}

	content := resp.Choices[0].Content
	if showActivity {
		c.publish(&textreact.ModelActivityEvent{
			Model:    c.modelName,
			Prompt:   prompt,
			Response: content,
		})
	}
	return content, nil
}

// callOptions converts the decoding configuration to LangChainGo call
// options. Zero token limits and top-k leave the provider defaults.
func (c *Completer) callOptions() []llms.CallOption {
	opts := []llms.CallOption{
		llms.WithTemperature(c.decoding.Temperature),
		llms.WithTopP(c.decoding.TopP),
	}
	if c.decoding.MaxOutputTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(c.decoding.MaxOutputTokens))
	}
	if c.decoding.TopK > 0 {
		opts = append(opts, llms.WithTopK(c.decoding.TopK))
	}
	if len(c.decoding.StopWords) > 0 {
		opts = append(opts, llms.WithStopWords(c.decoding.StopWords))
	}
	return opts
}

func (c *Completer) publish(event textreact.Event) {
	if c.events != nil {
		c.events.Publish(event)
	}
}

// Compile-time check that Completer implements textreact.Completer.
var _ textreact.Completer = (*Completer)(nil)

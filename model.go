package textreact

import (
	"context"
)

// Completer is the text completion service driven by the reasoning loop.
// It receives the whole prompt on every call; implementations must not keep
// conversation state between calls.
//
// showActivity asks the implementation to surface the prompt and response for
// human inspection (typically as an activity event). It must not change the
// returned completion.
//
// Errors are fatal for the caller: the reasoning loop does not retry.
type Completer interface {
	Complete(ctx context.Context, prompt string, showActivity bool) (string, error)
}

// CompleterFunc adapts a plain function to the [Completer] interface.
type CompleterFunc func(ctx context.Context, prompt string, showActivity bool) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string, showActivity bool) (string, error) {
	return f(ctx, prompt, showActivity)
}

// DecodingConfig holds the sampling parameters sent with every completion.
// A fixed configuration with zero temperature is what makes step replays
// reproducible against a real model.
type DecodingConfig struct {
	// Temperature controls randomness. 0 is greedy decoding.
	Temperature float64 `yaml:"temperature" json:"temperature"`

	// MaxOutputTokens caps the completion length. 0 leaves the provider default.
	MaxOutputTokens int `yaml:"max_output_tokens" json:"max_output_tokens"`

	// TopP is the nucleus sampling threshold.
	TopP float64 `yaml:"top_p" json:"top_p"`

	// TopK limits sampling to the K most likely tokens. 0 leaves the provider default.
	TopK int `yaml:"top_k" json:"top_k"`

	// StopWords, when set, end generation early.
	StopWords []string `yaml:"stop_words,omitempty" json:"stop_words,omitempty"`
}

// DefaultDecodingConfig returns greedy decoding with a 1024 token budget,
// top-p 0.8 and top-k 40.
func DefaultDecodingConfig() DecodingConfig {
	return DecodingConfig{
		Temperature:     0,
		MaxOutputTokens: 1024,
		TopP:            0.8,
		TopK:            40,
	}
}

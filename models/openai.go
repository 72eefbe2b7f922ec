package models

import (
	"fmt"

	"github.com/tmc/langchaingo/llms/openai"
)

// NewOpenAICompleter creates a Completer for any OpenAI-compatible chat
// completions endpoint. An empty baseURL uses the OpenAI API; set it to reach
// compatible providers (xAI, vLLM, Ollama, ...).
//
// Example:
//
//	completer, err := models.NewOpenAICompleter(
//	    "grok-4-1-fast-reasoning",
//	    os.Getenv("XAI_API_KEY"),
//	    "https://api.x.ai/v1",
//	)
func NewOpenAICompleter(model, token, baseURL string, opts ...openai.Option) (*Completer, error) {
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	baseOpts := []openai.Option{
		openai.WithModel(model),
	}
	if token != "" {
		baseOpts = append(baseOpts, openai.WithToken(token))
	}
	if baseURL != "" {
		baseOpts = append(baseOpts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(append(baseOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return NewCompleter(llm).WithModelName(model), nil
}

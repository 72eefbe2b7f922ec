package models

import (
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// GitHubModelsBaseURL is the base URL for the GitHub Models API.
	// The OpenAI-compatible chat completions endpoint is at
	// {baseURL}/chat/completions.
	GitHubModelsBaseURL = "https://models.github.ai/inference"

	// GitHubDefaultModel is used when no model name is given.
	GitHubDefaultModel = "openai/gpt-4o-mini"

	githubAPIVersion = "2022-11-28"
)

// githubHeaderTransport wraps an http.RoundTripper and injects
// GitHub-specific headers into every request.
type githubHeaderTransport struct {
	base http.RoundTripper
}

func (t *githubHeaderTransport) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	return t.base.RoundTrip(req)
}

// NewGitHubCompleter creates a Completer backed by the GitHub Models API.
//
// The token must be a GitHub Personal Access Token (fine-grained) with the
// models:read permission. Model names use the publisher/model format, for
// example "openai/gpt-4.1" or "meta/llama-4-scout". An empty baseURL uses
// [GitHubModelsBaseURL].
//
// Additional openai.Option values are applied after the defaults, so they can
// override them.
func NewGitHubCompleter(model, token, baseURL string, opts ...openai.Option) (*Completer, error) {
	if token == "" {
		return nil, fmt.Errorf(
			"github token is required: " +
				"create a fine-grained PAT with models:read " +
				"at https://github.com/settings/personal-access-tokens/new",
		)
	}
	if model == "" {
		model = GitHubDefaultModel
	}
	if baseURL == "" {
		baseURL = GitHubModelsBaseURL
	}

	baseOpts := []openai.Option{
		openai.WithBaseURL(baseURL),
		openai.WithToken(token),
		openai.WithModel(model),
		openai.WithHTTPClient(&githubHeaderTransport{
			base: http.DefaultTransport,
		}),
	}

	llm, err := openai.New(append(baseOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub Models client: %w", err)
	}

	return NewCompleter(llm).WithModelName(model), nil
}

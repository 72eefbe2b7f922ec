// Package cot sends a one-shot chain-of-thought prompt: a worked exemplar
// followed by the question, with the model asked to continue after "A:".
package cot

import (
	"context"
	"fmt"

	"github.com/rickchristie/textreact"
)

// AnswerCue ends every chain-of-thought prompt.
const AnswerCue = "\nA:"

// Generator produces a single chain-of-thought completion.
type Generator struct {
	completer    textreact.Completer
	showActivity bool
}

// New creates a Generator that calls completer.
func New(completer textreact.Completer) *Generator {
	return &Generator{completer: completer}
}

// WithShowActivity asks the completer to surface the prompt and response.
func (g *Generator) WithShowActivity(show bool) *Generator {
	g.showActivity = show
	return g
}

// Prompt returns the text sent for exemplar and question. The two are
// concatenated as given, so the exemplar should end with its own separator.
func Prompt(exemplar, question string) string {
	return exemplar + question + AnswerCue
}

// Generate returns the model's raw response to [Prompt].
// Completer failures are wrapped with textreact.ErrModelCall.
func (g *Generator) Generate(ctx context.Context, exemplar, question string) (string, error) {
	response, err := g.completer.Complete(ctx, Prompt(exemplar, question), g.showActivity)
	if err != nil {
		return "", fmt.Errorf("%w: %w", textreact.ErrModelCall, err)
	}
	return response, nil
}

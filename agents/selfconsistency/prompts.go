package selfconsistency

import (
	_ "embed"
)

// DefaultExemplar is a multi-step word problem whose worked answer ends with
// "The answer is 48.", followed by "Q: ".
//
//go:embed exemplar.txt
var DefaultExemplar string

// Prompt returns exemplar, question and the "\nA:" cue concatenated, the
// shape [ExtractAnswer] expects responses to.
func Prompt(exemplar, question string) string {
	return exemplar + question + "\nA:"
}

package cot

import (
	_ "embed"
)

// DefaultExemplar is a one-shot arithmetic example ending with "Q: ", ready
// for the question to be appended.
//
//go:embed exemplar.txt
var DefaultExemplar string

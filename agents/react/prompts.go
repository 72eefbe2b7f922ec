package react

import (
	_ "embed"
)

// DefaultContext instructs the model to alternate thoughts, Wikipedia lookup
// actions ending in "<STOP>", and observations, and to give its final answer
// as Answer[...].
//
//go:embed context.txt
var DefaultContext string

// DefaultExemplar is a worked two-lookup example ending in Answer[...].
//
//go:embed exemplar.txt
var DefaultExemplar string

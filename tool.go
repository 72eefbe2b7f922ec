package textreact

import (
	"context"
)

// Lookup is the text snippet retrieval service the reasoning loop calls when
// the model asks for an action.
//
// Implementations return a snippet already truncated to their character
// budget. They are expected to try one relaxed (fuzzy) resolution on their
// own before giving up, and to report a final miss with an error wrapping
// [ErrLookupNotFound]. The reasoning loop treats every lookup error as fatal.
type Lookup interface {
	Lookup(ctx context.Context, query string) (string, error)
}

// LookupFunc adapts a plain function to the [Lookup] interface.
type LookupFunc func(ctx context.Context, query string) (string, error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, query string) (string, error) {
	return f(ctx, query)
}

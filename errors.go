package textreact

import "errors"

var (
	// ErrModelCall wraps any failure returned by a [Completer].
	ErrModelCall = errors.New("textreact: model call failed")

	// ErrLookup wraps any failure returned by a [Lookup].
	ErrLookup = errors.New("textreact: lookup failed")

	// ErrLookupNotFound is returned by lookups when neither the exact nor the
	// relaxed resolution found an entry.
	ErrLookupNotFound = errors.New("textreact: lookup entry not found")

	// ErrCanceled is returned when the context is done before a step starts.
	ErrCanceled = errors.New("textreact: run canceled")

	// ErrEmptyResponse is returned by completers when the provider returned no
	// choices at all.
	ErrEmptyResponse = errors.New("textreact: model returned no choices")
)

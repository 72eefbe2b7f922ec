package tt

import (
	"context"
	"sync"

	"github.com/rickchristie/textreact"
)

// -----------------------------------------------------------------------------
// MockCompleter - implements textreact.Completer
// -----------------------------------------------------------------------------

// MockCompleter is a configurable mock that implements textreact.Completer.
// Responses and errors are consumed in call order. Once the queue is empty
// every further call returns the fallback response.
type MockCompleter struct {
	mu        sync.Mutex
	responses []string
	errors    []error
	fallback  string
	callCount int

	// CapturedPrompts stores the prompt of every Complete call.
	CapturedPrompts []string

	// CapturedActivity stores the showActivity flag of every Complete call.
	CapturedActivity []bool
}

// NewMockCompleter creates a MockCompleter with the given queued responses.
func NewMockCompleter(responses ...string) *MockCompleter {
	return &MockCompleter{responses: responses}
}

// AddResponse queues a response for the next unanswered call.
func (m *MockCompleter) AddResponse(content string) *MockCompleter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, content)
	return m
}

// AddError queues an error for the next unanswered call.
func (m *MockCompleter) AddError(err error) *MockCompleter {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Extend responses slice if needed to match errors length
	for len(m.responses) <= len(m.errors) {
		m.responses = append(m.responses, "")
	}
	m.errors = append(m.errors, err)
	return m
}

// WithFallback sets the response returned once the queue is exhausted.
func (m *MockCompleter) WithFallback(content string) *MockCompleter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = content
	return m
}

// CallCount returns the number of times Complete has been called.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Complete implements textreact.Completer.
func (m *MockCompleter) Complete(_ context.Context, prompt string, showActivity bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.callCount
	m.callCount++
	m.CapturedPrompts = append(m.CapturedPrompts, prompt)
	m.CapturedActivity = append(m.CapturedActivity, showActivity)

	if idx < len(m.errors) && m.errors[idx] != nil {
		return "", m.errors[idx]
	}
	if idx < len(m.responses) {
		return m.responses[idx], nil
	}
	return m.fallback, nil
}

// -----------------------------------------------------------------------------
// MockLookup - implements textreact.Lookup
// -----------------------------------------------------------------------------

// MockLookup is a configurable mock that implements textreact.Lookup.
// Snippets are keyed by query; unknown queries return textreact.ErrLookupNotFound
// unless a default snippet is set.
type MockLookup struct {
	mu       sync.Mutex
	snippets map[string]string
	errors   map[string]error
	fallback *string

	// CapturedQueries stores the query of every Lookup call.
	CapturedQueries []string
}

// NewMockLookup creates an empty MockLookup.
func NewMockLookup() *MockLookup {
	return &MockLookup{
		snippets: make(map[string]string),
		errors:   make(map[string]error),
	}
}

// WithSnippet registers the snippet returned for query.
func (m *MockLookup) WithSnippet(query, snippet string) *MockLookup {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snippets[query] = snippet
	return m
}

// WithError registers the error returned for query.
func (m *MockLookup) WithError(query string, err error) *MockLookup {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[query] = err
	return m
}

// WithDefault sets the snippet returned for queries with no registration.
func (m *MockLookup) WithDefault(snippet string) *MockLookup {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = &snippet
	return m
}

// CallCount returns the number of times Lookup has been called.
func (m *MockLookup) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CapturedQueries)
}

// Lookup implements textreact.Lookup.
func (m *MockLookup) Lookup(_ context.Context, query string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CapturedQueries = append(m.CapturedQueries, query)
	if err, ok := m.errors[query]; ok {
		return "", err
	}
	if snippet, ok := m.snippets[query]; ok {
		return snippet, nil
	}
	if m.fallback != nil {
		return *m.fallback, nil
	}
	return "", textreact.ErrLookupNotFound
}

// Compile-time checks that the mocks implement the collaborator interfaces.
var (
	_ textreact.Completer = (*MockCompleter)(nil)
	_ textreact.Lookup    = (*MockLookup)(nil)
)

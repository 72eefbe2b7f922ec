package textreact

// Standard key prefix for all textreact stat keys.
// Use your own prefix (e.g., "myapp:") for custom counters.
const KeyPrefix = "textreact:"

// Run tracking keys.
const (
	KeyRuns          = "textreact:runs"
	KeyRunsEndedWith = "textreact:runs_ended_with:" // + TerminationReason
	KeySteps         = "textreact:steps"
)

// Model call tracking keys.
const (
	KeyModelCalls      = "textreact:model_calls"
	KeyModelErrors     = "textreact:model_errors"
	KeyInputTokens     = "textreact:input_tokens"
	KeyInputTokensFor  = "textreact:input_tokens:" // + model name
	KeyOutputTokens    = "textreact:output_tokens"
	KeyOutputTokensFor = "textreact:output_tokens:" // + model name
)

// Lookup tracking keys.
const (
	KeyLookups      = "textreact:lookups"
	KeyLookupErrors = "textreact:lookup_errors"
)

// Parse outcome tracking keys.
const (
	KeyParsedAs = "textreact:parsed_as:" // + StepKind
)

// Sampling keys.
const (
	KeySamples = "textreact:samples"
)

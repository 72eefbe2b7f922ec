package loggers

import (
	"github.com/rickchristie/textreact"
	"go.uber.org/zap"
)

// Zap logs events to a zap.Logger. Lifecycle events are logged at info level,
// per-call events at debug level, and failures at warn or error level.
type Zap struct {
	logger *zap.Logger
}

// NewZap creates a Zap subscriber. A nil logger logs nothing.
func NewZap(logger *zap.Logger) *Zap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Zap{logger: logger}
}

// OnRunStarted implements textreact.RunStartedSubscriber.
func (z *Zap) OnRunStarted(event *textreact.RunStartedEvent) {
	z.logger.Info("Run started",
		zap.String("event", event.EventName()),
		zap.String("run_id", event.RunID),
		zap.String("question", event.Question),
		zap.Int("max_steps", event.MaxSteps),
	)
}

// OnRunFinished implements textreact.RunFinishedSubscriber.
func (z *Zap) OnRunFinished(event *textreact.RunFinishedEvent) {
	fields := []zap.Field{
		zap.String("event", event.EventName()),
		zap.String("run_id", event.RunID),
		zap.String("reason", string(event.Reason)),
		zap.String("answer", event.Answer),
		zap.Int("model_calls", event.ModelCalls),
		zap.Int("lookups", event.Lookups),
		zap.Duration("duration", event.Duration),
	}
	if event.Error != nil {
		z.logger.Error("Run failed", append(fields, zap.Error(event.Error))...)
		return
	}
	z.logger.Info("Run finished", fields...)
}

// OnStepStarted implements textreact.StepStartedSubscriber.
func (z *Zap) OnStepStarted(event *textreact.StepStartedEvent) {
	z.logger.Debug("Step started",
		zap.String("run_id", event.RunID),
		zap.Int("step", event.Step),
	)
}

// OnModelCalled implements textreact.ModelCalledSubscriber.
func (z *Zap) OnModelCalled(event *textreact.ModelCalledEvent) {
	fields := []zap.Field{
		zap.String("run_id", event.RunID),
		zap.Int("step", event.Step),
		zap.Int("prompt_chars", len(event.Prompt)),
		zap.Duration("duration", event.Duration),
	}
	if event.Error != nil {
		z.logger.Warn("Model call failed", append(fields, zap.Error(event.Error))...)
		return
	}
	z.logger.Debug("Model called", append(fields, zap.String("response", event.Response))...)
}

// OnStepParsed implements textreact.StepParsedSubscriber.
func (z *Zap) OnStepParsed(event *textreact.StepParsedEvent) {
	z.logger.Debug("Step parsed",
		zap.String("run_id", event.RunID),
		zap.Int("step", event.Step),
		zap.String("kind", string(event.Kind)),
		zap.String("answer", event.Answer),
		zap.String("query", event.Query),
	)
}

// OnLookup implements textreact.LookupSubscriber.
func (z *Zap) OnLookup(event *textreact.LookupEvent) {
	fields := []zap.Field{
		zap.String("run_id", event.RunID),
		zap.Int("step", event.Step),
		zap.String("query", event.Query),
		zap.Duration("duration", event.Duration),
	}
	if event.Error != nil {
		z.logger.Warn("Lookup failed", append(fields, zap.Error(event.Error))...)
		return
	}
	z.logger.Debug("Lookup", append(fields, zap.Int("snippet_chars", len([]rune(event.Snippet))))...)
}

// OnModelUsage implements textreact.ModelUsageSubscriber.
func (z *Zap) OnModelUsage(event *textreact.ModelUsageEvent) {
	z.logger.Debug("Model usage",
		zap.String("model", event.Model),
		zap.Int("input_tokens", event.InputTokens),
		zap.Int("output_tokens", event.OutputTokens),
		zap.Int("total_tokens", event.TotalTokens),
		zap.Duration("duration", event.Duration),
	)
}

// OnSample implements textreact.SampleSubscriber.
func (z *Zap) OnSample(event *textreact.SampleEvent) {
	z.logger.Debug("Sample",
		zap.Int("index", event.Index),
		zap.String("answer", event.Answer),
	)
}

var (
	_ textreact.RunStartedSubscriber  = (*Zap)(nil)
	_ textreact.RunFinishedSubscriber = (*Zap)(nil)
	_ textreact.StepStartedSubscriber = (*Zap)(nil)
	_ textreact.ModelCalledSubscriber = (*Zap)(nil)
	_ textreact.StepParsedSubscriber  = (*Zap)(nil)
	_ textreact.LookupSubscriber      = (*Zap)(nil)
	_ textreact.ModelUsageSubscriber  = (*Zap)(nil)
	_ textreact.SampleSubscriber      = (*Zap)(nil)
)

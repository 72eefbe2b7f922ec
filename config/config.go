// Package config loads the textreact configuration file.
//
// A configuration is a YAML document with five sections:
//
//	model:
//	  provider: github        # github or openai
//	  name: openai/gpt-4o-mini
//	  base_url: ""            # provider default when empty
//	  token_env: GITHUB_TOKEN # environment variable holding the API token
//	  decoding:
//	    temperature: 0
//	    max_output_tokens: 1024
//	    top_p: 0.8
//	    top_k: 40
//	lookup:
//	  base_url: https://en.wikipedia.org/w/api.php
//	  return_chars: 1000
//	  timeout: 30s
//	react:
//	  max_steps: 7
//	  stop_marker: <STOP>
//	  show_activity: false
//	consistency:
//	  runs: 40
//	  concurrency: 4
//	log:
//	  level: info
//	  format: console
//
// Every key is optional. The document is checked against a JSON Schema
// before it is applied over [Default], so unknown keys and wrongly typed
// values are reported instead of silently ignored.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rickchristie/textreact"
	"github.com/rickchristie/textreact/agents/react"
	"github.com/rickchristie/textreact/agents/selfconsistency"
	"github.com/rickchristie/textreact/lookup/wikipedia"
	"github.com/rickchristie/textreact/models"
	"github.com/rickchristie/textreact/parser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "textreact.yaml"

// DefaultEnvFile is the dotenv file loaded by [LoadEnv] when no file is given.
const DefaultEnvFile = ".env"

// Model providers.
const (
	ProviderGitHub = "github"
	ProviderOpenAI = "openai"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

var (
	// ErrInvalidConfig is returned when a document fails schema or value checks.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrMissingToken is returned when the model token variable is unset.
	ErrMissingToken = errors.New("config: model token not set")
)

// Config is the complete textreact configuration.
type Config struct {
	Model       ModelConfig       `yaml:"model"`
	Lookup      wikipedia.Config  `yaml:"lookup"`
	React       ReactConfig       `yaml:"react"`
	Consistency ConsistencyConfig `yaml:"consistency"`
	Log         LogConfig         `yaml:"log"`
}

// ModelConfig selects and tunes the completion model.
type ModelConfig struct {
	// Provider is ProviderGitHub or ProviderOpenAI.
	Provider string `yaml:"provider"`

	// Name is the provider's model name.
	Name string `yaml:"name"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `yaml:"base_url"`

	// TokenEnv names the environment variable holding the API token.
	// Empty uses the provider's conventional variable.
	TokenEnv string `yaml:"token_env"`

	Decoding textreact.DecodingConfig `yaml:"decoding"`
}

// ReactConfig configures the reasoning loop.
type ReactConfig struct {
	MaxSteps     int    `yaml:"max_steps"`
	StopMarker   string `yaml:"stop_marker"`
	ShowActivity bool   `yaml:"show_activity"`
}

// ConsistencyConfig configures self-consistency sampling.
type ConsistencyConfig struct {
	Runs        int `yaml:"runs"`
	Concurrency int `yaml:"concurrency"`
}

// LogConfig configures the zap logger built by [Config.Logger].
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present: GitHub
// Models with greedy decoding, English Wikipedia, a 7 step budget.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Provider: ProviderGitHub,
			Name:     models.GitHubDefaultModel,
			Decoding: textreact.DefaultDecodingConfig(),
		},
		Lookup: wikipedia.DefaultConfig(),
		React: ReactConfig{
			MaxSteps:   react.DefaultMaxSteps,
			StopMarker: parser.DefaultStopMarker,
		},
		Consistency: ConsistencyConfig{
			Runs:        selfconsistency.DefaultRuns,
			Concurrency: selfconsistency.DefaultConcurrency,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}

// Load reads the configuration file at path. A missing file yields
// [Default].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over [Default] and validates the result.
func Parse(data []byte) (*Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := documentSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads dotenv files into the process environment. Variables that are
// already set keep their values. Files that do not exist are skipped; with no
// arguments [DefaultEnvFile] is tried.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to stat env file: %w", err)
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}
	return nil
}

// Validate checks value constraints the schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	switch c.Model.Provider {
	case ProviderGitHub, ProviderOpenAI:
	default:
		errs = append(errs, fmt.Errorf("unknown model provider %q", c.Model.Provider))
	}
	if c.Model.Provider == ProviderOpenAI && c.Model.Name == "" {
		errs = append(errs, errors.New("model name is required for the openai provider"))
	}
	if c.React.MaxSteps < 1 {
		errs = append(errs, fmt.Errorf("react.max_steps must be at least 1, got %d", c.React.MaxSteps))
	}
	if c.Lookup.ReturnChars < 0 {
		errs = append(errs, fmt.Errorf("lookup.return_chars must not be negative, got %d", c.Lookup.ReturnChars))
	}
	if c.Lookup.Timeout < 0 {
		errs = append(errs, fmt.Errorf("lookup.timeout must not be negative, got %s", c.Lookup.Timeout))
	}
	if c.Consistency.Runs < 1 {
		errs = append(errs, fmt.Errorf("consistency.runs must be at least 1, got %d", c.Consistency.Runs))
	}
	if c.Consistency.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("consistency.concurrency must be at least 1, got %d", c.Consistency.Concurrency))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// TokenEnvName returns the name of the environment variable holding the model
// token.
func (m ModelConfig) TokenEnvName() string {
	if m.TokenEnv != "" {
		return m.TokenEnv
	}
	if m.Provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GITHUB_TOKEN"
}

// Token reads the model token from the environment.
func (m ModelConfig) Token() (string, error) {
	name := m.TokenEnvName()
	token := os.Getenv(name)
	if token == "" {
		return "", fmt.Errorf("%w: set %s", ErrMissingToken, name)
	}
	return token, nil
}

// ----------------------------------------------------------------------------
// Component factories
// ----------------------------------------------------------------------------

// NewCompleter builds the configured model client. events may be nil.
func (c *Config) NewCompleter(events textreact.Publisher) (*models.Completer, error) {
	token, err := c.Model.Token()
	if err != nil {
		return nil, err
	}

	var completer *models.Completer
	switch c.Model.Provider {
	case ProviderOpenAI:
		completer, err = models.NewOpenAICompleter(c.Model.Name, token, c.Model.BaseURL)
	case ProviderGitHub:
		completer, err = models.NewGitHubCompleter(c.Model.Name, token, c.Model.BaseURL)
	default:
		err = fmt.Errorf("%w: unknown model provider %q", ErrInvalidConfig, c.Model.Provider)
	}
	if err != nil {
		return nil, err
	}

	completer.WithDecoding(c.Model.Decoding)
	if events != nil {
		completer.WithEvents(events)
	}
	return completer, nil
}

// NewLookup builds the Wikipedia lookup.
func (c *Config) NewLookup() *wikipedia.Lookup {
	return wikipedia.New(c.Lookup)
}

// NewAgent builds a reasoning loop over completer and lookup. events may be nil.
func (c *Config) NewAgent(completer textreact.Completer, lookup textreact.Lookup, events textreact.Publisher) *react.Agent {
	agent := react.NewAgent(completer, lookup).
		WithMaxSteps(c.React.MaxSteps).
		WithStopMarker(c.React.StopMarker).
		WithShowActivity(c.React.ShowActivity)
	if events != nil {
		agent.WithEvents(events)
	}
	return agent
}

// NewRunner builds a self-consistency runner over completer. events may be nil.
func (c *Config) NewRunner(completer textreact.Completer, events textreact.Publisher) *selfconsistency.Runner {
	runner := selfconsistency.New(completer).
		WithRuns(c.Consistency.Runs).
		WithConcurrency(c.Consistency.Concurrency)
	if events != nil {
		runner.WithEvents(events)
	}
	return runner
}

// Logger builds a zap logger from the log section. verbose forces debug level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Log.Format
	zc.OutputPaths = []string{"stderr"}
	if c.Log.Format == LogFormatConsole {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zc.DisableStacktrace = true
	}
	return zc.Build()
}

package config

import (
	"github.com/rickchristie/textreact/schema"
)

// durationPattern matches the strings time.ParseDuration accepts.
const durationPattern = `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`

var documentSchema = schema.MustCompile(schema.Strict(schema.Object(map[string]*schema.Property{
	"model": schema.Nested("Completion model", map[string]*schema.Property{
		"provider":  schema.String("Model provider").Enum(ProviderGitHub, ProviderOpenAI),
		"name":      schema.String("Provider model name"),
		"base_url":  schema.String("Provider endpoint override"),
		"token_env": schema.String("Environment variable holding the API token"),
		"decoding": schema.Nested("Sampling parameters", map[string]*schema.Property{
			"temperature":       schema.Number("Sampling temperature").Min(0).Max(2),
			"max_output_tokens": schema.Integer("Completion token cap, 0 for provider default").Min(0),
			"top_p":             schema.Number("Nucleus sampling threshold").Min(0).Max(1),
			"top_k":             schema.Integer("Top-k sampling, 0 for provider default").Min(0),
			"stop_words":        schema.Array("Stop sequences", map[string]any{"type": "string"}),
		}),
	}),
	"lookup": schema.Nested("Wikipedia lookup", map[string]*schema.Property{
		"base_url":     schema.String("MediaWiki api.php endpoint").MinLength(1),
		"user_agent":   schema.String("User-Agent header").MinLength(1),
		"return_chars": schema.Integer("Snippet length in characters").Min(0),
		"timeout":      schema.String("Per-request timeout").Pattern(durationPattern),
	}),
	"react": schema.Nested("Reasoning loop", map[string]*schema.Property{
		"max_steps":     schema.Integer("Step budget").Min(1).Default(7),
		"stop_marker":   schema.String("Text ending the query on an action line"),
		"show_activity": schema.Boolean("Surface prompts and responses"),
	}),
	"consistency": schema.Nested("Self-consistency sampling", map[string]*schema.Property{
		"runs":        schema.Integer("Number of samples").Min(1),
		"concurrency": schema.Integer("Samples in flight").Min(1),
	}),
	"log": schema.Nested("Logging", map[string]*schema.Property{
		"level":  schema.String("Minimum level").Enum("debug", "info", "warn", "error"),
		"format": schema.String("Encoder").Enum(LogFormatConsole, LogFormatJSON),
	}),
})))

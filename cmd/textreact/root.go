package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rickchristie/textreact"
	"github.com/rickchristie/textreact/config"
	"github.com/rickchristie/textreact/events"
	"github.com/rickchristie/textreact/loggers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath     string
	envFiles       []string
	verbose        bool
	transcriptPath string

	cfg      *config.Config
	logger   *zap.Logger
	stats    *textreact.Stats
	registry *events.Registry
	activity *loggers.Activity
	closers  []io.Closer

	newCompleter func(cfg *config.Config, events textreact.Publisher) (textreact.Completer, error)
	newLookup    func(cfg *config.Config) textreact.Lookup
}

func newApp() *app {
	return &app{
		newCompleter: func(cfg *config.Config, events textreact.Publisher) (textreact.Completer, error) {
			completer, err := cfg.NewCompleter(events)
			if err != nil {
				return nil, err
			}
			return completer, nil
		},
		newLookup: func(cfg *config.Config) textreact.Lookup {
			return cfg.NewLookup()
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "textreact",
		Short: "ReAct question answering over a text completion model and Wikipedia",
		Long: `textreact answers questions by letting a language model alternate
thoughts, Wikipedia lookups and observations until it states Answer[...].

It also runs the two prompting baselines the loop is compared against:
one-shot chain of thought, and self-consistency sampling.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", config.DefaultPath, "configuration file")
	flags.StringSliceVar(&a.envFiles, "env", []string{config.DefaultEnvFile}, "dotenv files to load")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&a.transcriptPath, "transcript", "", "append a YAML record of every run to this file")

	root.AddCommand(
		newAskCmd(a),
		newCoTCmd(a),
		newConsistencyCmd(a),
		newChatCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger and event registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(a.envFiles...); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		a.logger, err = cfg.Logger(a.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	a.stats = textreact.NewStats()
	a.activity = loggers.NewActivity(cmd.OutOrStdout())
	a.registry = events.NewRegistry().
		Subscribe(loggers.NewZap(a.logger)).
		Subscribe(a.activity).
		Subscribe(a.stats)

	if a.transcriptPath != "" {
		f, err := os.OpenFile(a.transcriptPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open transcript file: %w", err)
		}
		a.closers = append(a.closers, f)
		a.registry.Subscribe(loggers.NewYAML(f))
	}

	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("provider", cfg.Model.Provider),
		zap.String("model", cfg.Model.Name),
	)
	return nil
}

func (a *app) teardown() {
	if a.logger != nil {
		if a.stats != nil {
			a.logger.Debug("session stats", zap.Any("counters", a.stats.Snapshot()))
		}
		_ = a.logger.Sync()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func (a *app) completer() (textreact.Completer, error) {
	return a.newCompleter(a.cfg, a.registry)
}

// readPrompt returns the contents of path, or fallback when path is empty.
func readPrompt(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file: %w", err)
	}
	return string(data), nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rickchristie/textreact/agents/selfconsistency"
	"github.com/spf13/cobra"
)

const maxBarWidth = 40

func newConsistencyCmd(a *app) *cobra.Command {
	var (
		exemplarFile string
		runs         int
		concurrency  int
		showSamples  bool
	)
	cmd := &cobra.Command{
		Use:   "consistency [question]",
		Short: "Sample a chain-of-thought prompt many times and tally the answers",
		Long: `Samples the same prompt repeatedly, extracts the text after "The answer is"
from every response and prints how often each answer occurred.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exemplar, err := readPrompt(exemplarFile, selfconsistency.DefaultExemplar)
			if err != nil {
				return err
			}
			completer, err := a.completer()
			if err != nil {
				return err
			}

			a.activity.WithSamples(showSamples)
			runner := a.cfg.NewRunner(completer, a.registry)
			if cmd.Flags().Changed("runs") {
				runner.WithRuns(runs)
			}
			if cmd.Flags().Changed("concurrency") {
				runner.WithConcurrency(concurrency)
			}

			tally, err := runner.Run(cmd.Context(), selfconsistency.Prompt(exemplar, strings.Join(args, " ")))
			if err != nil {
				return err
			}
			printTally(cmd.OutOrStdout(), tally)
			return nil
		},
	}
	cmd.Flags().StringVar(&exemplarFile, "exemplar-file", "", "worked example ending where the question goes")
	cmd.Flags().IntVar(&runs, "runs", selfconsistency.DefaultRuns, "number of samples")
	cmd.Flags().IntVar(&concurrency, "concurrency", selfconsistency.DefaultConcurrency, "samples in flight")
	cmd.Flags().BoolVar(&showSamples, "show-samples", false, "print every response as it arrives")
	return cmd
}

// printTally writes the answer distribution as a bar chart, most frequent
// answer first.
func printTally(w io.Writer, tally *selfconsistency.Tally) {
	counts := tally.MostCommon()
	if len(counts) == 0 {
		fmt.Fprintf(w, "%sNo samples.%s\n", colorYellow, colorReset)
		return
	}

	width := 0
	for _, c := range counts {
		width = max(width, len(c.Answer))
	}
	top := counts[0].Count

	fmt.Fprintf(w, "%sAnswer distribution (%d samples):%s\n", colorBold, len(tally.Responses), colorReset)
	for _, c := range counts {
		bar := strings.Repeat("#", max(1, c.Count*maxBarWidth/top))
		fmt.Fprintf(w, "  %-*s %4d %s%s%s\n", width, c.Answer, c.Count, colorCyan, bar, colorReset)
	}

	best, n, _ := tally.Best()
	fmt.Fprintf(w, "%sMost common answer:%s %s (%d/%d)\n", colorGreen, colorReset, best, n, len(tally.Responses))
}

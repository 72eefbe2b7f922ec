package main

import (
	"fmt"
	"strings"

	"github.com/rickchristie/textreact/agents/cot"
	"github.com/spf13/cobra"
)

func newCoTCmd(a *app) *cobra.Command {
	var (
		exemplarFile string
		showActivity bool
	)
	cmd := &cobra.Command{
		Use:   "cot [question]",
		Short: "Send a one-shot chain-of-thought prompt",
		Long: `Sends the exemplar followed by the question and an "A:" cue, and
prints the model's reasoning as returned.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exemplar, err := readPrompt(exemplarFile, cot.DefaultExemplar)
			if err != nil {
				return err
			}
			completer, err := a.completer()
			if err != nil {
				return err
			}
			response, err := cot.New(completer).
				WithShowActivity(showActivity).
				Generate(cmd.Context(), exemplar, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sChain of Thought Response:%s\n%s\n", colorGreen, colorReset, response)
			return nil
		},
	}
	cmd.Flags().StringVar(&exemplarFile, "exemplar-file", "", "worked example ending where the question goes")
	cmd.Flags().BoolVar(&showActivity, "show-activity", false, "print the prompt and response")
	return cmd
}

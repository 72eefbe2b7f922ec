package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rickchristie/textreact/agents/react"
	"github.com/spf13/cobra"
)

type promptFlags struct {
	contextFile  string
	exemplarFile string
	maxSteps     int
	showActivity bool
}

func (f *promptFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.contextFile, "context-file", "", "instruction block placed at the top of the prompt")
	cmd.Flags().StringVar(&f.exemplarFile, "exemplar-file", "", "worked example shown before the question")
	cmd.Flags().IntVar(&f.maxSteps, "max-steps", 0, "step budget (config value when 0)")
	cmd.Flags().BoolVar(&f.showActivity, "show-activity", false, "print every prompt and response")
}

// request builds a run request for question from the flags, falling back to
// the built-in context and exemplar.
func (f *promptFlags) request(question string) (react.Request, error) {
	contextText, err := readPrompt(f.contextFile, react.DefaultContext)
	if err != nil {
		return react.Request{}, err
	}
	exemplar, err := readPrompt(f.exemplarFile, react.DefaultExemplar)
	if err != nil {
		return react.Request{}, err
	}
	return react.Request{
		Context:      contextText,
		Exemplar:     exemplar,
		Question:     question,
		MaxSteps:     f.maxSteps,
		ShowActivity: f.showActivity,
	}, nil
}

func newAskCmd(a *app) *cobra.Command {
	var flags promptFlags
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question with the ReAct loop",
		Long: `Runs the think, act, observe loop until the model states Answer[...],
writes a malformed step, or the step budget runs out.

Example:
  textreact ask --show-activity "Who was born first, Ronald Reagan or Gerald Ford?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(strings.Join(args, " "))
			if err != nil {
				return err
			}
			agent, err := a.agent()
			if err != nil {
				return err
			}
			res, err := agent.Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) agent() (*react.Agent, error) {
	completer, err := a.completer()
	if err != nil {
		return nil, err
	}
	return a.cfg.NewAgent(completer, a.newLookup(a.cfg), a.registry), nil
}

func printResult(w io.Writer, res *react.Result) {
	if res.Resolved() {
		fmt.Fprintf(w, "%sReAct Answer:%s\n%s\n", colorGreen, colorReset, res.Answer)
		return
	}
	fmt.Fprintf(w, "%sNo answer (%s) after %d steps and %d lookups.%s\n",
		colorYellow, res.Reason, res.Steps, res.Lookups, colorReset)
}

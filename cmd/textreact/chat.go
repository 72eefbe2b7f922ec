package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rickchristie/textreact/agents/react"
	"github.com/spf13/cobra"
)

// lineReader is the part of *readline.Instance the chat loop uses.
type lineReader interface {
	Readline() (string, error)
}

func newChatCmd(a *app) *cobra.Command {
	var flags promptFlags
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask questions interactively",
		Long: `Reads one question per line and answers each with a fresh ReAct run.
Type 'exit', or press Ctrl-D or Ctrl-C, to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, err := a.agent()
			if err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          colorCyan + "Question: " + colorReset,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdout:          cmd.OutOrStdout(),
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			return runChat(cmd.Context(), cmd.OutOrStdout(), rl, agent, &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runChat(ctx context.Context, w io.Writer, rl lineReader, agent *react.Agent, flags *promptFlags) error {
	fmt.Fprintf(w, "%s%sINTERACTIVE CHAT%s\n", colorBold, colorYellow, colorReset)
	fmt.Fprintf(w, "%sType a question and press Enter. Type 'exit' to end the chat.%s\n\n", colorDim, colorReset)

	for {
		input, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Fprintf(w, "\n%sGoodbye!%s\n", colorGreen, colorReset)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Fprintf(w, "%sGoodbye!%s\n", colorGreen, colorReset)
			return nil
		}

		req, err := flags.request(input)
		if err != nil {
			return err
		}
		res, err := agent.Run(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(w, "%sError: %v%s\n", colorRed, err, colorReset)
			continue
		}
		printResult(w, res)
		fmt.Fprintf(w, "%s%s%s\n", colorDim, strings.Repeat("-", 60), colorReset)
	}
}

// Command textreact answers questions with a ReAct loop over a completion
// model and Wikipedia, and runs the chain-of-thought and self-consistency
// prompting experiments.
//
// Usage:
//
//	textreact ask "Who was born first, Ronald Reagan or Gerald Ford?"
//	textreact cot "She wrote 3 briefs this week. How long did it take?"
//	textreact consistency --runs 10 "How many units does megacorp produce?"
//	textreact chat
//
// Configuration is read from textreact.yaml and credentials from the
// environment, after loading .env.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(surveyPrompter{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap-cli: %v\n", err)
		stop()
		os.Exit(1)
	}
}

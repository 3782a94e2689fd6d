package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tokenbox/cmd/tokenbox/commands"
)

func main() {
	// Ctrl-C abandons a pending exchange like a timeout would.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

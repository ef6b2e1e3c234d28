package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/savaki/artifact-notifier/cmd/artifact-notifier/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

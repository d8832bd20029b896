package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"msecli/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

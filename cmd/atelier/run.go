package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

// application is the part of *fx.App used by run.
type application interface {
	Err() error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

func run(ctx context.Context, app application) int {
	return runWithOutput(ctx, app, os.Stderr)
}

func runWithOutput(ctx context.Context, app application, stderr io.Writer) int {
	if err := app.Err(); err != nil {
		fmt.Fprintf(stderr, "failed to build application: %v\n", err)
		return 1
	}
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start application: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "failed to stop application: %v\n", err)
		return 1
	}
	return 0
}

// Command atelier serves fitting-appointment checkout and the workshop status
// board.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		fx.StartTimeout(30*time.Second),
		di.Module(),
	)

	code := run(ctx, app)
	stop()
	os.Exit(code)
}

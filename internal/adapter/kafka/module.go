package kafka

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/worker"
)

// Module exposes the outbox publisher to the fx graph.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// newPublisher returns a nil publisher when no brokers are configured, which
// leaves the outbox relay disabled. The writer is closed after the relay stops.
func newPublisher(p publisherParams) (worker.Publisher, error) {
	if len(p.Config.KafkaBrokers) == 0 {
		return nil, nil
	}
	pub, err := NewPublisher(p.Config.KafkaBrokers)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			p.Logger.Info("closing kafka publisher")
			return pub.Close()
		},
	})
	p.Logger.Info("kafka publisher configured", slog.Any("brokers", p.Config.KafkaBrokers))
	return pub, nil
}

package telemetry

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/config"
)

// Module installs tracing at startup and flushes it on shutdown.
var Module = fx.Invoke(registerTelemetry)

type telemetryParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
}

func registerTelemetry(p telemetryParams) error {
	shutdown, err := Setup(p.Ctx, Options{
		Enabled:     p.Config.OTelEnabled,
		Endpoint:    p.Config.OTelEndpoint,
		SampleRatio: p.Config.OTelSampleRatio,
	})
	if err != nil {
		return err
	}
	if p.Config.OTelEnabled {
		p.Logger.Info("tracing enabled",
			slog.String("endpoint", p.Config.OTelEndpoint),
			slog.Float64("sample_ratio", p.Config.OTelSampleRatio),
		)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}

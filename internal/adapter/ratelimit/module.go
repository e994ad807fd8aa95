package ratelimit

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/server/http/middleware"
)

// Module provides the slot query limiter. Without REDIS_ADDRESS the limiter is nil.
var Module = fx.Provide(newLimiter)

type limiterParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newLimiter(p limiterParams) middleware.Limiter {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("rate limiting disabled (no redis address configured)")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				p.Logger.Warn("redis unreachable, rate limiter fails open", slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return NewRedisLimiter(client, p.Config.RateLimit, p.Config.RateWindow)
}

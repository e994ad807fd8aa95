package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/adapter/kafka"
	"github.com/polkiloo/atelier/internal/adapter/ratelimit"
	"github.com/polkiloo/atelier/internal/app"
	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/logger"
	"github.com/polkiloo/atelier/internal/pkg/auth"
	"github.com/polkiloo/atelier/internal/server/http/handlers"
	"github.com/polkiloo/atelier/internal/server/http/router"
	"github.com/polkiloo/atelier/internal/storage/postgres"
	"github.com/polkiloo/atelier/internal/telemetry"
	"github.com/polkiloo/atelier/internal/usecase"
)

// Module composes the whole service graph. Extra options are appended last so
// tests can replace infrastructure with stubs.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		telemetry.Module,
		auth.Module,
		postgres.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		usecase.Module,
		kafka.Module,
		ratelimit.Module,
		fx.Provide(func(f *app.AtelierFacade) handlers.AtelierFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

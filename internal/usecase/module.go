package usecase

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config) StaffDirectory { return cfg },
		NewAuthUseCase,
		NewOrderUseCase,
		NewAvailabilityUseCase,
		NewAppointmentUseCase,
		NewFulfillmentUseCase,
		NewCheckoutUseCase,
	),
	fx.Invoke(registerStaffSeeding),
)

// registerStaffSeeding provisions staff accounts once the storage is up.
func registerStaffSeeding(lc fx.Lifecycle, auth *AuthUseCase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeded, err := auth.SeedStaff(ctx)
			if err != nil {
				return err
			}
			if seeded > 0 {
				logger.Info("staff accounts provisioned", slog.Int("count", seeded))
			}
			return nil
		},
	})
}

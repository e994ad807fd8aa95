package auth

import (
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/atelier/internal/config"
)

// Module provides the password hasher and the configured token strategy.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type strategyParams struct {
	fx.In

	Config *config.Config
}

// newPasswordHasher uses PASSWORD_COST when it is a valid bcrypt cost.
func newPasswordHasher(p strategyParams) PasswordHasher {
	cost := p.Config.PasswordCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 0
	}
	return NewBcryptHasher(cost)
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.TokenTTL}
	if p.Config.AuthStrategy == config.AuthStrategyJWT {
		return NewJWTStrategy(p.Config.JWTSecret, opts)
	}
	return NewHMACStrategy(p.Config.JWTSecret, opts)
}

package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/atelier/internal/config"
)

func TestNewPasswordHasherCost(t *testing.T) {
	cases := []struct {
		configured int
		want       int
	}{
		{0, bcrypt.DefaultCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{-3, bcrypt.DefaultCost},
	}
	for _, tc := range cases {
		hasher := newPasswordHasher(strategyParams{Config: &config.Config{PasswordCost: tc.configured}})
		bcryptHasher, ok := hasher.(*BcryptHasher)
		if !ok {
			t.Fatalf("expected *BcryptHasher, got %T", hasher)
		}
		if bcryptHasher.cost != tc.want {
			t.Fatalf("cost %d: expected %d, got %d", tc.configured, tc.want, bcryptHasher.cost)
		}
	}
}

func TestNewTokenStrategy_HMAC(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{
		JWTSecret:    "top-secret",
		AuthStrategy: config.AuthStrategyHMAC,
		TokenTTL:     time.Hour,
	}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestNewTokenStrategy_JWT(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{
		JWTSecret:    "top-secret",
		AuthStrategy: config.AuthStrategyJWT,
	}})
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if jwtStrategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", jwtStrategy.ttl)
	}
}

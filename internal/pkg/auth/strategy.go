package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies tokens carrying the caller's principal.
type Strategy interface {
	IssueToken(principal model.Principal) (string, error)
	ParseToken(token string) (model.Principal, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return 24 * time.Hour
	}
	return o.TTL
}

func parseRole(raw string) (model.Role, bool) {
	switch model.Role(raw) {
	case model.RoleCustomer, model.RoleStaff:
		return model.Role(raw), true
	default:
		return "", false
	}
}

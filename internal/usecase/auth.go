package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/polkiloo/atelier/internal/config"
	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
	pkgAuth "github.com/polkiloo/atelier/internal/pkg/auth"
)

// StaffDirectory lists the staff logins provisioned at startup and the
// bcrypt hash they are given.
type StaffDirectory interface {
	StaffCredentials() (logins []string, passwordHash string)
}

// ErrStaffPasswordMissing is returned when staff logins are configured without a hash.
var ErrStaffPasswordMissing = errors.New("staff logins configured without STAFF_PASSWORD_HASH")

var _ StaffDirectory = (*config.Config)(nil)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	staff  StaffDirectory
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, staff StaffDirectory) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, staff: staff}
}

// Register creates a customer account with login/password and returns auth
// token. Staff accounts are never created here, see SeedStaff.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, login, hash, model.RoleCustomer)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// SeedStaff provisions every configured staff login. An account that already
// holds such a login is converted to staff and its password replaced.
func (u *AuthUseCase) SeedStaff(ctx context.Context) (int, error) {
	if u.staff == nil {
		return 0, nil
	}
	logins, hash := u.staff.StaffCredentials()
	if len(logins) == 0 {
		return 0, nil
	}
	if hash == "" {
		return 0, ErrStaffPasswordMissing
	}
	for _, login := range logins {
		if _, err := u.users.UpsertStaff(ctx, login, hash); err != nil {
			return 0, fmt.Errorf("seed staff %q: %w", login, err)
		}
	}
	return len(logins), nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ParseToken extracts the principal from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) issue(usr *model.User) (string, error) {
	role := usr.Role
	if role == "" {
		role = model.RoleCustomer
	}
	return u.tokens.IssueToken(model.Principal{UserID: usr.ID, Role: role})
}

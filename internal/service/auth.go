// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/config"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/go-playground/validator/v10"
)

// recoveryCompleter is implemented by providers that own the password reset
// form themselves (the local provider).
type recoveryCompleter interface {
	CompleteRecovery(ctx context.Context, token, password string) error
}

type AuthService struct {
	repos    Repositories
	identity identity.Provider
	config   *config.Config
	validate *validator.Validate
	now      func() time.Time
}

func NewAuthService(repos Repositories, provider identity.Provider, config *config.Config) *AuthService {
	return &AuthService{
		repos:    repos,
		identity: provider,
		config:   config,
		validate: newValidator(),
		now:      time.Now,
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Session *identity.Session `json:"session"`
	User    *model.User       `json:"user"`
}

// Login authenticates against the identity provider and returns the profile.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	session, err := s.identity.Authenticate(ctx, normalizeEmail(input.Email), input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users.FindByID(ctx, session.Account.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.repos.Users.RecordLogin(ctx, user.ID, s.now().UTC()); err != nil {
		slog.WarnContext(ctx, "failed to record login", "userID", user.ID, "error", err)
	}

	return &LoginOutput{Session: session, User: user}, nil
}

// Me returns the caller's profile.
func (s *AuthService) Me(ctx context.Context, session *identity.Session) (*model.User, error) {
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.repos.Users.FindByID(ctx, session.Account.ID)
}

// ForgotPassword sends a recovery link. Unknown addresses are not reported.
func (s *AuthService) ForgotPassword(ctx context.Context, addr string) error {
	addr = normalizeEmail(addr)
	if addr == "" {
		return domain.ErrMissingFields
	}

	err := s.identity.SendRecoveryEmail(ctx, addr, s.config.SiteURL+"/reset-password")
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}
	return nil
}

type CompleteRecoveryInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CompleteRecovery sets a new password with a recovery token. Only providers
// that issue their own recovery tokens support it.
func (s *AuthService) CompleteRecovery(ctx context.Context, input CompleteRecoveryInput) error {
	if err := s.validate.Struct(input); err != nil {
		return validationError(err)
	}

	completer, ok := s.identity.(recoveryCompleter)
	if !ok {
		return domain.ErrNotFound
	}
	return completer.CompleteRecovery(ctx, input.Token, input.Password)
}

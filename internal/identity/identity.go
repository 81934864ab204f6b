// Package identity abstracts the identity provider that owns accounts,
// credentials and sessions. The membership flows only ever see Provider.
package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Account is the provider's canonical record. Its ID is shared by the user profile.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name,omitempty"`
	EmailConfirmed bool      `json:"email_confirmed"`
}

// Session is an authenticated caller.
type Session struct {
	AccessToken string    `json:"access_token,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
	Account     Account   `json:"account"`
}

type CreateAccountInput struct {
	Email          string
	Password       string
	FullName       string
	EmailConfirmed bool
}

// Provider is implemented by the local and supabase backends.
type Provider interface {
	CreateAccount(ctx context.Context, in CreateAccountInput) (*Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	// GetAccount returns domain.ErrAccountNotFound when the account does not exist.
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	SendRecoveryEmail(ctx context.Context, email, redirectTo string) error
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	SessionFromToken(ctx context.Context, token string) (*Session, error)
}

//go:generate mockgen -typed -source=./identity.go -destination=../mocks/mock_identity_provider.go -package=mocks Provider

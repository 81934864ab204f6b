package identity

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/email"
	"github.com/dangerclosesec/orgmembers/internal/email/mailer"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/google/uuid"
)

const recoveryTTL = time.Hour

// Local keeps accounts in the application database.
type Local struct {
	accounts repository.AccountRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	mail     email.Sender
	now      func() time.Time
}

func NewLocal(accounts repository.AccountRepositoryIface, hasher *auth.PasswordHasher, tokens *auth.TokenManager, mail email.Sender) *Local {
	return &Local{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		mail:     mail,
		now:      time.Now,
	}
}

func toAccount(a *model.Account) *Account {
	return &Account{
		ID:             a.ID,
		Email:          a.Email,
		FullName:       a.FullName,
		EmailConfirmed: a.EmailConfirmed,
	}
}

func (l *Local) CreateAccount(ctx context.Context, in CreateAccountInput) (*Account, error) {
	account := &model.Account{
		ID:             uuid.New(),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		FullName:       in.FullName,
		EmailConfirmed: in.EmailConfirmed,
	}

	if in.Password != "" {
		hash, err := l.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		account.PasswordHash = &hash
	}

	if err := l.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return toAccount(account), nil
}

func (l *Local) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return l.accounts.Delete(ctx, id)
}

func (l *Local) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	account, err := l.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAccount(account), nil
}

// SendRecoveryEmail mails a one-time link to redirectTo carrying a signed
// recovery token. Only the hash of the token nonce is stored.
func (l *Local) SendRecoveryEmail(ctx context.Context, addr, redirectTo string) error {
	account, err := l.accounts.FindByEmail(ctx, addr)
	if err != nil {
		return err
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generating recovery nonce: %w", err)
	}
	nonceHex := hex.EncodeToString(nonce)

	token, expiresAt, err := l.tokens.GenerateRecovery(account.ID.String(), account.Email, nonceHex, recoveryTTL)
	if err != nil {
		return err
	}

	if err := l.accounts.SetRecovery(ctx, account.ID, digest(nonceHex), expiresAt); err != nil {
		return err
	}

	link, err := url.Parse(redirectTo)
	if err != nil {
		return fmt.Errorf("invalid redirect: %w", err)
	}
	q := link.Query()
	q.Set("recovery_token", token)
	link.RawQuery = q.Encode()

	return mailer.SendPasswordRecovery(ctx, l.mail, account.Email, mailer.RecoveryTemplateData{
		FullName:     account.FullName,
		RecoveryLink: link.String(),
	})
}

// CompleteRecovery sets a new password from a recovery token and confirms the email.
func (l *Local) CompleteRecovery(ctx context.Context, token, password string) error {
	claims, err := l.tokens.ValidateRecovery(token)
	if err != nil {
		return domain.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return domain.ErrInvalidToken
	}

	account, err := l.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}

	if account.RecoveryHash == nil || account.RecoveryExpiry == nil || l.now().After(*account.RecoveryExpiry) {
		return domain.ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(*account.RecoveryHash), []byte(digest(claims.Nonce))) != 1 {
		return domain.ErrInvalidToken
	}

	if reason := auth.CheckPasswordPolicy(password); reason != "" {
		return fmt.Errorf("%w: %s", domain.ErrPasswordTooWeak, reason)
	}

	hash, err := l.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return l.accounts.CompleteRecovery(ctx, account.ID, hash)
}

func (l *Local) Authenticate(ctx context.Context, addr, password string) (*Session, error) {
	account, err := l.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(addr)))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if account.PasswordHash == nil {
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := l.hasher.Verify(password, *account.PasswordHash)
	if err != nil {
		slog.ErrorContext(ctx, "stored password hash unreadable", "accountID", account.ID, "error", err)
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := l.tokens.Generate(account.ID.String(), account.Email)
	if err != nil {
		return nil, err
	}

	return &Session{AccessToken: token, ExpiresAt: expiresAt, Account: *toAccount(account)}, nil
}

// SessionFromToken validates a session token and checks the account still exists.
func (l *Local) SessionFromToken(ctx context.Context, token string) (*Session, error) {
	claims, err := l.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	account, err := l.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &Session{AccessToken: token, ExpiresAt: expiresAt, Account: *toAccount(account)}, nil
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

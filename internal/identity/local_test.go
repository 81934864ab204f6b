package identity_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/email"
	"github.com/dangerclosesec/orgmembers/internal/email/mailer"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/mocks"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type localFixture struct {
	accounts *mocks.MockAccountRepositoryIface
	mail     *mocks.MockSender
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	provider *identity.Local
}

func newLocalFixture(t *testing.T) *localFixture {
	ctrl := gomock.NewController(t)
	f := &localFixture{
		accounts: mocks.NewMockAccountRepositoryIface(ctrl),
		mail:     mocks.NewMockSender(ctrl),
		hasher:   auth.NewPasswordHasher(),
		tokens:   auth.NewTokenManager("test-secret", time.Hour),
	}
	f.provider = identity.NewLocal(f.accounts, f.hasher, f.tokens, f.mail)
	return f
}

func TestLocalCreateAccount(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	var stored *model.Account
	f.accounts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Account) error {
		stored = a
		return nil
	})

	account, err := f.provider.CreateAccount(ctx, identity.CreateAccountInput{
		Email:          "  Ana@Example.com ",
		Password:       "Secret123",
		FullName:       "Ana Owner",
		EmailConfirmed: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", account.Email)
	assert.True(t, account.EmailConfirmed)
	assert.Equal(t, stored.ID, account.ID)
	require.NotNil(t, stored.PasswordHash)

	ok, err := f.hasher.Verify("Secret123", *stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalCreateAccountWithoutPassword(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	f.accounts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Account) error {
		assert.Nil(t, a.PasswordHash)
		return nil
	})

	_, err := f.provider.CreateAccount(ctx, identity.CreateAccountInput{Email: "member@example.com"})
	require.NoError(t, err)
}

func TestLocalGetAccountAfterDelete(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.accounts.EXPECT().Delete(ctx, id).Return(nil)
	f.accounts.EXPECT().FindByID(ctx, id).Return(nil, domain.ErrAccountNotFound)

	require.NoError(t, f.provider.DeleteAccount(ctx, id))

	_, err := f.provider.GetAccount(ctx, id)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLocalAuthenticate(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	hash, err := f.hasher.Hash("Secret123")
	require.NoError(t, err)
	account := &model.Account{ID: uuid.New(), Email: "ana@example.com", PasswordHash: &hash}

	f.accounts.EXPECT().FindByEmail(ctx, "ana@example.com").Return(account, nil).Times(2)

	session, err := f.provider.Authenticate(ctx, "ANA@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, account.ID, session.Account.ID)
	assert.NotEmpty(t, session.AccessToken)

	_, err = f.provider.Authenticate(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLocalAuthenticateUnknownEmail(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	f.accounts.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, domain.ErrAccountNotFound)

	_, err := f.provider.Authenticate(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLocalSessionFromToken(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	account := &model.Account{ID: uuid.New(), Email: "ana@example.com"}

	token, _, err := f.tokens.Generate(account.ID.String(), account.Email)
	require.NoError(t, err)

	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	session, err := f.provider.SessionFromToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", session.Account.Email)

	_, err = f.provider.SessionFromToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLocalRecoveryRoundTrip(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	account := &model.Account{ID: uuid.New(), Email: "member@example.com", FullName: "New Member"}

	var storedHash string
	var storedExpiry time.Time
	var link string

	f.accounts.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	f.accounts.EXPECT().SetRecovery(ctx, account.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string, expiry time.Time) error {
			storedHash = hash
			storedExpiry = expiry
			return nil
		})
	f.mail.EXPECT().SendEmail(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, data email.EmailData) error {
		assert.Equal(t, account.Email, data.To)
		assert.Equal(t, "password_recovery", data.TemplateName)
		link = data.TemplateData.(mailer.RecoveryTemplateData).RecoveryLink
		return nil
	})

	require.NoError(t, f.provider.SendRecoveryEmail(ctx, account.Email, "https://app.example.com/login"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/login", parsed.Path)
	token := parsed.Query().Get("recovery_token")
	require.NotEmpty(t, token)

	// A recovery token must not work as a session.
	_, err = f.provider.SessionFromToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	withRecovery := *account
	withRecovery.RecoveryHash = &storedHash
	withRecovery.RecoveryExpiry = &storedExpiry

	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(&withRecovery, nil).Times(2)
	f.accounts.EXPECT().CompleteRecovery(ctx, account.ID, gomock.Any()).Return(nil)

	err = f.provider.CompleteRecovery(ctx, token, "short")
	assert.ErrorIs(t, err, domain.ErrPasswordTooWeak)

	require.NoError(t, f.provider.CompleteRecovery(ctx, token, "NewSecret123"))
}

func TestLocalCompleteRecoveryRejectsReplacedNonce(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	account := &model.Account{ID: uuid.New(), Email: "member@example.com"}

	token, _, err := f.tokens.GenerateRecovery(account.ID.String(), account.Email, "nonce-a", time.Hour)
	require.NoError(t, err)

	other := "some-other-digest"
	expiry := time.Now().Add(time.Hour)
	account.RecoveryHash = &other
	account.RecoveryExpiry = &expiry

	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	err = f.provider.CompleteRecovery(ctx, token, "NewSecret123")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

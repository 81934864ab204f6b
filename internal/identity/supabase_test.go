package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupabaseServer(t *testing.T, handler http.HandlerFunc) *Supabase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSupabase(srv.URL+"/", "service-key")
}

func TestSupabaseCreateAccount(t *testing.T) {
	id := uuid.New()
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])
		assert.Equal(t, true, body["email_confirm"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":                 id,
			"email":              "ana@example.com",
			"email_confirmed_at": "2024-01-01T00:00:00Z",
			"user_metadata":      map[string]string{"full_name": "Ana Owner"},
		})
	})

	account, err := s.CreateAccount(context.Background(), CreateAccountInput{
		Email:          "Ana@example.com",
		Password:       "Secret123",
		FullName:       "Ana Owner",
		EmailConfirmed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, "Ana Owner", account.FullName)
	assert.True(t, account.EmailConfirmed)
}

func TestSupabaseCreateAccountDuplicate(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error_code":"email_exists","msg":"already registered"}`))
	})

	_, err := s.CreateAccount(context.Background(), CreateAccountInput{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSupabaseGetDeletedAccount(t *testing.T) {
	id := uuid.New()
	deleted := false
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users/"+id.String(), r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			if deleted {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "email": "x@example.com"})
		}
	})

	ctx := context.Background()
	_, err := s.GetAccount(ctx, id)
	require.NoError(t, err)

	require.NoError(t, s.DeleteAccount(ctx, id))

	_, err = s.GetAccount(ctx, id)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSupabaseSendRecoveryEmail(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/recover", r.URL.Path)
		assert.Equal(t, "https://app.example.com/login", r.URL.Query().Get("redirect_to"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, s.SendRecoveryEmail(context.Background(), "member@example.com", "https://app.example.com/login"))
}

func TestSupabaseAuthenticate(t *testing.T) {
	id := uuid.New()
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "Secret123" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_code":"invalid_credentials","msg":"Invalid login credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "user-token",
			"expires_in":   3600,
			"user":         map[string]interface{}{"id": id, "email": "ana@example.com"},
		})
	})

	ctx := context.Background()
	session, err := s.Authenticate(ctx, "ana@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "user-token", session.AccessToken)
	assert.Equal(t, id, session.Account.ID)

	_, err = s.Authenticate(ctx, "ana@example.com", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSupabaseSessionFromToken(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer user-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": uuid.New(), "email": "ana@example.com"})
	})

	ctx := context.Background()
	session, err := s.SessionFromToken(ctx, "user-token")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", session.Account.Email)

	_, err = s.SessionFromToken(ctx, "stale")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestSupabaseServerError(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := s.GetAccount(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, domain.StatusCode(err))

	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "boom", apiErr.Msg)
}

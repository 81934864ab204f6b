// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/google/uuid"
)

type contextKey string

const (
	sessionKey  contextKey = "orgmembers_session"
	operatorKey contextKey = "orgmembers_operator"
)

// WithSession stores the caller's session in ctx.
func WithSession(ctx context.Context, session *identity.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFrom returns the caller's session, or nil for anonymous requests.
func SessionFrom(ctx context.Context) *identity.Session {
	session, _ := ctx.Value(sessionKey).(*identity.Session)
	return session
}

// CallerID returns the session's account id, or uuid.Nil for anonymous requests.
func CallerID(ctx context.Context) uuid.UUID {
	if session := SessionFrom(ctx); session != nil {
		return session.Account.ID
	}
	return uuid.Nil
}

// IsOperator reports whether the request was authorized with the operator credential.
func IsOperator(ctx context.Context) bool {
	ok, _ := ctx.Value(operatorKey).(bool)
	return ok
}

// Authenticate resolves a Bearer token into a session. Requests without a
// token continue anonymously; a token the provider rejects is a 401.
func Authenticate(provider identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			session, err := provider.SessionFromToken(r.Context(), token)
			if err != nil {
				if domain.StatusCode(err) >= http.StatusInternalServerError {
					slog.ErrorContext(r.Context(), "session lookup failed", "error", err, "requestID", requestID(r))
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireSession rejects anonymous requests. It runs after Authenticate.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFrom(r.Context()) == nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SuperAdmin admits the operator credential over HTTP basic auth, or a
// session whose profile is flagged is_super_admin.
func SuperAdmin(users repository.UserRepositoryIface, operator *auth.OperatorCredential) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if email, password, ok := r.BasicAuth(); ok {
				if !operator.Check(email, password) {
					slog.WarnContext(r.Context(), "operator login rejected", "requestID", requestID(r))
					respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
					return
				}
				ctx := context.WithValue(r.Context(), operatorKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			session := SessionFrom(r.Context())
			if session == nil {
				respondWithError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			user, err := users.FindByID(r.Context(), session.Account.ID)
			switch {
			case errors.Is(err, domain.ErrUserNotFound):
				respondWithError(w, http.StatusForbidden, domain.ErrNotSuperAdmin.Error())
				return
			case err != nil:
				slog.ErrorContext(r.Context(), "super admin lookup failed", "error", err, "requestID", requestID(r))
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			case !user.IsSuperAdmin:
				respondWithError(w, http.StatusForbidden, domain.ErrNotSuperAdmin.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/config"
	"github.com/dangerclosesec/orgmembers/internal/email"
	"github.com/dangerclosesec/orgmembers/internal/handler"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/mocks"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type noMail struct{}

func (noMail) SendEmail(context.Context, email.EmailData) error { return nil }

type apiFixture struct {
	provider    *mocks.MockProvider
	users       *mocks.MockUserRepositoryIface
	orgs        *mocks.MockOrganizationRepositoryIface
	memberships *mocks.MockMembershipRepositoryIface
	requests    *mocks.MockJoinRequestRepositoryIface
	invitations *mocks.MockInvitationRepositoryIface
	catalog     *mocks.MockCatalogRepositoryIface
	stats       *mocks.MockStatsRepositoryIface
	auditLogs   *mocks.MockAuditLogRepositoryIface

	router chi.Router
}

const (
	operatorEmail    = "ops@example.com"
	operatorPassword = "Operator123"
)

func newAPIFixture(t *testing.T) *apiFixture {
	ctrl := gomock.NewController(t)
	f := &apiFixture{
		provider:    mocks.NewMockProvider(ctrl),
		users:       mocks.NewMockUserRepositoryIface(ctrl),
		orgs:        mocks.NewMockOrganizationRepositoryIface(ctrl),
		memberships: mocks.NewMockMembershipRepositoryIface(ctrl),
		requests:    mocks.NewMockJoinRequestRepositoryIface(ctrl),
		invitations: mocks.NewMockInvitationRepositoryIface(ctrl),
		catalog:     mocks.NewMockCatalogRepositoryIface(ctrl),
		stats:       mocks.NewMockStatsRepositoryIface(ctrl),
		auditLogs:   mocks.NewMockAuditLogRepositoryIface(ctrl),
	}

	repos := service.Repositories{
		Users:         f.users,
		Organizations: f.orgs,
		Memberships:   f.memberships,
		JoinRequests:  f.requests,
		Invitations:   f.invitations,
		Catalog:       f.catalog,
		AuditLogs:     f.auditLogs,
		Stats:         f.stats,
	}
	cfg := &config.Config{SiteURL: "https://app.example.com", InvitationTTL: 7 * 24 * time.Hour}
	auditLog := &audit.NoOpLogger{}

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash(operatorPassword)
	require.NoError(t, err)

	f.router = chi.NewRouter()
	handler.MountAPI(f.router, handler.RouterConfig{
		Registration: handler.NewRegistrationHandler(service.NewRegistrationService(repos, f.provider, noMail{}, auditLog, nil, cfg)),
		Invitations:  handler.NewInvitationHandler(service.NewInvitationService(repos, f.provider, noMail{}, auditLog, nil, cfg)),
		Requests:     handler.NewJoinRequestHandler(service.NewJoinRequestService(repos, f.provider, auditLog, nil, cfg)),
		Catalog:      handler.NewCatalogHandler(service.NewCatalogService(repos, nil)),
		Admin:        handler.NewAdminHandler(service.NewAdminService(repos, auditLog)),
		Auth:         handler.NewAuthHandler(service.NewAuthService(repos, f.provider, cfg)),
		Provider:     f.provider,
		Users:        f.users,
		Operator:     auth.NewOperatorCredential(operatorEmail, hash, hasher),
	})
	return f
}

// session makes token resolve to a session for a new account and returns its id.
func (f *apiFixture) session(token, addr string) uuid.UUID {
	id := uuid.New()
	f.provider.EXPECT().SessionFromToken(gomock.Any(), token).
		Return(&identity.Session{AccessToken: token, Account: identity.Account{ID: id, Email: addr}}, nil).
		AnyTimes()
	return id
}

type requestOption func(*http.Request)

func withToken(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withOperator() requestOption {
	return func(r *http.Request) { r.SetBasicAuth(operatorEmail, operatorPassword) }
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

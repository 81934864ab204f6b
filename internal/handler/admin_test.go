package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublicCatalog(t *testing.T) {
	f := newAPIFixture(t)
	f.orgs.EXPECT().ListActive(gomock.Any()).Return([]*model.Organization{{ID: uuid.New(), Name: "Acme", Slug: "acme", IsActive: true}}, nil)
	f.catalog.EXPECT().ListPositions(gomock.Any()).Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/organizations/public", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["organizations"], 1)

	rec = f.do(t, http.MethodGet, "/api/positions/public", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"positions":[]}`, rec.Body.String())
}

func TestSuperAdminStatsWithOperator(t *testing.T) {
	f := newAPIFixture(t)
	stats := &repository.Stats{}
	stats.Users.Total = 7
	stats.Invitations.Pending = 2
	f.stats.EXPECT().Collect(gomock.Any(), gomock.Any()).Return(stats, nil)

	rec := f.do(t, http.MethodGet, "/api/super-admin/stats", nil, withOperator())

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(7), body["users"].(map[string]interface{})["total"])
	assert.Equal(t, float64(2), body["invitations"].(map[string]interface{})["pending"])
}

func TestSuperAdminRejectsRegularUsers(t *testing.T) {
	f := newAPIFixture(t)
	userID := f.session("user-token", "user@example.com")
	f.users.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID}, nil)

	rec := f.do(t, http.MethodGet, "/api/super-admin/users", nil, withToken("user-token"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSuperAdminUsersPagination(t *testing.T) {
	f := newAPIFixture(t)
	adminID := f.session("admin-token", "admin@example.com")
	f.users.EXPECT().FindByID(gomock.Any(), adminID).Return(&model.User{ID: adminID, IsSuperAdmin: true}, nil)
	f.users.EXPECT().FindAllPaginated(gomock.Any(), 20, 10).Return([]*model.User{{Email: "a@example.com"}}, int64(21), nil)

	rec := f.do(t, http.MethodGet, "/api/super-admin/users?offset=20&limit=10", nil, withToken("admin-token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(21), body["total"])
	assert.Equal(t, float64(10), body["limit"])
	assert.Len(t, body["users"], 1)
}

func TestSuperAdminAuditLogs(t *testing.T) {
	f := newAPIFixture(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	f.auditLogs.EXPECT().Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q repository.AuditQuery) ([]model.AuditLog, int64, error) {
			assert.Equal(t, model.ActionCompensation, q.Action)
			assert.Equal(t, "sagas", q.Table)
			assert.True(t, start.Equal(q.StartTime))
			assert.Equal(t, 50, q.Limit)
			return []model.AuditLog{{Action: model.ActionCompensation}}, 1, nil
		})

	rec := f.do(t, http.MethodGet,
		"/api/super-admin/audit-logs?action="+model.ActionCompensation+"&table=sagas&start_time=2025-01-01T00:00:00Z",
		nil, withOperator())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["logs"], 1)

	rec = f.do(t, http.MethodGet, "/api/super-admin/audit-logs?start_time=yesterday", nil, withOperator())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuperAdminSetUserActive(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	f.users.EXPECT().SetActive(gomock.Any(), userID, false).Return(nil)

	rec := f.do(t, http.MethodPatch, "/api/super-admin/users/"+userID.String(),
		map[string]bool{"is_active": false}, withOperator())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPatch, "/api/super-admin/users/"+userID.String(), map[string]string{}, withOperator())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPatch, "/api/super-admin/users/nope", map[string]bool{"is_active": true}, withOperator())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

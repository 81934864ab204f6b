package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/mocks"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)
	stats := mocks.NewMockStatsRepositoryIface(ctrl)
	auditLogs := mocks.NewMockAuditLogRepositoryIface(ctrl)

	svc := service.NewAdminService(service.Repositories{
		Users:         users,
		Organizations: orgs,
		Stats:         stats,
		AuditLogs:     auditLogs,
	}, audit.NewRepositoryLogger(auditLogs))

	t.Run("stats use a thirty day window", func(t *testing.T) {
		want := &repository.Stats{}
		want.Users.Total = 3
		stats.EXPECT().Collect(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) (*repository.Stats, error) {
				assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), since, time.Minute)
				return want, nil
			})

		got, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Users.Total)
	})

	t.Run("users page", func(t *testing.T) {
		users.EXPECT().FindAllPaginated(gomock.Any(), 10, 5).Return([]*model.User{{Email: "a@example.com"}}, int64(11), nil)

		page, err := svc.Users(ctx, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(11), page.Total)
		assert.Len(t, page.Items, 1)
	})

	t.Run("organizations page", func(t *testing.T) {
		listing := &repository.OrganizationListing{Organization: &model.Organization{Name: "Acme"}, MemberCount: 4}
		orgs.EXPECT().FindAllPaginated(gomock.Any(), 0, 50).Return([]*repository.OrganizationListing{listing}, int64(1), nil)

		page, err := svc.Organizations(ctx, 0, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(4), page.Items[0].MemberCount)
	})

	t.Run("audit logs pass the filter through", func(t *testing.T) {
		q := repository.AuditQuery{Action: model.ActionCompensation, Limit: 20}
		auditLogs.EXPECT().Query(gomock.Any(), q).Return([]model.AuditLog{{Action: model.ActionCompensation}}, int64(1), nil)

		page, err := svc.AuditLogs(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 20, page.Limit)
	})

	t.Run("toggle user records an audit entry", func(t *testing.T) {
		userID := uuid.New()
		users.EXPECT().SetActive(gomock.Any(), userID, false).Return(nil)
		auditLogs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *model.AuditLog) error {
				assert.Equal(t, model.ActionUserStatusChanged, log.Action)
				assert.Nil(t, log.UserID)
				return nil
			})

		require.NoError(t, svc.SetUserActive(ctx, nil, userID, false))
	})

	t.Run("toggle unknown user", func(t *testing.T) {
		users.EXPECT().SetActive(gomock.Any(), gomock.Any(), true).Return(domain.ErrUserNotFound)

		err := svc.SetUserActive(ctx, nil, uuid.New(), true)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

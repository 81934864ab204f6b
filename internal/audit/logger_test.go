package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/mocks"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRepositoryLoggerRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	logger := audit.NewRepositoryLogger(repo)

	userID := uuid.New()
	ctx := audit.WithMeta(context.Background(), audit.RequestMeta{
		RequestID: "req-1",
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8.0",
	})

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, log *model.AuditLog) error {
		assert.Equal(t, &userID, log.UserID)
		assert.Equal(t, model.ActionRequestApproved, log.Action)
		assert.Equal(t, "join_requests", log.Table)
		require.NotNil(t, log.RecordID)
		assert.Equal(t, "abc", *log.RecordID)
		assert.Equal(t, "req-1", log.RequestID)
		assert.Equal(t, "10.0.0.1", log.IPAddress)
		assert.Equal(t, "curl/8.0", log.UserAgent)
		assert.Equal(t, "approved", log.NewValues["status"])
		return nil
	})

	err := logger.Record(ctx, audit.Entry{
		UserID:    &userID,
		Action:    model.ActionRequestApproved,
		Table:     "join_requests",
		RecordID:  "abc",
		NewValues: map[string]interface{}{"status": "approved"},
	})
	require.NoError(t, err)
}

func TestSafeSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepositoryIface(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	audit.Safe(context.Background(), audit.NewRepositoryLogger(repo), audit.Entry{Action: model.ActionCompensation})
	audit.Safe(context.Background(), nil, audit.Entry{})
	audit.Safe(context.Background(), &audit.NoOpLogger{}, audit.Entry{})
}

func TestMetaFromEmptyContext(t *testing.T) {
	assert.Equal(t, audit.RequestMeta{}, audit.MetaFrom(context.Background()))
}

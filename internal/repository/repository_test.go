package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestJoinRequestReviewIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	id, orgID, reviewer := uuid.New(), uuid.New(), uuid.New()

	t.Run("pending row is updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "join_requests" SET .* WHERE id = \$\d+ AND organization_id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewJoinRequestRepository(db).Review(ctx, id, orgID, model.RequestRejected, reviewer, time.Now())
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("terminal row matches nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "join_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewJoinRequestRepository(db).Review(ctx, id, orgID, model.RequestApproved, reviewer, time.Now())
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
		assert.Equal(t, 404, domain.StatusCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJoinRequestFindPendingNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "join_requests" WHERE id = \$1 AND organization_id = \$2 AND status = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewJoinRequestRepository(db).FindPending(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("accept pending", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "invitation_tokens" SET .*"accepted_at"=.* WHERE id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewInvitationRepository(db).MarkAccepted(ctx, uuid.New(), time.Now()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already moved", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "invitation_tokens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewInvitationRepository(db).MarkExpired(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	})
}

func TestMembershipCreateDuplicateActive(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "memberships"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "memberships_active_user_org_idx"})

	err := NewMembershipRepository(db).Create(context.Background(), &model.Membership{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Role:           model.RoleMember,
		IsActive:       true,
		StartDate:      time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	assert.Equal(t, 409, domain.StatusCode(err))
}

func TestOrganizationCreateSlugTaken(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "organizations"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := NewOrganizationRepository(db).Create(context.Background(), &model.Organization{Name: "Acme", Slug: "acme"})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestAccountDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewAccountRepository(db).Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUserSetActiveUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewUserRepository(db).SetActive(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStatsCollect(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT\s+\(SELECT count\(\*\) FROM users\)`).
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}).
			AddRow(10, 7, 4, 3, 1, 9, 4, 1, 4, 2))

	stats, err := NewStatsRepository(db).Collect(context.Background(), time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Users.Inactive)
	assert.Equal(t, int64(1), stats.Organizations.Inactive)
	assert.Equal(t, int64(4), stats.Memberships.Owners)
	assert.Equal(t, int64(2), stats.Invitations.Pending)
}

func TestHelpers(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isUniqueViolation(errors.New("boom")))

	offset, limit := page(-5, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, defaultPageSize, limit)

	_, limit = page(0, 10_000)
	assert.Equal(t, maxPageSize, limit)
}

package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/email"
	"github.com/dangerclosesec/orgmembers/internal/email/mailer"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/mocks"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invitationFixture struct {
	provider    *mocks.MockProvider
	users       *mocks.MockUserRepositoryIface
	orgs        *mocks.MockOrganizationRepositoryIface
	memberships *mocks.MockMembershipRepositoryIface
	invitations *mocks.MockInvitationRepositoryIface
	mail        *mocks.MockSender
	svc         *service.InvitationService
}

func newInvitationFixture(t *testing.T) *invitationFixture {
	ctrl := gomock.NewController(t)
	f := &invitationFixture{
		provider:    mocks.NewMockProvider(ctrl),
		users:       mocks.NewMockUserRepositoryIface(ctrl),
		orgs:        mocks.NewMockOrganizationRepositoryIface(ctrl),
		memberships: mocks.NewMockMembershipRepositoryIface(ctrl),
		invitations: mocks.NewMockInvitationRepositoryIface(ctrl),
		mail:        mocks.NewMockSender(ctrl),
	}
	f.svc = service.NewInvitationService(service.Repositories{
		Users:         f.users,
		Organizations: f.orgs,
		Memberships:   f.memberships,
		Invitations:   f.invitations,
	}, f.provider, f.mail, &audit.NoOpLogger{}, nil, testConfig())
	return f
}

func pendingInvitation(expiresIn time.Duration) *model.InvitationToken {
	orgID := uuid.New()
	positionID := uuid.New()
	return &model.InvitationToken{
		ID:             uuid.New(),
		OrganizationID: orgID,
		InvitedBy:      uuid.New(),
		Email:          "invitee@example.com",
		PositionID:     &positionID,
		Token:          strings.Repeat("ab", 32),
		Status:         model.InvitationPending,
		ExpiresAt:      time.Now().Add(expiresIn),
		Organization:   &model.Organization{ID: orgID, Name: "Acme"},
		Position:       &model.Position{ID: positionID, Title: "Engineer"},
	}
}

func TestCreateInvitation(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	orgID := uuid.New()

	t.Run("owner creates a pending invitation", func(t *testing.T) {
		f := newInvitationFixture(t)

		var created *model.InvitationToken
		f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), callerID).
			Return(&model.Membership{UserID: callerID, OrganizationID: orgID, Role: model.RoleOwner}, nil)
		f.invitations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.InvitationToken) error {
				created = inv
				return nil
			})
		f.orgs.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID, Name: "Acme"}, nil)
		f.users.EXPECT().FindByID(gomock.Any(), callerID).Return(&model.User{ID: callerID, FullName: "Ana Owner"}, nil)
		f.mail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data email.EmailData) error {
				assert.Equal(t, "invitee@example.com", data.To)
				body := data.TemplateData.(mailer.InvitationTemplateData)
				assert.Equal(t, "Acme", body.OrganizationName)
				assert.Equal(t, "Ana Owner", body.InviterName)
				return errors.New("smtp down")
			})

		out, err := f.svc.Create(ctx, callerID, service.CreateInvitationInput{Email: "Invitee@Example.com"})
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.Equal(t, orgID, created.OrganizationID)
		assert.Equal(t, callerID, created.InvitedBy)
		assert.Equal(t, "invitee@example.com", created.Email)
		assert.Equal(t, model.InvitationPending, created.Status)
		assert.Len(t, created.Token, 64)

		assert.Equal(t, "https://app.example.com/invite/"+created.Token, out.InvitationLink)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), out.ExpiresAt, time.Minute)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		f := newInvitationFixture(t)
		seen := map[string]bool{}

		f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), callerID).
			Return(&model.Membership{OrganizationID: orgID, Role: model.RoleOwner}, nil).Times(3)
		f.invitations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.InvitationToken) error {
				assert.False(t, seen[inv.Token])
				seen[inv.Token] = true
				return nil
			}).Times(3)
		f.orgs.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrOrganizationNotFound).AnyTimes()
		f.users.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound).AnyTimes()
		f.mail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		for i := 0; i < 3; i++ {
			_, err := f.svc.Create(ctx, callerID, service.CreateInvitationInput{Email: "x@example.com"})
			require.NoError(t, err)
		}
		assert.Len(t, seen, 3)
	})

	t.Run("non owner is forbidden and nothing is written", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), callerID).Return(nil, domain.ErrMembershipNotFound)

		_, err := f.svc.Create(ctx, callerID, service.CreateInvitationInput{Email: "x@example.com"})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.Equal(t, 403, domain.StatusCode(err))
	})

	t.Run("email is required", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), callerID).
			Return(&model.Membership{OrganizationID: orgID, Role: model.RoleOwner}, nil)

		_, err := f.svc.Create(ctx, callerID, service.CreateInvitationInput{})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})
}

func TestValidateInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("pending invitation returns its summary", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		summary, err := f.svc.Validate(ctx, inv.Token)
		require.NoError(t, err)
		assert.Equal(t, "invitee@example.com", summary.Email)
		assert.Equal(t, "Acme", summary.Organization.Name)
		require.NotNil(t, summary.Position)
		assert.Equal(t, "Engineer", summary.Position.Title)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.invitations.EXPECT().FindByToken(gomock.Any(), "missing").Return(nil, domain.ErrInvitationNotFound)

		_, err := f.svc.Validate(ctx, "missing")
		assert.Equal(t, 404, domain.StatusCode(err))
	})

	t.Run("past expiry flips the status and is gone", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(-time.Minute)

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)
		f.invitations.EXPECT().MarkExpired(gomock.Any(), inv.ID).Return(nil)

		_, err := f.svc.Validate(ctx, inv.Token)
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
		assert.Equal(t, 410, domain.StatusCode(err))
	})

	t.Run("already expired status is gone", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(-time.Hour)
		inv.Status = model.InvitationExpired

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		_, err := f.svc.Validate(ctx, inv.Token)
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
	})

	t.Run("accepted invitation is not found", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)
		inv.Status = model.InvitationAccepted

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		_, err := f.svc.Validate(ctx, inv.Token)
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	})

	t.Run("accepted invitation past expiry is gone", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(-time.Hour)
		inv.Status = model.InvitationAccepted

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		_, err := f.svc.Validate(ctx, inv.Token)
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
		assert.Equal(t, 410, domain.StatusCode(err))
	})

	t.Run("blank token is a validation error", func(t *testing.T) {
		f := newInvitationFixture(t)

		_, err := f.svc.Validate(ctx, "  ")
		assert.Equal(t, 400, domain.StatusCode(err))
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()
	userData := &service.AcceptUserData{Password: "Secret123", FullName: "New Member"}

	t.Run("expired invitation fails before any account is created", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(-time.Second)

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)
		f.invitations.EXPECT().MarkExpired(gomock.Any(), inv.ID).Return(domain.ErrInvitationNotFound)

		_, err := f.svc.Accept(ctx, nil, service.AcceptInvitationInput{Token: inv.Token, UserData: userData})
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
	})

	t.Run("accepted invitation past expiry is gone", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(-time.Hour)
		inv.Status = model.InvitationAccepted

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		_, err := f.svc.Accept(ctx, nil, service.AcceptInvitationInput{Token: inv.Token, UserData: userData})
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
	})

	t.Run("no session and no user data is a validation error", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		_, err := f.svc.Accept(ctx, nil, service.AcceptInvitationInput{Token: inv.Token})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, 400, domain.StatusCode(err))
	})

	t.Run("session with another email is forbidden", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)
		session := &identity.Session{Account: identity.Account{ID: uuid.New(), Email: "someone-else@example.com"}}

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		_, err := f.svc.Accept(ctx, session, service.AcceptInvitationInput{Token: inv.Token})
		assert.ErrorIs(t, err, domain.ErrEmailMismatch)
		assert.ErrorIs(t, err, domain.ErrAuthorization)
	})

	t.Run("session with matching email joins directly", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)
		userID := uuid.New()
		session := &identity.Session{Account: identity.Account{ID: userID, Email: "Invitee@Example.COM"}}

		gomock.InOrder(
			f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil),
			f.users.EXPECT().SetActive(gomock.Any(), userID, true).Return(nil),
			f.memberships.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, m *model.Membership) error {
					assert.Equal(t, userID, m.UserID)
					assert.Equal(t, inv.OrganizationID, m.OrganizationID)
					assert.Equal(t, inv.PositionID, m.PositionID)
					assert.Equal(t, model.RoleMember, m.Role)
					assert.True(t, m.IsActive)
					return nil
				}),
			f.invitations.EXPECT().MarkAccepted(gomock.Any(), inv.ID, gomock.Any()).Return(nil),
		)

		out, err := f.svc.Accept(ctx, session, service.AcceptInvitationInput{Token: inv.Token})
		require.NoError(t, err)
		assert.Equal(t, userID, out.UserID)
		assert.False(t, out.RequiresLogin)
	})

	t.Run("no session creates account and profile", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)
		accountID := uuid.New()

		gomock.InOrder(
			f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil),
			f.provider.EXPECT().CreateAccount(gomock.Any(), identity.CreateAccountInput{
				Email:          inv.Email,
				Password:       "Secret123",
				FullName:       "New Member",
				EmailConfirmed: true,
			}).Return(&identity.Account{ID: accountID, Email: inv.Email}, nil),
			f.users.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u *model.User) error {
					assert.Equal(t, accountID, u.ID)
					assert.True(t, u.IsActive)
					return nil
				}),
			f.memberships.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			f.invitations.EXPECT().MarkAccepted(gomock.Any(), inv.ID, gomock.Any()).Return(nil),
		)

		out, err := f.svc.Accept(ctx, nil, service.AcceptInvitationInput{Token: inv.Token, UserData: userData})
		require.NoError(t, err)
		assert.Equal(t, accountID, out.UserID)
		assert.True(t, out.RequiresLogin)
	})

	t.Run("profile failure deletes the new account", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)
		accountID := uuid.New()

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)
		f.provider.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&identity.Account{ID: accountID}, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		f.provider.EXPECT().DeleteAccount(gomock.Any(), accountID).Return(nil)

		_, err := f.svc.Accept(ctx, nil, service.AcceptInvitationInput{Token: inv.Token, UserData: userData})
		require.Error(t, err)
	})

	t.Run("membership failure after the profile keeps the account", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)
		f.provider.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&identity.Account{ID: uuid.New()}, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.memberships.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := f.svc.Accept(ctx, nil, service.AcceptInvitationInput{Token: inv.Token, UserData: userData})
		require.Error(t, err)
		assert.Equal(t, 500, domain.StatusCode(err))
	})

	t.Run("losing the accept race is reported", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)
		session := &identity.Session{Account: identity.Account{ID: uuid.New(), Email: inv.Email}}

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)
		f.users.EXPECT().SetActive(gomock.Any(), gomock.Any(), true).Return(nil)
		f.memberships.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.invitations.EXPECT().MarkAccepted(gomock.Any(), inv.ID, gomock.Any()).Return(domain.ErrInvitationNotFound)

		_, err := f.svc.Accept(ctx, session, service.AcceptInvitationInput{Token: inv.Token})
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		f := newInvitationFixture(t)
		inv := pendingInvitation(time.Hour)

		f.invitations.EXPECT().FindByToken(gomock.Any(), inv.Token).Return(inv, nil)

		_, err := f.svc.Accept(ctx, nil, service.AcceptInvitationInput{
			Token:    inv.Token,
			UserData: &service.AcceptUserData{Password: "password", FullName: "New Member"},
		})
		assert.ErrorIs(t, err, domain.ErrPasswordTooWeak)
	})
}

func TestListInvitations(t *testing.T) {
	f := newInvitationFixture(t)
	callerID, orgID := uuid.New(), uuid.New()
	list := []*model.InvitationToken{pendingInvitation(time.Hour)}

	f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), callerID).
		Return(&model.Membership{OrganizationID: orgID, Role: model.RoleOwner}, nil)
	f.invitations.EXPECT().ListByOrganization(gomock.Any(), orgID).Return(list, nil)

	got, err := f.svc.List(context.Background(), callerID)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

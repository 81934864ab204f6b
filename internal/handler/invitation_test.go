package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateInvitationByNonOwnerIsForbidden(t *testing.T) {
	f := newAPIFixture(t)
	callerID := f.session("member-token", "member@example.com")

	f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), callerID).Return(nil, domain.ErrMembershipNotFound)
	f.invitations.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	rec := f.do(t, http.MethodPost, "/api/invitations/create",
		map[string]string{"email": "new@example.com"}, withToken("member-token"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domain.ErrNotOwner.Error(), decode(t, rec)["error"])
}

func TestCreateInvitationRequiresSession(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/invitations/create", map[string]string{"email": "new@example.com"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateInvitation(t *testing.T) {
	f := newAPIFixture(t)
	ownerID := f.session("owner-token", "owner@example.com")
	orgID := uuid.New()

	f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), ownerID).
		Return(&model.Membership{UserID: ownerID, OrganizationID: orgID, Role: model.RoleOwner, IsActive: true}, nil)
	f.invitations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.orgs.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID, Name: "Acme"}, nil)
	f.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(&model.User{ID: ownerID, FullName: "Olivia Owner"}, nil)

	rec := f.do(t, http.MethodPost, "/api/invitations/create",
		map[string]string{"email": "new@example.com"}, withToken("owner-token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["invitation_link"].(string), "https://app.example.com/invite/"))
	assert.NotEmpty(t, body["expires_at"])
}

func TestValidateInvitation(t *testing.T) {
	orgID := uuid.New()
	newInvitation := func(expiresIn time.Duration) *model.InvitationToken {
		return &model.InvitationToken{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Email:          "invitee@example.com",
			Token:          "tok",
			Status:         model.InvitationPending,
			ExpiresAt:      time.Now().Add(expiresIn),
			Organization:   &model.Organization{ID: orgID, Name: "Acme"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		f := newAPIFixture(t)
		f.invitations.EXPECT().FindByToken(gomock.Any(), "tok").Return(newInvitation(time.Hour), nil)

		rec := f.do(t, http.MethodPost, "/api/invitations/validate", map[string]string{"token": "tok"})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["valid"])
		invitation := body["invitation"].(map[string]interface{})
		assert.Equal(t, "invitee@example.com", invitation["email"])
		assert.Equal(t, "Acme", invitation["organization"].(map[string]interface{})["name"])
	})

	t.Run("expired is gone", func(t *testing.T) {
		f := newAPIFixture(t)
		inv := newInvitation(-time.Minute)
		f.invitations.EXPECT().FindByToken(gomock.Any(), "tok").Return(inv, nil)
		f.invitations.EXPECT().MarkExpired(gomock.Any(), inv.ID).Return(nil)

		rec := f.do(t, http.MethodPost, "/api/invitations/validate", map[string]string{"token": "tok"})

		assert.Equal(t, http.StatusGone, rec.Code)
		assert.Equal(t, domain.ErrInvitationExpired.Error(), decode(t, rec)["error"])
	})

	t.Run("unknown", func(t *testing.T) {
		f := newAPIFixture(t)
		f.invitations.EXPECT().FindByToken(gomock.Any(), "nope").Return(nil, domain.ErrInvitationNotFound)

		rec := f.do(t, http.MethodPost, "/api/invitations/validate", map[string]string{"token": "nope"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAcceptInvitationAnonymousWithoutUserData(t *testing.T) {
	f := newAPIFixture(t)
	orgID := uuid.New()
	f.invitations.EXPECT().FindByToken(gomock.Any(), "tok").Return(&model.InvitationToken{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          "invitee@example.com",
		Token:          "tok",
		Status:         model.InvitationPending,
		ExpiresAt:      time.Now().Add(time.Hour),
	}, nil)
	f.provider.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Times(0)

	rec := f.do(t, http.MethodPost, "/api/invitations/accept", map[string]string{"token": "tok"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.ErrMissingFields.Error(), decode(t, rec)["error"])
}

func TestAcceptInvitationWithSession(t *testing.T) {
	f := newAPIFixture(t)
	userID := f.session("invitee-token", "Invitee@Example.com")
	inv := &model.InvitationToken{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "invitee@example.com",
		Token:          "tok",
		Status:         model.InvitationPending,
		ExpiresAt:      time.Now().Add(time.Hour),
	}

	gomock.InOrder(
		f.invitations.EXPECT().FindByToken(gomock.Any(), "tok").Return(inv, nil),
		f.users.EXPECT().SetActive(gomock.Any(), userID, true).Return(nil),
		f.memberships.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		f.invitations.EXPECT().MarkAccepted(gomock.Any(), inv.ID, gomock.Any()).Return(nil),
	)

	rec := f.do(t, http.MethodPost, "/api/invitations/accept", map[string]string{"token": "tok"}, withToken("invitee-token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, userID.String(), body["user_id"])
	assert.Equal(t, false, body["requires_login"])
}

func TestAcceptInvitationEmailMismatch(t *testing.T) {
	f := newAPIFixture(t)
	f.session("other-token", "someone-else@example.com")
	f.invitations.EXPECT().FindByToken(gomock.Any(), "tok").Return(&model.InvitationToken{
		ID:        uuid.New(),
		Email:     "invitee@example.com",
		Token:     "tok",
		Status:    model.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	f.memberships.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	rec := f.do(t, http.MethodPost, "/api/invitations/accept", map[string]string{"token": "tok"}, withToken("other-token"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListInvitations(t *testing.T) {
	f := newAPIFixture(t)
	ownerID := f.session("owner-token", "owner@example.com")
	orgID := uuid.New()

	f.memberships.EXPECT().FindOwnerByUser(gomock.Any(), ownerID).
		Return(&model.Membership{UserID: ownerID, OrganizationID: orgID, Role: model.RoleOwner, IsActive: true}, nil)
	f.invitations.EXPECT().ListByOrganization(gomock.Any(), orgID).
		Return([]*model.InvitationToken{{Email: "a@example.com"}, {Email: "b@example.com"}}, nil)

	rec := f.do(t, http.MethodGet, "/api/invitations", nil, withToken("owner-token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["invitations"], 2)
}

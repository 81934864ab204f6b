// internal/service/invitation.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/config"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/email"
	"github.com/dangerclosesec/orgmembers/internal/email/mailer"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/saga"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type InvitationService struct {
	repos    Repositories
	identity identity.Provider
	mail     email.Sender
	audit    audit.Logger
	observer saga.Observer
	config   *config.Config
	validate *validator.Validate
	now      func() time.Time
}

func NewInvitationService(
	repos Repositories,
	provider identity.Provider,
	mail email.Sender,
	auditLog audit.Logger,
	observer saga.Observer,
	config *config.Config,
) *InvitationService {
	return &InvitationService{
		repos:    repos,
		identity: provider,
		mail:     mail,
		audit:    auditLog,
		observer: observer,
		config:   config,
		validate: newValidator(),
		now:      time.Now,
	}
}

type CreateInvitationInput struct {
	Email      string     `json:"email" validate:"required,email"`
	PositionID *uuid.UUID `json:"position_id"`
}

type CreateInvitationOutput struct {
	InvitationLink string    `json:"invitation_link"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// Create issues an invitation into the caller's organization. The caller
// must be an active owner.
func (s *InvitationService) Create(ctx context.Context, callerID uuid.UUID, input CreateInvitationInput) (*CreateInvitationOutput, error) {
	owner, err := requireOwner(ctx, s.repos.Memberships, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	inv := &model.InvitationToken{
		ID:             uuid.New(),
		OrganizationID: owner.OrganizationID,
		InvitedBy:      callerID,
		Email:          normalizeEmail(input.Email),
		PositionID:     input.PositionID,
		Token:          token,
		Status:         model.InvitationPending,
		ExpiresAt:      s.now().UTC().Add(s.config.InvitationTTL),
	}

	sg := saga.New(SagaInvitationCreate, saga.WithObserver(s.observer)).
		Add(saga.Step{
			Name: "create_invitation",
			Action: func(ctx context.Context) error {
				return s.repos.Invitations.Create(ctx, inv)
			},
		})
	if err := runSaga(ctx, sg, s.audit); err != nil {
		return nil, err
	}

	link := s.config.SiteURL + "/invite/" + token
	slog.InfoContext(ctx, "invitation created",
		"invitationID", inv.ID,
		"organizationID", inv.OrganizationID,
		"email", inv.Email,
		"expiresAt", inv.ExpiresAt,
	)

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:   &callerID,
		Action:   model.ActionInvitationCreated,
		Table:    "invitation_tokens",
		RecordID: inv.ID.String(),
		NewValues: map[string]interface{}{
			"email":           inv.Email,
			"organization_id": inv.OrganizationID.String(),
		},
	})

	s.sendInvitation(ctx, inv, callerID, link)

	return &CreateInvitationOutput{InvitationLink: link, ExpiresAt: inv.ExpiresAt}, nil
}

func (s *InvitationService) sendInvitation(ctx context.Context, inv *model.InvitationToken, inviterID uuid.UUID, link string) {
	data := mailer.InvitationTemplateData{InvitationLink: link, ExpiresAt: inv.ExpiresAt}

	if org, err := s.repos.Organizations.FindByID(ctx, inv.OrganizationID); err == nil {
		data.OrganizationName = org.Name
	}
	if inviter, err := s.repos.Users.FindByID(ctx, inviterID); err == nil {
		data.InviterName = inviter.FullName
	}

	if err := mailer.SendInvitation(ctx, s.mail, inv.Email, data); err != nil {
		slog.WarnContext(ctx, "failed to send invitation email", "invitationID", inv.ID, "error", err)
	}
}

type InvitationSummary struct {
	Email        string                 `json:"email"`
	Organization InvitationOrganization `json:"organization"`
	Position     *InvitationPosition    `json:"position"`
	ExpiresAt    time.Time              `json:"expires_at"`
}

type InvitationOrganization struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	LogoURL *string   `json:"logo_url"`
}

type InvitationPosition struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// Validate looks up a pending invitation. An invitation past its expiry is
// flipped to expired on the spot and reported as gone; an accepted one is
// not found.
func (s *InvitationService) Validate(ctx context.Context, token string) (*InvitationSummary, error) {
	inv, err := s.pendingInvitation(ctx, token)
	if err != nil {
		return nil, err
	}

	summary := &InvitationSummary{
		Email:     inv.Email,
		ExpiresAt: inv.ExpiresAt,
	}
	summary.Organization.ID = inv.OrganizationID
	if inv.Organization != nil {
		summary.Organization.Name = inv.Organization.Name
		summary.Organization.LogoURL = inv.Organization.LogoURL
	}
	if inv.Position != nil {
		summary.Position = &InvitationPosition{ID: inv.Position.ID, Title: inv.Position.Title}
	}
	return summary, nil
}

func (s *InvitationService) pendingInvitation(ctx context.Context, token string) (*model.InvitationToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrMissingFields
	}

	inv, err := s.repos.Invitations.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	// Past expires_at is gone whatever the stored status; only pending rows flip.
	switch {
	case inv.Status == model.InvitationExpired:
		return nil, domain.ErrInvitationExpired
	case inv.Expired(s.now()):
		if inv.Status == model.InvitationPending {
			s.expire(ctx, inv)
		}
		return nil, domain.ErrInvitationExpired
	case inv.Status != model.InvitationPending:
		return nil, domain.ErrInvitationNotFound
	}
	return inv, nil
}

// expire flips a pending invitation to expired. A concurrent transition is
// not an error here; the caller reports the invitation as gone either way.
func (s *InvitationService) expire(ctx context.Context, inv *model.InvitationToken) {
	err := s.repos.Invitations.MarkExpired(ctx, inv.ID)
	switch {
	case err == nil:
		audit.Safe(ctx, s.audit, audit.Entry{
			Action:    model.ActionInvitationExpired,
			Table:     "invitation_tokens",
			RecordID:  inv.ID.String(),
			OldValues: map[string]interface{}{"status": string(model.InvitationPending)},
			NewValues: map[string]interface{}{"status": string(model.InvitationExpired)},
		})
	case errors.Is(err, domain.ErrInvitationNotFound):
	default:
		slog.WarnContext(ctx, "failed to mark invitation expired", "invitationID", inv.ID, "error", err)
	}
}

type AcceptUserData struct {
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

type AcceptInvitationInput struct {
	Token    string          `json:"token"`
	UserData *AcceptUserData `json:"user_data"`
}

type AcceptInvitationOutput struct {
	UserID        uuid.UUID `json:"user_id"`
	RequiresLogin bool      `json:"requires_login"`
}

// Accept redeems an invitation. Without a session a new account and active
// profile are created from user_data; with one, the session email must match
// the invitation. Either way the caller becomes a member.
func (s *InvitationService) Accept(ctx context.Context, session *identity.Session, input AcceptInvitationInput) (*AcceptInvitationOutput, error) {
	inv, err := s.pendingInvitation(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	var (
		userID uuid.UUID
		sg     = saga.New(SagaInvitationAccept, saga.WithObserver(s.observer))
	)

	if session == nil {
		data := input.UserData
		if data == nil || data.Password == "" || strings.TrimSpace(data.FullName) == "" {
			return nil, domain.ErrMissingFields
		}
		if err := s.validate.Struct(data); err != nil {
			return nil, validationError(err)
		}
		if err := checkPassword(data.Password); err != nil {
			return nil, err
		}

		var account *identity.Account
		sg.Add(saga.Step{
			Name: "create_account",
			Action: func(ctx context.Context) error {
				a, err := s.identity.CreateAccount(ctx, identity.CreateAccountInput{
					Email:          inv.Email,
					Password:       data.Password,
					FullName:       data.FullName,
					EmailConfirmed: true,
				})
				if err != nil {
					return err
				}
				account = a
				userID = a.ID
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.identity.DeleteAccount(ctx, account.ID)
			},
		}).Add(saga.Step{
			Name:  "create_profile",
			Pivot: true,
			Action: func(ctx context.Context) error {
				return s.repos.Users.Create(ctx, &model.User{
					ID:       account.ID,
					Email:    inv.Email,
					FullName: strings.TrimSpace(data.FullName),
					Phone:    optional(data.Phone),
					IsActive: true,
				})
			},
		})
	} else {
		if !strings.EqualFold(strings.TrimSpace(session.Account.Email), inv.Email) {
			return nil, domain.ErrEmailMismatch
		}
		userID = session.Account.ID
		sg.Add(saga.Step{
			Name: "activate_profile",
			Action: func(ctx context.Context) error {
				return s.repos.Users.SetActive(ctx, userID, true)
			},
		})
	}

	acceptedAt := s.now().UTC()
	sg.Add(saga.Step{
		Name: "create_membership",
		Action: func(ctx context.Context) error {
			return s.repos.Memberships.Create(ctx, &model.Membership{
				ID:             uuid.New(),
				UserID:         userID,
				OrganizationID: inv.OrganizationID,
				PositionID:     inv.PositionID,
				Role:           model.RoleMember,
				IsActive:       true,
				StartDate:      acceptedAt,
			})
		},
	}).Add(saga.Step{
		Name: "mark_accepted",
		Action: func(ctx context.Context) error {
			return s.repos.Invitations.MarkAccepted(ctx, inv.ID, acceptedAt)
		},
	})

	if err := runSaga(ctx, sg, s.audit); err != nil {
		return nil, err
	}

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:    &userID,
		Action:    model.ActionInvitationAccepted,
		Table:     "invitation_tokens",
		RecordID:  inv.ID.String(),
		OldValues: map[string]interface{}{"status": string(model.InvitationPending)},
		NewValues: map[string]interface{}{"status": string(model.InvitationAccepted)},
	})

	return &AcceptInvitationOutput{UserID: userID, RequiresLogin: session == nil}, nil
}

// List returns the invitations of the caller's organization.
func (s *InvitationService) List(ctx context.Context, callerID uuid.UUID) ([]*model.InvitationToken, error) {
	owner, err := requireOwner(ctx, s.repos.Memberships, callerID)
	if err != nil {
		return nil, err
	}
	return s.repos.Invitations.ListByOrganization(ctx, owner.OrganizationID)
}

// internal/service/registration.go
package service

import (
	"context"
	"fmt"
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

// Saga names, also used as metric and audit labels.
const (
	SagaOwnerBootstrap     = "owner_bootstrap"
	SagaMemberRegistration = "member_registration"
	SagaSimpleRegistration = "simple_registration"
	SagaInvitationCreate   = "invitation_create"
	SagaInvitationAccept   = "invitation_accept"
	SagaRequestApprove     = "request_approve"
	SagaRequestReject      = "request_reject"
)

type RegistrationService struct {
	repos    Repositories
	identity identity.Provider
	mail     email.Sender
	audit    audit.Logger
	observer saga.Observer
	config   *config.Config
	validate *validator.Validate
	now      func() time.Time
}

func NewRegistrationService(
	repos Repositories,
	provider identity.Provider,
	mail email.Sender,
	auditLog audit.Logger,
	observer saga.Observer,
	config *config.Config,
) *RegistrationService {
	return &RegistrationService{
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

type RegisterOwnerInput struct {
	FullName         string     `json:"full_name" validate:"required,notblank"`
	Email            string     `json:"email" validate:"required,email"`
	Password         string     `json:"password" validate:"required"`
	Phone            string     `json:"phone" validate:"omitempty,phone"`
	OrganizationName string     `json:"organization_name" validate:"required,notblank"`
	IndustryID       *uuid.UUID `json:"industry_id"`
	Size             string     `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	City             string     `json:"city"`
	Country          string     `json:"country"`
	Website          string     `json:"website" validate:"omitempty,url"`
	Description      string     `json:"description"`
}

type RegisterOwnerOutput struct {
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

// RegisterOwner creates an account, its organization and the single owner
// membership. Only the account is compensated; an organization left behind
// by a later failure is logged and kept.
func (s *RegistrationService) RegisterOwner(ctx context.Context, input RegisterOwnerInput) (*RegisterOwnerOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	slug := GenerateSlug(input.OrganizationName)
	if slug == "" {
		return nil, domain.ErrEmptySlug
	}

	addr := normalizeEmail(input.Email)
	var (
		account  *identity.Account
		org      *model.Organization
		location *model.Location
	)

	sg := saga.New(SagaOwnerBootstrap, saga.WithObserver(s.observer)).
		Add(s.createAccountStep(&account, identity.CreateAccountInput{
			Email:          addr,
			Password:       input.Password,
			FullName:       input.FullName,
			EmailConfirmed: true,
		})).
		Add(saga.Step{
			Name: "create_organization",
			Action: func(ctx context.Context) error {
				org = &model.Organization{
					ID:       uuid.New(),
					Name:     strings.TrimSpace(input.OrganizationName),
					Slug:     slug,
					IsActive: true,
				}
				return s.repos.Organizations.Create(ctx, org)
			},
		}).
		Add(saga.Step{
			Name:     "create_location",
			Optional: true,
			Action: func(ctx context.Context) error {
				if strings.TrimSpace(input.City) == "" || strings.TrimSpace(input.Country) == "" {
					return nil
				}
				loc := &model.Location{
					ID:      uuid.New(),
					City:    strings.TrimSpace(input.City),
					Country: strings.TrimSpace(input.Country),
				}
				if err := s.repos.Organizations.CreateLocation(ctx, loc); err != nil {
					return err
				}
				location = loc
				return nil
			},
		}).
		Add(saga.Step{
			Name:     "create_details",
			Optional: true,
			Action: func(ctx context.Context) error {
				details := &model.OrganizationDetails{
					OrganizationID: org.ID,
					IndustryID:     input.IndustryID,
					Website:        optional(input.Website),
					Description:    optional(input.Description),
				}
				if location != nil {
					details.LocationID = &location.ID
				}
				if input.Size != "" {
					size := model.OrganizationSize(input.Size)
					details.Size = &size
				}
				return s.repos.Organizations.CreateDetails(ctx, details)
			},
		}).
		Add(saga.Step{
			Name: "create_profile",
			Action: func(ctx context.Context) error {
				return s.repos.Users.Create(ctx, &model.User{
					ID:       account.ID,
					Email:    addr,
					FullName: strings.TrimSpace(input.FullName),
					Phone:    optional(input.Phone),
					IsActive: true,
				})
			},
		}).
		Add(saga.Step{
			Name: "create_owner_membership",
			Action: func(ctx context.Context) error {
				return s.repos.Memberships.Create(ctx, &model.Membership{
					ID:             uuid.New(),
					UserID:         account.ID,
					OrganizationID: org.ID,
					Role:           model.RoleOwner,
					IsActive:       true,
					StartDate:      s.now().UTC(),
				})
			},
		})

	if err := runSaga(ctx, sg, s.audit); err != nil {
		return nil, err
	}

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:   &account.ID,
		Action:   model.ActionOwnerRegistered,
		Table:    "organizations",
		RecordID: org.ID.String(),
		NewValues: map[string]interface{}{
			"name": org.Name,
			"slug": org.Slug,
		},
	})

	return &RegisterOwnerOutput{UserID: account.ID, OrganizationID: org.ID}, nil
}

type JoinRequestInput struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	PositionID     *uuid.UUID `json:"position_id"`
	Message        string     `json:"message"`
}

type RegisterMemberInput struct {
	FullName string             `json:"full_name" validate:"required,notblank"`
	Email    string             `json:"email" validate:"required,email"`
	Password string             `json:"password" validate:"required"`
	Phone    string             `json:"phone" validate:"omitempty,phone"`
	Requests []JoinRequestInput `json:"requests" validate:"required,min=1,dive"`
}

type RegisterMemberOutput struct {
	UserID uuid.UUID `json:"user_id"`
}

// RegisterMember creates an unconfirmed account with an inactive profile and
// one pending join request per requested organization.
func (s *RegistrationService) RegisterMember(ctx context.Context, input RegisterMemberInput) (*RegisterMemberOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	addr := normalizeEmail(input.Email)
	var account *identity.Account
	var requests []*model.JoinRequest

	sg := saga.New(SagaMemberRegistration, saga.WithObserver(s.observer)).
		Add(s.createAccountStep(&account, identity.CreateAccountInput{
			Email:    addr,
			Password: input.Password,
			FullName: input.FullName,
		})).
		Add(saga.Step{
			Name: "create_profile",
			Action: func(ctx context.Context) error {
				return s.repos.Users.Create(ctx, s.inactiveProfile(account.ID, addr, input.FullName, input.Phone))
			},
			Compensate: func(ctx context.Context) error {
				return s.repos.Users.Delete(ctx, account.ID)
			},
		}).
		Add(saga.Step{
			Name: "create_join_requests",
			Action: func(ctx context.Context) error {
				requests = make([]*model.JoinRequest, 0, len(input.Requests))
				for _, r := range input.Requests {
					requests = append(requests, &model.JoinRequest{
						ID:             uuid.New(),
						UserID:         account.ID,
						OrganizationID: r.OrganizationID,
						PositionID:     r.PositionID,
						Message:        optional(r.Message),
						Status:         model.RequestPending,
					})
				}
				return s.repos.JoinRequests.CreateBatch(ctx, requests)
			},
		})

	if err := runSaga(ctx, sg, s.audit); err != nil {
		return nil, err
	}

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:   &account.ID,
		Action:   model.ActionMemberRegistered,
		Table:    "join_requests",
		RecordID: account.ID.String(),
		NewValues: map[string]interface{}{
			"requests": len(requests),
		},
	})

	s.sendConfirmation(ctx, addr, input.FullName)
	for _, r := range requests {
		s.notifyOwners(ctx, r, input.FullName, addr)
	}

	return &RegisterMemberOutput{UserID: account.ID}, nil
}

type RegisterSimpleInput struct {
	FullName string `json:"full_name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

// RegisterMemberSimple creates a confirmed account with an inactive profile
// that waits for an invitation.
func (s *RegistrationService) RegisterMemberSimple(ctx context.Context, input RegisterSimpleInput) (*RegisterMemberOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	addr := normalizeEmail(input.Email)
	var account *identity.Account

	sg := saga.New(SagaSimpleRegistration, saga.WithObserver(s.observer)).
		Add(s.createAccountStep(&account, identity.CreateAccountInput{
			Email:          addr,
			Password:       input.Password,
			FullName:       input.FullName,
			EmailConfirmed: true,
		})).
		Add(saga.Step{
			Name: "create_profile",
			Action: func(ctx context.Context) error {
				return s.repos.Users.Create(ctx, s.inactiveProfile(account.ID, addr, input.FullName, input.Phone))
			},
		})

	if err := runSaga(ctx, sg, s.audit); err != nil {
		return nil, err
	}

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:   &account.ID,
		Action:   model.ActionMemberRegistered,
		Table:    "users",
		RecordID: account.ID.String(),
	})

	return &RegisterMemberOutput{UserID: account.ID}, nil
}

func (s *RegistrationService) createAccountStep(out **identity.Account, in identity.CreateAccountInput) saga.Step {
	return saga.Step{
		Name: "create_account",
		Action: func(ctx context.Context) error {
			a, err := s.identity.CreateAccount(ctx, in)
			if err != nil {
				return fmt.Errorf("could not create account: %w", err)
			}
			*out = a
			return nil
		},
		Compensate: func(ctx context.Context) error {
			return s.identity.DeleteAccount(ctx, (*out).ID)
		},
	}
}

func (s *RegistrationService) inactiveProfile(id uuid.UUID, addr, fullName, phone string) *model.User {
	return &model.User{
		ID:       id,
		Email:    addr,
		FullName: strings.TrimSpace(fullName),
		Phone:    optional(phone),
		IsActive: false,
	}
}

func (s *RegistrationService) sendConfirmation(ctx context.Context, addr, fullName string) {
	err := mailer.SendAccountConfirmation(ctx, s.mail, addr, mailer.ConfirmationTemplateData{
		FullName:         fullName,
		ConfirmationLink: s.config.SiteURL + "/login",
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to send account confirmation", "email", addr, "error", err)
	}
}

// notifyOwners emails every active owner of the requested organization.
// Failures are logged; the join request already exists.
func (s *RegistrationService) notifyOwners(ctx context.Context, req *model.JoinRequest, requesterName, requesterEmail string) {
	owners, err := s.repos.Memberships.ListOwners(ctx, req.OrganizationID)
	if err != nil {
		slog.WarnContext(ctx, "failed to list owners for notification", "organizationID", req.OrganizationID, "error", err)
		return
	}
	if len(owners) == 0 {
		return
	}

	org, err := s.repos.Organizations.FindByID(ctx, req.OrganizationID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load organization for notification", "organizationID", req.OrganizationID, "error", err)
		return
	}

	message := ""
	if req.Message != nil {
		message = *req.Message
	}

	for _, owner := range owners {
		if owner.User == nil {
			continue
		}
		err := mailer.SendJoinRequestNotification(ctx, s.mail, owner.User.Email, mailer.JoinRequestTemplateData{
			OrganizationName: org.Name,
			RequesterName:    requesterName,
			RequesterEmail:   requesterEmail,
			Message:          message,
			ReviewLink:       s.config.SiteURL + "/dashboard/requests",
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to notify owner", "organizationID", org.ID, "ownerID", owner.UserID, "error", err)
		}
	}
}

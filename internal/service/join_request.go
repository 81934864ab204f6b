// internal/service/join_request.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/config"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/saga"
	"github.com/google/uuid"
)

type JoinRequestService struct {
	repos    Repositories
	identity identity.Provider
	audit    audit.Logger
	observer saga.Observer
	config   *config.Config
	now      func() time.Time
}

func NewJoinRequestService(
	repos Repositories,
	provider identity.Provider,
	auditLog audit.Logger,
	observer saga.Observer,
	config *config.Config,
) *JoinRequestService {
	return &JoinRequestService{
		repos:    repos,
		identity: provider,
		audit:    auditLog,
		observer: observer,
		config:   config,
		now:      time.Now,
	}
}

// Approve activates the requester, makes them a member of the caller's
// organization and closes the request. A profile activated before a failed
// membership insert is left active and logged.
func (s *JoinRequestService) Approve(ctx context.Context, callerID, requestID uuid.UUID) (*model.User, error) {
	if requestID == uuid.Nil {
		return nil, domain.ErrMissingFields
	}

	owner, err := requireOwner(ctx, s.repos.Memberships, callerID)
	if err != nil {
		return nil, err
	}

	req, err := s.repos.JoinRequests.FindPending(ctx, requestID, owner.OrganizationID)
	if err != nil {
		return nil, err
	}

	reviewedAt := s.now().UTC()
	sg := saga.New(SagaRequestApprove, saga.WithObserver(s.observer)).
		Add(saga.Step{
			Name: "activate_profile",
			Action: func(ctx context.Context) error {
				return s.repos.Users.SetActive(ctx, req.UserID, true)
			},
		}).
		Add(saga.Step{
			Name: "create_membership",
			Action: func(ctx context.Context) error {
				return s.repos.Memberships.Create(ctx, &model.Membership{
					ID:             uuid.New(),
					UserID:         req.UserID,
					OrganizationID: req.OrganizationID,
					PositionID:     req.PositionID,
					Role:           model.RoleMember,
					IsActive:       true,
					StartDate:      reviewedAt,
				})
			},
		}).
		Add(saga.Step{
			Name: "mark_approved",
			Action: func(ctx context.Context) error {
				return s.repos.JoinRequests.Review(ctx, req.ID, req.OrganizationID, model.RequestApproved, callerID, reviewedAt)
			},
		})

	if err := runSaga(ctx, sg, s.audit); err != nil {
		return nil, err
	}

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:    &callerID,
		Action:    model.ActionRequestApproved,
		Table:     "join_requests",
		RecordID:  req.ID.String(),
		OldValues: map[string]interface{}{"status": string(model.RequestPending)},
		NewValues: map[string]interface{}{"status": string(model.RequestApproved), "user_id": req.UserID.String()},
	})

	user := req.User
	if user == nil {
		user = &model.User{ID: req.UserID}
	}
	user.IsActive = true

	if user.Email != "" {
		if err := s.identity.SendRecoveryEmail(ctx, user.Email, s.config.SiteURL+"/login"); err != nil {
			slog.WarnContext(ctx, "failed to send password setup email",
				"requestID", audit.MetaFrom(ctx).RequestID,
				"userID", user.ID,
				"error", err,
			)
		}
	}

	return user, nil
}

// Reject closes a pending request of the caller's organization. A request
// that is no longer pending is reported as not found.
func (s *JoinRequestService) Reject(ctx context.Context, callerID, requestID uuid.UUID) error {
	if requestID == uuid.Nil {
		return domain.ErrMissingFields
	}

	owner, err := requireOwner(ctx, s.repos.Memberships, callerID)
	if err != nil {
		return err
	}

	sg := saga.New(SagaRequestReject, saga.WithObserver(s.observer)).
		Add(saga.Step{
			Name: "mark_rejected",
			Action: func(ctx context.Context) error {
				return s.repos.JoinRequests.Review(ctx, requestID, owner.OrganizationID, model.RequestRejected, callerID, s.now().UTC())
			},
		})

	if err := runSaga(ctx, sg, s.audit); err != nil {
		return err
	}

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:    &callerID,
		Action:    model.ActionRequestRejected,
		Table:     "join_requests",
		RecordID:  requestID.String(),
		OldValues: map[string]interface{}{"status": string(model.RequestPending)},
		NewValues: map[string]interface{}{"status": string(model.RequestRejected)},
	})
	return nil
}

// ListPending returns the pending requests of the caller's organization.
func (s *JoinRequestService) ListPending(ctx context.Context, callerID uuid.UUID) ([]*model.JoinRequest, error) {
	owner, err := requireOwner(ctx, s.repos.Memberships, callerID)
	if err != nil {
		return nil, err
	}
	return s.repos.JoinRequests.ListPending(ctx, owner.OrganizationID)
}

// internal/service/admin.go
package service

import (
	"context"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/google/uuid"
)

// recentWindow bounds the "recent organizations" stat.
const recentWindow = 30 * 24 * time.Hour

// AdminService backs the super admin screens. Callers are authorized by
// middleware before any method here runs.
type AdminService struct {
	repos Repositories
	audit audit.Logger
	now   func() time.Time
}

func NewAdminService(repos Repositories, auditLog audit.Logger) *AdminService {
	return &AdminService{repos: repos, audit: auditLog, now: time.Now}
}

func (s *AdminService) Stats(ctx context.Context) (*repository.Stats, error) {
	return s.repos.Stats.Collect(ctx, s.now().Add(-recentWindow))
}

// Page is one page of a listing.
type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

func (s *AdminService) Users(ctx context.Context, offset, limit int) (*Page[*model.User], error) {
	users, total, err := s.repos.Users.FindAllPaginated(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*model.User]{Items: users, Total: total, Offset: offset, Limit: limit}, nil
}

func (s *AdminService) Organizations(ctx context.Context, offset, limit int) (*Page[*repository.OrganizationListing], error) {
	orgs, total, err := s.repos.Organizations.FindAllPaginated(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*repository.OrganizationListing]{Items: orgs, Total: total, Offset: offset, Limit: limit}, nil
}

func (s *AdminService) AuditLogs(ctx context.Context, query repository.AuditQuery) (*Page[model.AuditLog], error) {
	logs, total, err := s.repos.AuditLogs.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Page[model.AuditLog]{Items: logs, Total: total, Offset: query.Offset, Limit: query.Limit}, nil
}

// SetUserActive toggles a profile. actorID is nil for the operator credential.
func (s *AdminService) SetUserActive(ctx context.Context, actorID *uuid.UUID, userID uuid.UUID, active bool) error {
	if err := s.repos.Users.SetActive(ctx, userID, active); err != nil {
		return err
	}

	audit.Safe(ctx, s.audit, audit.Entry{
		UserID:    actorID,
		Action:    model.ActionUserStatusChanged,
		Table:     "users",
		RecordID:  userID.String(),
		NewValues: map[string]interface{}{"is_active": active},
	})
	return nil
}

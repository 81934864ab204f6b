// internal/repository/join_request.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JoinRequestRepositoryIface interface {
	CreateBatch(ctx context.Context, requests []*model.JoinRequest) error
	FindPending(ctx context.Context, id, orgID uuid.UUID) (*model.JoinRequest, error)
	Review(ctx context.Context, id, orgID uuid.UUID, status model.RequestStatus, reviewer uuid.UUID, at time.Time) error
	ListPending(ctx context.Context, orgID uuid.UUID) ([]*model.JoinRequest, error)
}

type JoinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

func (r *JoinRequestRepository) CreateBatch(ctx context.Context, requests []*model.JoinRequest) error {
	if len(requests) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit("User", "Position").Create(&requests).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownReference
		}
		return fmt.Errorf("creating join requests: %w", err)
	}
	return nil
}

// FindPending loads a pending request of orgID together with the requester profile.
func (r *JoinRequestRepository) FindPending(ctx context.Context, id, orgID uuid.UUID) (*model.JoinRequest, error) {
	var req model.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND organization_id = ? AND status = ?", id, orgID, model.RequestPending).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("finding join request: %w", err)
	}
	return &req, nil
}

// Review moves a pending request to a terminal status. The status filter makes
// it a compare-and-set: a request that is no longer pending matches no row and
// is reported as not found.
func (r *JoinRequestRepository) Review(ctx context.Context, id, orgID uuid.UUID, status model.RequestStatus, reviewer uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("id = ? AND organization_id = ? AND status = ?", id, orgID, model.RequestPending).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewer,
			"reviewed_at": at,
			"updated_at":  at,
		})
	if result.Error != nil {
		return fmt.Errorf("reviewing join request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *JoinRequestRepository) ListPending(ctx context.Context, orgID uuid.UUID) ([]*model.JoinRequest, error) {
	var requests []*model.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Position").
		Where("organization_id = ? AND status = ?", orgID, model.RequestPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("listing join requests: %w", err)
	}
	return requests, nil
}

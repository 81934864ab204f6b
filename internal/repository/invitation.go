// internal/repository/invitation.go
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

type InvitationRepositoryIface interface {
	Create(ctx context.Context, inv *model.InvitationToken) error
	FindByToken(ctx context.Context, token string) (*model.InvitationToken, error)
	MarkExpired(ctx context.Context, id uuid.UUID) error
	MarkAccepted(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.InvitationToken, error)
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *model.InvitationToken) error {
	if err := r.db.WithContext(ctx).Omit("Organization", "Position").Create(inv).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownReference
		}
		return fmt.Errorf("creating invitation: %w", err)
	}
	return nil
}

// FindByToken loads an invitation in any status with its organization and position.
func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (*model.InvitationToken, error) {
	var inv model.InvitationToken
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("Position").
		Where("token = ?", token).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation: %w", err)
	}
	return &inv, nil
}

func (r *InvitationRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, map[string]interface{}{"status": model.InvitationExpired})
}

func (r *InvitationRepository) MarkAccepted(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.transition(ctx, id, map[string]interface{}{"status": model.InvitationAccepted, "accepted_at": at})
}

// transition updates a pending invitation only; zero matched rows means
// another request already moved it.
func (r *InvitationRepository) transition(ctx context.Context, id uuid.UUID, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.InvitationToken{}).
		Where("id = ? AND status = ?", id, model.InvitationPending).
		Updates(values)
	if result.Error != nil {
		return fmt.Errorf("updating invitation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

func (r *InvitationRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.InvitationToken, error) {
	var invitations []*model.InvitationToken
	err := r.db.WithContext(ctx).
		Preload("Position").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return invitations, nil
}

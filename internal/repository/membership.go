// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindOwnerByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
	ListOwners(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership. A second active membership for the same user
// and organization is rejected by the partial unique index.
func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	err := r.db.WithContext(ctx).Omit("User", "Organization", "Position").Create(membership).Error
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrAlreadyMember
	case isForeignKeyViolation(err):
		return domain.ErrUnknownReference
	default:
		return fmt.Errorf("creating membership: %w", err)
	}
}

// FindOwnerByUser returns the caller's active owner membership.
func (r *MembershipRepository) FindOwnerByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ? AND is_active = ?", userID, model.RoleOwner, true).
		Order("created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding owner membership: %w", err)
	}
	return &m, nil
}

// ListOwners returns the active owners of an organization with their profiles.
func (r *MembershipRepository) ListOwners(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var owners []*model.Membership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ? AND role = ? AND is_active = ?", orgID, model.RoleOwner, true).
		Find(&owners).Error
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	return owners, nil
}

// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	CreateLocation(ctx context.Context, loc *model.Location) error
	CreateDetails(ctx context.Context, details *model.OrganizationDetails) error
	ListActive(ctx context.Context) ([]*model.Organization, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*OrganizationListing, int64, error)
}

// OrganizationListing is an organization with its active member count.
type OrganizationListing struct {
	*model.Organization
	MemberCount int64 `json:"member_count"`
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Omit("Details", "Memberships").Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) CreateLocation(ctx context.Context, loc *model.Location) error {
	if err := r.db.WithContext(ctx).Create(loc).Error; err != nil {
		return fmt.Errorf("creating location: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) CreateDetails(ctx context.Context, details *model.OrganizationDetails) error {
	if err := r.db.WithContext(ctx).Omit("Industry", "Location").Create(details).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownReference
		}
		return fmt.Errorf("creating organization details: %w", err)
	}
	return nil
}

// ListActive returns active organizations ordered by name.
func (r *OrganizationRepository) ListActive(ctx context.Context) ([]*model.Organization, error) {
	var orgs []*model.Organization
	result := r.db.WithContext(ctx).
		Select("id", "name", "slug", "logo_url", "is_active").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&orgs)
	if result.Error != nil {
		return nil, fmt.Errorf("listing active organizations: %w", result.Error)
	}
	return orgs, nil
}

// FindAllPaginated returns organizations newest first with details and member counts.
func (r *OrganizationRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*OrganizationListing, int64, error) {
	var orgs []*model.Organization
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Organization{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	offset, limit = page(offset, limit)
	result := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Details.Industry").
		Preload("Details.Location").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orgs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated organizations: %w", result.Error)
	}

	listings := make([]*OrganizationListing, 0, len(orgs))
	if len(orgs) == 0 {
		return listings, count, nil
	}

	ids := make([]uuid.UUID, 0, len(orgs))
	for _, org := range orgs {
		ids = append(ids, org.ID)
	}

	var counts []struct {
		OrganizationID uuid.UUID
		Members        int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("organization_id, count(*) AS members").
		Where("is_active = ? AND organization_id IN ?", true, ids).
		Group("organization_id").
		Scan(&counts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count organization members: %w", err)
	}

	byOrg := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byOrg[c.OrganizationID] = c.Members
	}
	for _, org := range orgs {
		listings = append(listings, &OrganizationListing{Organization: org, MemberCount: byOrg[org.ID]})
	}

	return listings, count, nil
}

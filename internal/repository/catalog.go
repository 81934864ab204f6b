// internal/repository/catalog.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/orgmembers/internal/model"
	"gorm.io/gorm"
)

// CatalogRepositoryIface reads the shared lookup tables.
type CatalogRepositoryIface interface {
	ListPositions(ctx context.Context) ([]*model.Position, error)
	ListIndustries(ctx context.Context) ([]*model.Industry, error)
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListPositions(ctx context.Context) ([]*model.Position, error) {
	var positions []*model.Position
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&positions).Error; err != nil {
		return nil, fmt.Errorf("listing positions: %w", err)
	}
	return positions, nil
}

func (r *CatalogRepository) ListIndustries(ctx context.Context) ([]*model.Industry, error) {
	var industries []*model.Industry
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&industries).Error; err != nil {
		return nil, fmt.Errorf("listing industries: %w", err)
	}
	return industries, nil
}

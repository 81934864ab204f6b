// internal/service/catalog.go
package service

import (
	"context"

	"github.com/dangerclosesec/orgmembers/internal/model"
)

const (
	cacheKeyOrganizations = "catalog:organizations"
	cacheKeyPositions     = "catalog:positions"
	cacheKeyIndustries    = "catalog:industries"
)

// CatalogService serves the public lists shown on the registration screens.
type CatalogService struct {
	repos Repositories
	cache *CacheService
}

// NewCatalogService creates the service. cache may be nil.
func NewCatalogService(repos Repositories, cache *CacheService) *CatalogService {
	return &CatalogService{repos: repos, cache: cache}
}

// Organizations returns active organizations ordered by name.
func (s *CatalogService) Organizations(ctx context.Context) ([]*model.Organization, error) {
	var orgs []*model.Organization
	err := s.cached(ctx, cacheKeyOrganizations, &orgs, func() (interface{}, error) {
		return s.repos.Organizations.ListActive(ctx)
	})
	return orgs, err
}

// Positions returns every position ordered by title.
func (s *CatalogService) Positions(ctx context.Context) ([]*model.Position, error) {
	var positions []*model.Position
	err := s.cached(ctx, cacheKeyPositions, &positions, func() (interface{}, error) {
		return s.repos.Catalog.ListPositions(ctx)
	})
	return positions, err
}

// Industries returns every industry ordered by name.
func (s *CatalogService) Industries(ctx context.Context) ([]*model.Industry, error) {
	var industries []*model.Industry
	err := s.cached(ctx, cacheKeyIndustries, &industries, func() (interface{}, error) {
		return s.repos.Catalog.ListIndustries(ctx)
	})
	return industries, err
}

func (s *CatalogService) cached(ctx context.Context, key string, result interface{}, fetch func() (interface{}, error)) error {
	if s.cache == nil {
		value, err := fetch()
		if err != nil {
			return err
		}
		return assign(value, result)
	}
	return s.cache.GetOrSet(ctx, key, result, fetch)
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/cache"
	"github.com/dangerclosesec/orgmembers/internal/mocks"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogServiceCachesLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)
	catalog := mocks.NewMockCatalogRepositoryIface(ctrl)

	backend := cache.NewInMemoryCache(0)
	backend.StartCleanup(context.Background())
	cacheSvc := service.NewCacheService(backend, service.CacheConfig{TTL: time.Minute})
	defer cacheSvc.Close()

	svc := service.NewCatalogService(service.Repositories{Organizations: orgs, Catalog: catalog}, cacheSvc)
	ctx := context.Background()

	acme := &model.Organization{ID: uuid.New(), Name: "Acme", Slug: "acme", IsActive: true}
	orgs.EXPECT().ListActive(gomock.Any()).Return([]*model.Organization{acme}, nil).Times(1)
	catalog.EXPECT().ListPositions(gomock.Any()).
		Return([]*model.Position{{ID: uuid.New(), Title: "Engineer", Level: model.LevelMid}}, nil).Times(1)
	catalog.EXPECT().ListIndustries(gomock.Any()).
		Return([]*model.Industry{{ID: uuid.New(), Name: "Software"}}, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := svc.Organizations(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "acme", got[0].Slug)

		positions, err := svc.Positions(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Engineer", positions[0].Title)

		industries, err := svc.Industries(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Software", industries[0].Name)
	}
}

func TestCatalogServiceWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogRepositoryIface(ctrl)
	svc := service.NewCatalogService(service.Repositories{Catalog: catalog}, nil)

	catalog.EXPECT().ListPositions(gomock.Any()).Return(nil, errors.New("db down"))
	_, err := svc.Positions(context.Background())
	assert.Error(t, err)

	catalog.EXPECT().ListPositions(gomock.Any()).Return([]*model.Position{{Title: "Manager"}}, nil).Times(2)
	for i := 0; i < 2; i++ {
		got, err := svc.Positions(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Manager", got[0].Title)
	}
}

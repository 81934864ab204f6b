// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/cache"
	"github.com/dangerclosesec/orgmembers/internal/domain"
)

// CacheService stores JSON encoded values in a cache backend.
type CacheService struct {
	backend cache.Backend
	ttl     time.Duration
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL time.Duration
}

func NewCacheService(backend cache.Backend, config CacheConfig) *CacheService {
	return &CacheService{backend: backend, ttl: config.TTL}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}
	return s.backend.Set(ctx, key, data, s.ttl)
}

// Get decodes a cached value into result. A miss returns domain.ErrNotFound.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}

// GetOrSet fills result from the cache or from fetch. Cache backend errors
// are logged and fall through to fetch.
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetch func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	if err := s.Set(ctx, key, value); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return assign(value, result)
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return s.backend.Delete(ctx, key)
}

// Close releases the backend
func (s *CacheService) Close() error {
	return s.backend.Close()
}

// assign copies value into result through its JSON form, the same way a cache hit is decoded.
func assign(value, result interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("assigning fetched value: %w", err)
	}
	return nil
}

package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coupon-report/internal/core/cache"
	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/ports"
)

const statusCacheKey = "coupon_report:status"

// RedisStatusStore implements ports.StatusStore on top of the shared cache.
type RedisStatusStore struct {
	cache cache.Cache
}

var _ ports.StatusStore = (*RedisStatusStore)(nil)

// NewRedisStatusStore creates a new RedisStatusStore.
func NewRedisStatusStore(c cache.Cache) *RedisStatusStore {
	return &RedisStatusStore{
		cache: c,
	}
}

// Save stores the status without expiration.
func (r *RedisStatusStore) Save(ctx context.Context, status domain.Status) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	if err := r.cache.Set(ctx, statusCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save status to cache: %w", err)
	}

	return nil
}

// Get returns the stored status, or the idle status when none was saved yet.
func (r *RedisStatusStore) Get(ctx context.Context) (domain.Status, error) {
	data, err := r.cache.Get(ctx, statusCacheKey)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return domain.IdleStatus(), nil
	}
	if err != nil {
		return domain.Status{}, fmt.Errorf("failed to get status from cache: %w", err)
	}

	var status domain.Status
	if err := json.Unmarshal(data, &status); err != nil {
		return domain.Status{}, fmt.Errorf("failed to unmarshal status: %w", err)
	}

	return status, nil
}

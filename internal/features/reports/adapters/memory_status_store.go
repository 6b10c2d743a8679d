package adapters

import (
	"context"
	"sync"

	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/ports"
)

// MemoryStatusStore keeps the latest status in process memory.
type MemoryStatusStore struct {
	mu     sync.RWMutex
	status domain.Status
}

var _ ports.StatusStore = (*MemoryStatusStore)(nil)

// NewMemoryStatusStore creates a store holding the idle status.
func NewMemoryStatusStore() *MemoryStatusStore {
	return &MemoryStatusStore{status: domain.IdleStatus()}
}

// Save replaces the stored status.
func (s *MemoryStatusStore) Save(_ context.Context, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	return nil
}

// Get returns the stored status.
func (s *MemoryStatusStore) Get(_ context.Context) (domain.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, nil
}

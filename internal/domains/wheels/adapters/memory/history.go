package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/ports"
)

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository keeps generation records in memory for development and tests.
type HistoryRepository struct {
	mu      sync.RWMutex
	records []domain.Generation
	nextID  int64
	now     func() time.Time
}

// NewHistoryRepository constructs an empty in-memory history.
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{nextID: 1, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *HistoryRepository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Save appends the record and assigns its identifier.
func (r *HistoryRepository) Save(_ context.Context, gen *domain.Generation) (*domain.Generation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *gen
	stored.Distances = append([]float64{}, gen.Distances...)
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now()
	}
	r.records = append(r.records, stored)
	saved := stored
	return &saved, nil
}

// ListRecent returns up to limit records, newest first.
func (r *HistoryRepository) ListRecent(_ context.Context, limit int) ([]*domain.Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]*domain.Generation, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		rec := r.records[i]
		rec.Distances = append([]float64{}, r.records[i].Distances...)
		out = append(out, &rec)
	}
	return out, nil
}

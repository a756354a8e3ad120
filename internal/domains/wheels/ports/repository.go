package ports

import (
	"context"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
)

// HistoryRepository persists generation records, newest first on reads.
type HistoryRepository interface {
	Save(ctx context.Context, gen *domain.Generation) (*domain.Generation, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Generation, error)
}

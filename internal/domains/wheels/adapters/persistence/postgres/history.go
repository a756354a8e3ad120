package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/ports"
)

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository persists generation records in PostgreSQL using GORM.
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository wires a PostgreSQL-backed history. Caller manages the
// DB lifecycle.
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	repo := &HistoryRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&generationRecord{})
	}
	return repo
}

type generationRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Distances     []float64 `gorm:"column:distances;serializer:json"`
	TriangleCount int       `gorm:"column:triangle_count"`
	SizeBytes     int64     `gorm:"column:size_bytes"`
	DurationMs    int64     `gorm:"column:duration_ms"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
}

func (generationRecord) TableName() string { return "wheel_generations" }

// Save inserts a new generation record.
func (r *HistoryRepository) Save(ctx context.Context, gen *domain.Generation) (*domain.Generation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, errors.New("generation is nil")
	}
	record := toRecord(gen)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// ListRecent returns up to limit records, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Generation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var records []generationRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Generation, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

func (r *HistoryRepository) ensureDB() error {
	if r.db == nil {
		return errors.New("postgres history repository is not configured")
	}
	return nil
}

func toRecord(gen *domain.Generation) generationRecord {
	return generationRecord{
		ID:            gen.ID,
		Distances:     append([]float64{}, gen.Distances...),
		TriangleCount: gen.TriangleCount,
		SizeBytes:     gen.SizeBytes,
		DurationMs:    gen.Duration.Milliseconds(),
		CreatedAt:     gen.CreatedAt,
	}
}

func (rec generationRecord) toDomain() *domain.Generation {
	return &domain.Generation{
		ID:            rec.ID,
		Distances:     append([]float64{}, rec.Distances...),
		TriangleCount: rec.TriangleCount,
		SizeBytes:     rec.SizeBytes,
		Duration:      time.Duration(rec.DurationMs) * time.Millisecond,
		CreatedAt:     rec.CreatedAt,
	}
}

package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the wheels bounded context. Intended for
// deployments that manage schema separately from the adapters' automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&generationRecord{})
}

// Generation schema mirrors the wheels Postgres history adapter.
type generationRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Distances     []float64 `gorm:"column:distances;serializer:json"`
	TriangleCount int       `gorm:"column:triangle_count"`
	SizeBytes     int64     `gorm:"column:size_bytes"`
	DurationMs    int64     `gorm:"column:duration_ms"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
}

func (generationRecord) TableName() string { return "wheel_generations" }

//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
	"github.com/tactilelab/wheelforge/internal/platform/migrations"
)

func setupHistoryPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("wheelforge_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestHistoryRepository_SaveAndListRecent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupHistoryPostgresContainer(t)
	defer cleanup()

	repo := NewHistoryRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		saved, err := repo.Save(ctx, &domain.Generation{
			Distances:     []float64{3, 5, float64(7 + i)},
			TriangleCount: 640,
			SizeBytes:     32084,
			Duration:      12 * time.Millisecond,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
	}

	records, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []float64{3, 5, 9}, records[0].Distances)
	assert.Equal(t, []float64{3, 5, 8}, records[1].Distances)
	assert.Equal(t, 640, records[0].TriangleCount)
	assert.Equal(t, 12*time.Millisecond, records[0].Duration)
}

func TestHistoryRepository_ListRecentEmptyDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupHistoryPostgresContainer(t)
	defer cleanup()

	repo := NewHistoryRepository(db)
	records, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

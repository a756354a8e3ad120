package ports

import (
	"context"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
)

// GenerateInput carries the raw form payload.
type GenerateInput struct {
	RawDistances string
}

// Artifact is a generated mesh staged on disk for a single response.
// Cleanup must be called once the body has been streamed; it removes the
// staging directory so no request leaks temp files.
type Artifact struct {
	Path        string
	Filename    string
	ContentType string
	Distances   []float64
	SizeBytes   int64
	Cleanup     func() error
}

// Service defines the wheels use cases exposed to adapters (inbound port).
type Service interface {
	Generate(ctx context.Context, input GenerateInput) (*Artifact, error)
	History(ctx context.Context, limit int) ([]*domain.Generation, error)
}

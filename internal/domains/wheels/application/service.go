package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/ports"
)

const (
	// ArtifactFilename is the fixed download name for generated wheels.
	ArtifactFilename = "2pd_wheel.stl"
	// ContentTypeSTL is the media type for stereolithography meshes.
	ContentTypeSTL = "model/stl"
)

var _ ports.Service = (*Service)(nil)

// Service orchestrates the wheels use cases: parse and validate the form
// payload, stage a temp directory, delegate to the mesher, and record the
// outcome.
type Service struct {
	mesher  ports.Mesher
	history ports.HistoryRepository
	now     func() time.Time
}

// NewService wires the wheels service with its dependencies.
func NewService(mesher ports.Mesher, history ports.HistoryRepository) *Service {
	return &Service{mesher: mesher, history: history, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (s *Service) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Generate builds a wheel mesh from the raw form payload. The returned
// artifact owns its staging directory; callers must invoke Cleanup after
// streaming the file so no request leaks temp state.
func (s *Service) Generate(ctx context.Context, input ports.GenerateInput) (*ports.Artifact, error) {
	set, err := domain.ParseDistanceSet(input.RawDistances)
	if err != nil {
		return nil, mapError(err)
	}

	dir, err := os.MkdirTemp("", "wheelforge-*")
	if err != nil {
		return nil, fmt.Errorf("stage temp dir: %w", err)
	}
	cleanup := func() error { return os.RemoveAll(dir) }

	path := filepath.Join(dir, ArtifactFilename)
	start := s.now()
	triangles, err := s.mesher.GenerateWheel(ctx, set.Values(), path)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("generate wheel mesh: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("stat wheel mesh: %w", err)
	}

	if s.history != nil {
		gen := &domain.Generation{
			Distances:     set.Values(),
			TriangleCount: triangles,
			SizeBytes:     info.Size(),
			Duration:      s.now().Sub(start),
			CreatedAt:     s.now(),
		}
		if _, err := s.history.Save(ctx, gen); err != nil {
			_ = cleanup()
			return nil, fmt.Errorf("record generation: %w", err)
		}
	}

	return &ports.Artifact{
		Path:        path,
		Filename:    ArtifactFilename,
		ContentType: ContentTypeSTL,
		Distances:   set.Values(),
		SizeBytes:   info.Size(),
		Cleanup:     cleanup,
	}, nil
}

// History lists the most recent generation records.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.Generation, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListRecent(ctx, limit)
}

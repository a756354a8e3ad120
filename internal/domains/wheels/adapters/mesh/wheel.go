package mesh

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/ports"
)

const (
	defaultDiscSegments = 96
	defaultTipSegments  = 32
	// tipEmbedMM sinks each cone base below the rim surface so the solids
	// overlap; slicers union overlapping closed shells.
	tipEmbedMM = 1.0
)

var _ ports.Mesher = (*Generator)(nil)

// Generator tessellates two-point discrimination wheels and writes them as
// binary STL files.
type Generator struct {
	discSegments int
	tipSegments  int
}

// NewGenerator builds a Generator with print-quality tessellation defaults.
func NewGenerator() *Generator {
	return &Generator{discSegments: defaultDiscSegments, tipSegments: defaultTipSegments}
}

// GenerateWheel validates the separations, tessellates the wheel, and writes
// the mesh to outputPath. It returns the number of triangles written.
func (g *Generator) GenerateWheel(ctx context.Context, distances []float64, outputPath string) (int, error) {
	set, err := domain.NewDistanceSet(distances)
	if err != nil {
		return 0, err
	}
	wheel := domain.NewWheel(set)
	tris := g.Tessellate(wheel)

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create mesh file: %w", err)
	}
	if err := WriteBinary(f, "wheelforge two-point discrimination wheel", tris); err != nil {
		f.Close()
		os.Remove(outputPath)
		return 0, fmt.Errorf("write mesh file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(outputPath)
		return 0, err
	}
	return len(tris), nil
}

// Tessellate builds the triangle soup for a wheel: a closed disc plus one
// closed cone per tip, two tips per station.
func (g *Generator) Tessellate(w domain.Wheel) []Triangle {
	tris := disc(w.HubRadius, w.Thickness, g.discSegments)
	length := w.TipLength + tipEmbedMM
	for _, st := range w.Stations {
		for _, angle := range []float64{st.Angle - st.HalfAngle, st.Angle + st.HalfAngle} {
			dir := Vec3{math.Cos(angle), math.Sin(angle), 0}
			base := dir.Scale(w.HubRadius - tipEmbedMM)
			tris = append(tris, cone(base, dir, w.TipBaseRadius, length, g.tipSegments)...)
		}
	}
	return tris
}

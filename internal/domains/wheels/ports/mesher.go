package ports

import "context"

// Mesher turns validated tip separations into a binary mesh file.
// Given at least two valid distances it writes a mesh at outputPath and
// reports how many triangles it wrote, or fails without leaving a file.
type Mesher interface {
	GenerateWheel(ctx context.Context, distances []float64, outputPath string) (int, error)
}

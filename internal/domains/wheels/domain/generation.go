package domain

import "time"

// Generation records one successful mesh build for the history surface.
type Generation struct {
	ID            int64
	Distances     []float64
	TriangleCount int
	SizeBytes     int64
	Duration      time.Duration
	CreatedAt     time.Time
}

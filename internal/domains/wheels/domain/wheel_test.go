package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, values ...float64) DistanceSet {
	t.Helper()
	set, err := NewDistanceSet(values)
	require.NoError(t, err)
	return set
}

func TestNewWheel_OneStationPerDistanceAscending(t *testing.T) {
	wheel := NewWheel(mustSet(t, 8, 2, 5))

	require.Len(t, wheel.Stations, 3)
	assert.Equal(t, 2.0, wheel.Stations[0].SeparationMM)
	assert.Equal(t, 5.0, wheel.Stations[1].SeparationMM)
	assert.Equal(t, 8.0, wheel.Stations[2].SeparationMM)
}

func TestNewWheel_StationsEvenlySpaced(t *testing.T) {
	wheel := NewWheel(mustSet(t, 2, 5, 8, 12))

	step := 2 * math.Pi / 4
	for i, st := range wheel.Stations {
		assert.InDelta(t, float64(i)*step, st.Angle, 1e-12)
	}
}

func TestNewWheel_SmallWheelUsesMinimumHub(t *testing.T) {
	wheel := NewWheel(mustSet(t, 2, 3))
	assert.Equal(t, MinHubRadiusMM, wheel.HubRadius)
}

func TestNewWheel_HubGrowsWithStationCount(t *testing.T) {
	many := NewWheel(mustSet(t, 4, 8, 12, 16, 20, 24, 28, 30, 2, 6, 10, 14))
	few := NewWheel(mustSet(t, 2, 30))

	assert.Greater(t, many.HubRadius, few.HubRadius)

	// Even spacing must leave every station its widest-case arc.
	arcPerStation := 2 * math.Pi * many.HubRadius / float64(len(many.Stations))
	widest := 30.0 + 2*TipBaseRadiusMM + StationClearanceMM
	assert.GreaterOrEqual(t, arcPerStation+1e-9, widest)
}

func TestNewWheel_HalfAngleYieldsExactApexChord(t *testing.T) {
	wheel := NewWheel(mustSet(t, 3, 10, 25))

	apex := wheel.ApexRadius()
	for _, st := range wheel.Stations {
		chord := 2 * apex * math.Sin(st.HalfAngle)
		assert.InDelta(t, st.SeparationMM, chord, 1e-9)
	}
}

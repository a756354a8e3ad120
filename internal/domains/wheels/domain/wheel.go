package domain

import "math"

// Print-oriented defaults in millimeters. The tip dimensions follow
// commercial two-point discriminators; the hub grows with the widest station
// so pairs never collide on the rim.
const (
	DiscThicknessMM    = 6.0
	TipLengthMM        = 8.0
	TipBaseRadiusMM    = 2.5
	MinHubRadiusMM     = 18.0
	StationClearanceMM = 6.0
)

// Station places one pair of tips on the rim.
type Station struct {
	// SeparationMM is the straight-line distance between the two tip apexes.
	SeparationMM float64
	// Angle locates the station center, radians from +X.
	Angle float64
	// HalfAngle offsets each tip from the center so the apex chord equals
	// SeparationMM at the apex radius.
	HalfAngle float64
}

// Wheel is the printable geometry derived from a distance set.
type Wheel struct {
	HubRadius     float64
	Thickness     float64
	TipLength     float64
	TipBaseRadius float64
	Stations      []Station
}

// NewWheel sizes the hub so every station fits with clearance and lays the
// stations out evenly around the rim, one per separation, ascending.
func NewWheel(set DistanceSet) Wheel {
	values := set.Values()
	n := len(values)

	// Every station gets the arc of the widest one, so even spacing is
	// collision free.
	widest := set.Max() + 2*TipBaseRadiusMM + StationClearanceMM
	hub := float64(n) * widest / (2 * math.Pi)
	if hub < MinHubRadiusMM {
		hub = MinHubRadiusMM
	}

	w := Wheel{
		HubRadius:     hub,
		Thickness:     DiscThicknessMM,
		TipLength:     TipLengthMM,
		TipBaseRadius: TipBaseRadiusMM,
		Stations:      make([]Station, 0, n),
	}
	apex := w.ApexRadius()
	for i, d := range values {
		w.Stations = append(w.Stations, Station{
			SeparationMM: d,
			Angle:        2 * math.Pi * float64(i) / float64(n),
			HalfAngle:    math.Asin(d / (2 * apex)),
		})
	}
	return w
}

// ApexRadius is the distance from the wheel axis to each tip apex.
func (w Wheel) ApexRadius() float64 {
	return w.HubRadius + w.TipLength
}

// Package mesh tessellates wheel geometry and writes binary STL files.
// It implements the ports.Mesher contract used by the application layer.
package mesh

import "math"

// Vec3 is a point or direction in millimeters.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector, or the zero vector for degenerate input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Triangle is one STL facet. Vertices wind counter-clockwise seen from
// outside the solid; Normal follows the right-hand rule.
type Triangle struct {
	Normal  Vec3
	A, B, C Vec3
}

func newTriangle(a, b, c Vec3) Triangle {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Triangle{Normal: n, A: a, B: b, C: c}
}

// disc emits a closed cylinder of the given radius, centered on the origin
// and extruded symmetrically along Z.
func disc(radius, thickness float64, segments int) []Triangle {
	half := thickness / 2
	topCenter := Vec3{0, 0, half}
	bottomCenter := Vec3{0, 0, -half}

	tris := make([]Triangle, 0, segments*4)
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		p0 := Vec3{radius * math.Cos(a0), radius * math.Sin(a0), 0}
		p1 := Vec3{radius * math.Cos(a1), radius * math.Sin(a1), 0}
		p0t := Vec3{p0.X, p0.Y, half}
		p1t := Vec3{p1.X, p1.Y, half}
		p0b := Vec3{p0.X, p0.Y, -half}
		p1b := Vec3{p1.X, p1.Y, -half}

		tris = append(tris,
			newTriangle(topCenter, p0t, p1t),    // cap, +Z
			newTriangle(bottomCenter, p1b, p0b), // cap, -Z
			newTriangle(p0b, p1b, p1t),          // wall
			newTriangle(p0b, p1t, p0t),
		)
	}
	return tris
}

// cone emits a closed cone with its base disk at base, pointing along the
// unit axis for the given length.
func cone(base, axis Vec3, radius, length float64, segments int) []Triangle {
	apex := base.Add(axis.Scale(length))

	// Local frame perpendicular to the axis.
	ref := Vec3{0, 0, 1}
	if math.Abs(axis.Dot(ref)) > 0.9 {
		ref = Vec3{1, 0, 0}
	}
	e1 := axis.Cross(ref).Normalize()
	e2 := axis.Cross(e1)

	ring := make([]Vec3, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		offset := e1.Scale(radius * math.Cos(a)).Add(e2.Scale(radius * math.Sin(a)))
		ring[i] = base.Add(offset)
	}

	tris := make([]Triangle, 0, segments*2)
	for i := 0; i < segments; i++ {
		q0 := ring[i]
		q1 := ring[(i+1)%segments]
		tris = append(tris,
			newTriangle(base, q1, q0),  // base cap, facing away from the apex
			newTriangle(q0, q1, apex),  // lateral surface
		)
	}
	return tris
}

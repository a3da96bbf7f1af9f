package cdt

// Point is the geometric attribute attached to a vertex: anything that
// reports a position (u, v) in the parameter plane. The triangulator is
// polymorphic over this, so callers may hand in richer point types (for
// example a surface sample that also carries a 3D position) and get the
// same values back out of the enumeration, untouched.
//
// Note that all points involved with the triangulation are handled by
// reference and compared by coordinate value. We never modify a point
// after it enters the triangulation; duplicate detection and segment
// endpoint matching rely on exact coordinate equality, and we cannot
// tolerate loss of precision.
type Point interface {
	U() float64
	V() float64
}

// UV is the plain Point implementation.
type UV struct {
	Coords [2]float64
}

// NewUV returns a *UV at (u, v).
func NewUV(u, v float64) *UV {
	return &UV{Coords: [2]float64{u, v}}
}

func (p *UV) U() float64 { return p.Coords[0] }
func (p *UV) V() float64 { return p.Coords[1] }

// samePlace reports whether two points have the same location in the
// plane. Exact comparison, no tolerance: points that differ in the last
// ulp are distinct vertices.
func samePlace(p, q Point) bool {
	return p.U() == q.U() && p.V() == q.V()
}

package sampler

// SamplePoint is a parameter-domain point paired with its 3D position
// on the surface. It implements cdt.Point, so samples go straight into
// the triangulator and come back out of the enumeration still carrying
// their positions; it also implements the optional position accessor
// the OFF writer looks for.
type SamplePoint struct {
	u, v    float64
	X, Y, Z float64
}

// NewSamplePoint returns a sample at parameters (u, v) with surface
// position (x, y, z).
func NewSamplePoint(u, v, x, y, z float64) *SamplePoint {
	return &SamplePoint{u: u, v: v, X: x, Y: y, Z: z}
}

// U returns the first parameter coordinate.
func (p *SamplePoint) U() float64 { return p.u }

// V returns the second parameter coordinate.
func (p *SamplePoint) V() float64 { return p.v }

// Position returns the 3D surface position of the sample.
func (p *SamplePoint) Position() (x, y, z float64) {
	return p.X, p.Y, p.Z
}

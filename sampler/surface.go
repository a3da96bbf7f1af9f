// Package sampler generates Poisson-disk distributed sample points on a
// parametric surface patch, for feeding into the triangulator. Conflict
// distances are measured with a first-order approximation to geodesic
// distance derived from the surface's first fundamental form, so the
// samples spread evenly on the surface rather than in the parameter
// rectangle.
package sampler

// Surface is a parametric surface patch over the rectangular domain
// [UMin, UMax] x [VMin, VMax]. Point evaluates the surface position;
// Du and Dv evaluate the partial derivative vectors. All three must
// reject parameters outside the domain with an error.
type Surface interface {
	UMin() float64
	UMax() float64
	VMin() float64
	VMax() float64
	Point(u, v float64) (x, y, z float64, err error)
	Du(u, v float64) (x, y, z float64, err error)
	Dv(u, v float64) (x, y, z float64, err error)
}

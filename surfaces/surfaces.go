// Package surfaces provides ready-made parametric surface patches for
// the sampler: a cone, a sphere and a cylinder.
package surfaces

import (
	"math"

	"github.com/pkg/errors"
)

// domain is the shared rectangular parameter domain with its bounds
// check.
type domain struct {
	u0, u1, v0, v1 float64
}

func (d domain) UMin() float64 { return d.u0 }
func (d domain) UMax() float64 { return d.u1 }
func (d domain) VMin() float64 { return d.v0 }
func (d domain) VMax() float64 { return d.v1 }

func (d domain) check(u, v float64) error {
	if u < d.u0 || u > d.u1 || v < d.v0 || v > d.v1 {
		return errors.Errorf("parameter point (%v, %v) outside domain [%v, %v] x [%v, %v]",
			u, v, d.u0, d.u1, d.v0, d.v1)
	}
	return nil
}

// Cone is the patch x = u cos v, y = u sin v, z = u over u in [0, 10],
// v in [0, 2pi].
type Cone struct {
	domain
}

// NewCone returns the standard cone patch.
func NewCone() *Cone {
	return &Cone{domain{0, 10, 0, 2 * math.Pi}}
}

// Point evaluates the cone at (u, v).
func (c *Cone) Point(u, v float64) (x, y, z float64, err error) {
	if err = c.check(u, v); err != nil {
		return
	}
	return u * math.Cos(v), u * math.Sin(v), u, nil
}

// Du evaluates the partial derivative with respect to u.
func (c *Cone) Du(u, v float64) (x, y, z float64, err error) {
	if err = c.check(u, v); err != nil {
		return
	}
	return math.Cos(v), math.Sin(v), 1, nil
}

// Dv evaluates the partial derivative with respect to v.
func (c *Cone) Dv(u, v float64) (x, y, z float64, err error) {
	if err = c.check(u, v); err != nil {
		return
	}
	return -u * math.Sin(v), u * math.Cos(v), 0, nil
}

// Sphere is the patch x = r cos u sin v, y = r sin u sin v, z = r cos v
// with radius 5, u in [0, 2pi], v in [0, 10]. The v range is wider than
// one colatitude sweep; the sampler only cares that the map and its
// derivatives are defined over the rectangle.
type Sphere struct {
	domain
	radius float64
}

// NewSphere returns the standard sphere patch.
func NewSphere() *Sphere {
	return &Sphere{domain{0, 2 * math.Pi, 0, 10}, 5}
}

// Point evaluates the sphere at (u, v).
func (s *Sphere) Point(u, v float64) (x, y, z float64, err error) {
	if err = s.check(u, v); err != nil {
		return
	}
	return s.radius * math.Cos(u) * math.Sin(v),
		s.radius * math.Sin(u) * math.Sin(v),
		s.radius * math.Cos(v),
		nil
}

// Du evaluates the partial derivative with respect to u.
func (s *Sphere) Du(u, v float64) (x, y, z float64, err error) {
	if err = s.check(u, v); err != nil {
		return
	}
	return -s.radius * math.Sin(u) * math.Sin(v),
		s.radius * math.Cos(u) * math.Sin(v),
		0,
		nil
}

// Dv evaluates the partial derivative with respect to v.
func (s *Sphere) Dv(u, v float64) (x, y, z float64, err error) {
	if err = s.check(u, v); err != nil {
		return
	}
	return s.radius * math.Cos(u) * math.Cos(v),
		s.radius * math.Sin(u) * math.Cos(v),
		-s.radius * math.Sin(v),
		nil
}

// Cylinder is the patch x = r cos u, y = r sin u, z = v with radius 5,
// u in [0, 2pi], v in [0, 10].
type Cylinder struct {
	domain
	radius float64
}

// NewCylinder returns the standard cylinder patch.
func NewCylinder() *Cylinder {
	return &Cylinder{domain{0, 2 * math.Pi, 0, 10}, 5}
}

// Point evaluates the cylinder at (u, v).
func (c *Cylinder) Point(u, v float64) (x, y, z float64, err error) {
	if err = c.check(u, v); err != nil {
		return
	}
	return c.radius * math.Cos(u), c.radius * math.Sin(u), v, nil
}

// Du evaluates the partial derivative with respect to u.
func (c *Cylinder) Du(u, v float64) (x, y, z float64, err error) {
	if err = c.check(u, v); err != nil {
		return
	}
	return -c.radius * math.Sin(u), c.radius * math.Cos(u), 0, nil
}

// Dv evaluates the partial derivative with respect to v.
func (c *Cylinder) Dv(u, v float64) (x, y, z float64, err error) {
	if err = c.check(u, v); err != nil {
		return
	}
	return 0, 0, 1, nil
}

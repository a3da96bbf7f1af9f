package sampler

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Default dart-throwing parameters: the conflict radius is 2*alpha, and
// sampling stops after MaxTrials consecutive rejections.
const (
	DefaultAlpha     = 0.1
	DefaultMaxTrials = 100
)

// Sampler draws Poisson-disk samples from a surface patch by dart
// throwing. A candidate is accepted when its approximate geodesic
// distance to every accepted sample is at least twice Alpha; sampling
// stops after MaxTrials rejections in a row.
type Sampler struct {
	Alpha     float64
	MaxTrials int
}

// New returns a sampler with the default parameters.
func New() *Sampler {
	return &Sampler{Alpha: DefaultAlpha, MaxTrials: DefaultMaxTrials}
}

// Sample draws points from the surface. The four parameter-domain
// corners seed the set, so the triangulation always covers the full
// rectangle. rng must be non-nil; reusing a seeded source reproduces
// the sample set exactly.
func (s *Sampler) Sample(surface Surface, rng *rand.Rand) ([]*SamplePoint, error) {
	if rng == nil {
		return nil, errors.New("sampler requires a random source")
	}
	if s.Alpha <= 0 {
		return nil, errors.Errorf("alpha must be positive, got %v", s.Alpha)
	}
	if s.MaxTrials <= 0 {
		return nil, errors.Errorf("max trials must be positive, got %d", s.MaxTrials)
	}

	uMin, uMax := surface.UMin(), surface.UMax()
	vMin, vMax := surface.VMin(), surface.VMax()

	var points []*SamplePoint
	for _, c := range [4][2]float64{
		{uMin, vMin},
		{uMax, vMin},
		{uMin, vMax},
		{uMax, vMax},
	} {
		p, err := makeSample(surface, c[0], c[1])
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	minDist := 2 * s.Alpha
	trials := 0
	for trials < s.MaxTrials {
		u := uMin + rng.Float64()*(uMax-uMin)
		v := vMin + rng.Float64()*(vMax-vMin)

		p, err := makeSample(surface, u, v)
		if err != nil {
			return nil, err
		}

		conflict := false
		for _, q := range points {
			d, err := s.distance(surface, p, q)
			if err != nil {
				return nil, err
			}
			if d < minDist {
				conflict = true
				break
			}
		}

		if conflict {
			trials++
			continue
		}
		points = append(points, p)
		trials = 0
	}

	return points, nil
}

func makeSample(surface Surface, u, v float64) (*SamplePoint, error) {
	x, y, z, err := surface.Point(u, v)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating surface at (%v, %v)", u, v)
	}
	return NewSamplePoint(u, v, x, y, z), nil
}

// distance approximates the geodesic distance between the parameter
// points p and q through the first fundamental form at p: with the
// Jacobian J = [Xu | Xv] and the parameter difference d, the squared
// distance is d' (J'J) d. First-order in |d|, exact on flat patches.
func (s *Sampler) distance(surface Surface, p, q *SamplePoint) (float64, error) {
	du := q.U() - p.U()
	dv := q.V() - p.V()

	xux, xuy, xuz, err := surface.Du(p.U(), p.V())
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating du at (%v, %v)", p.U(), p.V())
	}
	xvx, xvy, xvz, err := surface.Dv(p.U(), p.V())
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating dv at (%v, %v)", p.U(), p.V())
	}

	// First fundamental form coefficients E, F, G.
	e := xux*xux + xuy*xuy + xuz*xuz
	f := xux*xvx + xuy*xvy + xuz*xvz
	g := xvx*xvx + xvy*xvy + xvz*xvz

	d2 := e*du*du + 2*f*du*dv + g*dv*dv
	return math.Sqrt(d2), nil
}

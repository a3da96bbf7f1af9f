package cdt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpansionPrimitives(t *testing.T) {
	t.Run("twoSum is exact", func(t *testing.T) {
		// 1 + 2^-60 is inexact in one float64; the tail recovers it.
		a := 1.0
		b := math.Ldexp(1, -60)
		x, y := twoSum(a, b)
		assert.Equal(t, 1.0, x)
		assert.Equal(t, b, y)
	})

	t.Run("twoDiff is exact", func(t *testing.T) {
		a := 1.0
		b := math.Ldexp(1, -60)
		x, y := twoDiff(a, b)
		assert.Equal(t, 1.0, x)
		assert.Equal(t, -b, y)
	})

	t.Run("split halves the significand", func(t *testing.T) {
		a := 1.0 + math.Ldexp(1, -40)
		hi, lo := split(a)
		assert.Equal(t, a, hi+lo)
		// hi must fit in the upper half of the significand.
		assert.Equal(t, 1.0, hi)
	})

	t.Run("twoProduct recovers the roundoff", func(t *testing.T) {
		a := 1.0 + math.Ldexp(1, -30)
		b := 1.0 + math.Ldexp(1, -30)
		x, y := twoProduct(a, b)
		// a*b = 1 + 2^-29 + 2^-60 exactly; the head rounds the last
		// term away and the tail carries it.
		assert.Equal(t, 1.0+math.Ldexp(1, -29), x)
		assert.Equal(t, math.Ldexp(1, -60), y)
	})

	t.Run("square agrees with twoProduct", func(t *testing.T) {
		a := 1.0 + math.Ldexp(1, -30)
		x1, y1 := twoProduct(a, a)
		x2, y2 := square(a)
		assert.Equal(t, x1, x2)
		assert.Equal(t, y1, y2)
	})

	t.Run("fastExpansionSumZeroElim drops zeros", func(t *testing.T) {
		e := []float64{math.Ldexp(1, -60), 1}
		f := []float64{-math.Ldexp(1, -60), 2}
		var h [4]float64
		n := fastExpansionSumZeroElim(2, e, 2, f, h[:])
		assert.Equal(t, 3.0, estimate(n, h[:]))
		for i := 0; i < n-1; i++ {
			assert.NotZero(t, h[i])
		}
	})

	t.Run("scaleExpansionZeroElim scales exactly", func(t *testing.T) {
		e := []float64{math.Ldexp(1, -60), 1}
		var h [4]float64
		n := scaleExpansionZeroElim(2, e, 3, h[:])
		assert.Equal(t, 3.0, estimate(n, h[:]))
	})
}

func TestOrient2D(t *testing.T) {
	p := NewPredicates()

	t.Run("sign convention", func(t *testing.T) {
		assert.Positive(t, p.Orient2D(0, 0, 1, 0, 0, 1), "CCW is positive")
		assert.Negative(t, p.Orient2D(0, 0, 0, 1, 1, 0), "CW is negative")
		assert.Zero(t, p.Orient2D(0, 0, 1, 1, 2, 2), "collinear is zero")
	})

	t.Run("fast estimate matches on easy input", func(t *testing.T) {
		fast := orient2DFast(0, 0, 10, 0, 5, 8)
		assert.Equal(t, sign(fast), sign(p.Orient2D(0, 0, 10, 0, 5, 8)))
	})

	t.Run("antisymmetry", func(t *testing.T) {
		cases := [][6]float64{
			{0, 0, 10, 0, 5, 8},
			{0.1, 0.2, 0.3, 0.4, 0.5, 0.61},
			{-3, 7, 2, -1, 4, 4},
		}
		for _, c := range cases {
			d1 := p.Orient2D(c[0], c[1], c[2], c[3], c[4], c[5])
			d2 := p.Orient2D(c[2], c[3], c[0], c[1], c[4], c[5])
			assert.Equal(t, sign(d1), -sign(d2))
		}
	})

	t.Run("near-degenerate agrees with the exact evaluation", func(t *testing.T) {
		// Points a hair off the line y = x. The naive determinant is
		// pure roundoff here; the adaptive result must match the exact
		// expansion sign.
		for i := 0; i < 64; i++ {
			eps := math.Ldexp(1, -52) * float64(i-32)
			ax, ay := 0.5, 0.5
			bx, by := 12.0, 12.0
			cx, cy := 24.0, 24.0+eps
			adaptive := p.Orient2D(ax, ay, bx, by, cx, cy)
			exact := orient2DExact(ax, ay, bx, by, cx, cy)
			assert.Equal(t, sign(exact), sign(adaptive), "i=%d", i)
		}
	})

	t.Run("exact zero on shifted collinear points", func(t *testing.T) {
		// The products of the filtered estimate are rounded at these
		// magnitudes, so the filter cannot certify the sign and the
		// ladder runs; it must still report exactly zero.
		base := 1e17
		assert.Zero(t, p.Orient2D(base, base, 2*base, 2*base, 3*base, 3*base))
	})
}

func TestInCircle(t *testing.T) {
	p := NewPredicates()

	t.Run("interior and exterior", func(t *testing.T) {
		assert.True(t, p.InCircle(0, 0, 1, 0, 1, 1, 0.5, 0.5))
		assert.False(t, p.InCircle(0, 0, 1, 0, 1, 1, 5, 5))
	})

	t.Run("cocircular is not inside", func(t *testing.T) {
		// The fourth unit-square corner is exactly on the circle.
		assert.False(t, p.InCircle(0, 0, 1, 0, 1, 1, 0, 1))
	})

	t.Run("cyclic rotation invariance", func(t *testing.T) {
		d := [2]float64{0.5, 0.25}
		r1 := p.InCircle(0, 0, 1, 0, 1, 1, d[0], d[1])
		r2 := p.InCircle(1, 0, 1, 1, 0, 0, d[0], d[1])
		r3 := p.InCircle(1, 1, 0, 0, 1, 0, d[0], d[1])
		assert.Equal(t, r1, r2)
		assert.Equal(t, r2, r3)
	})

	t.Run("orientation reversal negates", func(t *testing.T) {
		d := [2]float64{0.5, 0.25}
		ccw := p.inCircleAdaptive(0, 0, 1, 0, 1, 1, d[0], d[1])
		cw := p.inCircleAdaptive(1, 1, 1, 0, 0, 0, d[0], d[1])
		assert.Equal(t, sign(ccw), -sign(cw))
	})

	t.Run("a 2^-52 nudge resolves", func(t *testing.T) {
		// The center of the unit square nudged by 2^-52: inside the
		// circle through three corners either way, but the sign of the
		// perturbation decides against the fourth. Both directions must
		// produce a definite, opposite-free answer without looping.
		eps := math.Ldexp(1, -52)
		up := p.inCircleAdaptive(0, 0, 1, 0, 1, 1, 0.5, 0.5+eps)
		down := p.inCircleAdaptive(0, 0, 1, 0, 1, 1, 0.5, 0.5-eps)
		assert.NotZero(t, sign(up))
		assert.NotZero(t, sign(down))
	})

	t.Run("adaptive agrees with the exact Laplace expansion", func(t *testing.T) {
		for i := 0; i < 32; i++ {
			eps := math.Ldexp(float64(i-16), -50)
			d := [2]float64{0.5, 0.5 + eps}
			adaptive := p.inCircleAdaptive(0, 0, 1, 0, 1, 1, d[0], d[1])
			exact := inCircleExact(0, 0, 1, 0, 1, 1, d[0], d[1])
			require.Equal(t, sign(exact), sign(adaptive), "i=%d", i)
		}
	})

	t.Run("fast estimate matches on easy input", func(t *testing.T) {
		fast := inCircleFast(0, 0, 1, 0, 1, 1, 0.5, 0.5)
		adaptive := p.inCircleAdaptive(0, 0, 1, 0, 1, 1, 0.5, 0.5)
		assert.Equal(t, sign(fast), sign(adaptive))
	})
}

func TestClassify(t *testing.T) {
	p := NewPredicates()

	cases := []struct {
		name       string
		cx, cy     float64
		expected   Orientation
		ax, ay, bx float64
		by         float64
	}{
		{"left", 1, 1, Left, 0, 0, 2, 0},
		{"right", 1, -1, Right, 0, 0, 2, 0},
		{"origin", 0, 0, Origin, 0, 0, 2, 0},
		{"destination", 2, 0, Destination, 0, 0, 2, 0},
		{"between", 1, 0, Between, 0, 0, 2, 0},
		{"behind", -1, 0, Behind, 0, 0, 2, 0},
		{"beyond", 3, 0, Beyond, 0, 0, 2, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := p.Classify(c.ax, c.ay, c.bx, c.by, c.cx, c.cy)
			assert.Equal(t, c.expected, got)
		})
	}

	t.Run("vertical segment falls back to y ordering", func(t *testing.T) {
		assert.Equal(t, Between, p.Classify(0, 0, 0, 2, 0, 1))
		assert.Equal(t, Behind, p.Classify(0, 0, 0, 2, 0, -1))
		assert.Equal(t, Beyond, p.Classify(0, 0, 0, 2, 0, 3))
	})

	t.Run("reversed segment", func(t *testing.T) {
		assert.Equal(t, Between, p.Classify(2, 0, 0, 0, 1, 0))
		assert.Equal(t, Beyond, p.Classify(2, 0, 0, 0, -1, 0))
		assert.Equal(t, Behind, p.Classify(2, 0, 0, 0, 3, 0))
	})
}

func TestErrorBoundsOrdering(t *testing.T) {
	p := NewPredicates()
	// Tighter tiers must have smaller bounds; the C bounds are second
	// order in epsilon.
	assert.Less(t, p.ccwErrBoundB, p.ccwErrBoundA)
	assert.Less(t, p.ccwErrBoundC, p.ccwErrBoundB)
	assert.Less(t, p.iccErrBoundB, p.iccErrBoundA)
	assert.Less(t, p.iccErrBoundC, p.iccErrBoundB)
	assert.Equal(t, math.Ldexp(1, -53), epsilon)
	assert.Equal(t, float64(1<<27)+1, splitter)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func BenchmarkOrient2D(b *testing.B) {
	p := NewPredicates()
	for _, tier := range []struct {
		name   string
		cx, cy float64
	}{
		{"filtered", 5, 8},
		{"adaptive", 1e9, 1e9 + 1e-7},
	} {
		b.Run(tier.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Orient2D(0, 0, 1e9, 1e9, tier.cx, tier.cy)
			}
		})
	}
}

package cdt

// Floating-point expansion arithmetic after Shewchuk ("Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric
// Predicates", Discrete & Computational Geometry 18:305-363, 1997). An
// expansion is an unevaluated sum of floating-point components, pairwise
// non-overlapping, stored least-significant first. Every function here
// is exact provided the hardware rounds to nearest, which Go's float64
// arithmetic does.
//
// The primitives are branch-free free functions with local temporaries.
// Variables named bvirt, avirt, bround, around follow the original
// naming so the algebra can be checked against the paper.

// epsilon is 2^-p where p is the float64 precision; splitter is
// 2^ceil(p/2) + 1, used to split a float64 into two half-precision
// halves. Both are found at package load by the standard probing loop,
// which assumes nothing about the format beyond exact rounding.
var (
	epsilon  float64
	splitter float64
)

func init() {
	epsilon = 1.0
	splitter = 1.0
	everyOther := true
	for {
		epsilon *= 0.5
		if everyOther {
			splitter *= 2.0
		}
		everyOther = !everyOther
		if 1.0+epsilon == 1.0 {
			break
		}
	}
	splitter += 1.0
}

// fastTwoSum computes x + y = a + b exactly, assuming |a| >= |b|.
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bvirt := x - a
	y = b - bvirt
	return
}

// twoSum computes x + y = a + b exactly, with no assumption on the
// relative magnitudes of a and b.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bvirt := x - a
	avirt := x - bvirt
	bround := b - bvirt
	around := a - avirt
	y = around + bround
	return
}

// twoDiff computes x + y = a - b exactly.
func twoDiff(a, b float64) (x, y float64) {
	x = a - b
	bvirt := a - x
	avirt := x + bvirt
	bround := bvirt - b
	around := a - avirt
	y = around + bround
	return
}

// split breaks a into hi + lo where hi carries the upper half of the
// significand bits and lo the lower half.
func split(a float64) (hi, lo float64) {
	c := splitter * a
	abig := c - a
	hi = c - abig
	lo = a - hi
	return
}

// twoProduct computes x + y = a * b exactly.
func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	ahi, alo := split(a)
	bhi, blo := split(b)
	err1 := x - (ahi * bhi)
	err2 := err1 - (alo * bhi)
	err3 := err2 - (ahi * blo)
	y = (alo * blo) - err3
	return
}

// twoProductPresplit is twoProduct where b has already been split.
func twoProductPresplit(a, b, bhi, blo float64) (x, y float64) {
	x = a * b
	ahi, alo := split(a)
	err1 := x - (ahi * bhi)
	err2 := err1 - (alo * bhi)
	err3 := err2 - (ahi * blo)
	y = (alo * blo) - err3
	return
}

// square computes x + y = a * a exactly. Slightly cheaper than
// twoProduct(a, a) because the operands share a split.
func square(a float64) (x, y float64) {
	x = a * a
	ahi, alo := split(a)
	err1 := x - (ahi * ahi)
	err3 := err1 - ((ahi + ahi) * alo)
	y = (alo * alo) - err3
	return
}

// twoOneSum computes the three-component expansion x2 + x1 + x0 =
// (a1 + a0) + b.
func twoOneSum(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0 := twoSum(a0, b)
	x2, x1 = twoSum(a1, i)
	return x2, x1, x0
}

// twoOneDiff computes the three-component expansion x2 + x1 + x0 =
// (a1 + a0) - b.
func twoOneDiff(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0 := twoDiff(a0, b)
	x2, x1 = twoSum(a1, i)
	return x2, x1, x0
}

// twoTwoSum computes the four-component expansion x3 + x2 + x1 + x0 =
// (a1 + a0) + (b1 + b0).
func twoTwoSum(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, r0, x0 := twoOneSum(a1, a0, b0)
	x3, x2, x1 = twoOneSum(j, r0, b1)
	return x3, x2, x1, x0
}

// twoTwoDiff computes the four-component expansion x3 + x2 + x1 + x0 =
// (a1 + a0) - (b1 + b0).
func twoTwoDiff(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, r0, x0 := twoOneDiff(a1, a0, b0)
	x3, x2, x1 = twoOneDiff(j, r0, b1)
	return x3, x2, x1, x0
}

// fastExpansionSumZeroElim sums the expansions e[:elen] and f[:flen]
// into h, dropping zero components, and returns the length of the
// result. e and f must be nonoverlapping and nonadjacent; h holds the
// strongly nonoverlapping sum. h must have room for elen + flen
// components. The output may alias neither input.
func fastExpansionSumZeroElim(elen int, e []float64, flen int, f []float64, h []float64) int {
	var q, qnew, hh float64
	var enow, fnow float64

	enow = e[0]
	fnow = f[0]
	eindex := 0
	findex := 0
	if (fnow > enow) == (fnow > -enow) {
		q = enow
		eindex++
		if eindex < elen {
			enow = e[eindex]
		}
	} else {
		q = fnow
		findex++
		if findex < flen {
			fnow = f[findex]
		}
	}
	hindex := 0
	if (eindex < elen) && (findex < flen) {
		if (fnow > enow) == (fnow > -enow) {
			qnew, hh = fastTwoSum(enow, q)
			eindex++
			if eindex < elen {
				enow = e[eindex]
			}
		} else {
			qnew, hh = fastTwoSum(fnow, q)
			findex++
			if findex < flen {
				fnow = f[findex]
			}
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
		for (eindex < elen) && (findex < flen) {
			if (fnow > enow) == (fnow > -enow) {
				qnew, hh = twoSum(q, enow)
				eindex++
				if eindex < elen {
					enow = e[eindex]
				}
			} else {
				qnew, hh = twoSum(q, fnow)
				findex++
				if findex < flen {
					fnow = f[findex]
				}
			}
			q = qnew
			if hh != 0.0 {
				h[hindex] = hh
				hindex++
			}
		}
	}
	for eindex < elen {
		qnew, hh = twoSum(q, enow)
		eindex++
		if eindex < elen {
			enow = e[eindex]
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	for findex < flen {
		qnew, hh = twoSum(q, fnow)
		findex++
		if findex < flen {
			fnow = f[findex]
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	if (q != 0.0) || (hindex == 0) {
		h[hindex] = q
		hindex++
	}
	return hindex
}

// scaleExpansionZeroElim multiplies the expansion e[:elen] by the
// scalar b, writing the product into h with zero components dropped,
// and returns the length of the result. h must have room for 2*elen
// components.
func scaleExpansionZeroElim(elen int, e []float64, b float64, h []float64) int {
	bhi, blo := split(b)
	q, hh := twoProductPresplit(e[0], b, bhi, blo)
	hindex := 0
	if hh != 0 {
		h[hindex] = hh
		hindex++
	}
	for eindex := 1; eindex < elen; eindex++ {
		product1, product0 := twoProductPresplit(e[eindex], b, bhi, blo)
		sum, hh := twoSum(q, product0)
		if hh != 0 {
			h[hindex] = hh
			hindex++
		}
		q, hh = fastTwoSum(product1, sum)
		if hh != 0 {
			h[hindex] = hh
			hindex++
		}
	}
	if (q != 0.0) || (hindex == 0) {
		h[hindex] = q
		hindex++
	}
	return hindex
}

// estimate collapses an expansion to a single float64 approximation of
// its value. The components are summed most-significant last, so the
// result carries the sign of the expansion whenever the expansion is
// not too badly cancelled.
func estimate(elen int, e []float64) float64 {
	q := e[0]
	for eindex := 1; eindex < elen; eindex++ {
		q += e[eindex]
	}
	return q
}

package cdt

import "math"

// locate searches for an edge that contains p, or that belongs to a
// triangle containing p in its interior, walking from the starting
// edge. Every input point lies strictly inside the enclosing triangle,
// so the walk terminates.
func (t *Triangulation) locate(p Point) *Edge {
	e := t.StartingEdge()

	for {
		switch {
		case samePlace(p, e.Origin().Point()) || samePlace(p, e.Destination().Point()):
			return e
		case t.rightOf(p, e):
			// p is on the right face of e; flip to the symmetric edge
			// and retry from there.
			e = e.Symmetric()
		case !t.rightOf(p, e.OriginNext()):
			// Not right of e, and not right of the next spoke either:
			// advance counterclockwise around the origin.
			e = e.OriginNext()
		case !t.rightOf(p, e.DestinationPrev()):
			// p is in the cone of e and its next spoke but beyond the
			// closing edge of the triangle; move across it.
			e = e.DestinationPrev()
		default:
			return e
		}
	}
}

// rightOf reports whether p lies strictly on the right face of e.
func (t *Triangulation) rightOf(p Point, e *Edge) bool {
	po := e.Origin().Point()
	pd := e.Destination().Point()
	return !t.preds.LeftOn(po.U(), po.V(), pd.U(), pd.V(), p.U(), p.V())
}

// onEdge reports whether p lies on the closed segment of e, endpoints
// included.
func (t *Triangulation) onEdge(p Point, e *Edge) bool {
	po := e.Origin().Point()
	pd := e.Destination().Point()
	orient := t.preds.Classify(po.U(), po.V(), pd.U(), pd.V(), p.U(), p.V())
	return orient == Origin || orient == Destination || orient == Between
}

// sentinelRank scores a point against the enclosing triangle: 1 if |u|
// matches maxCoord, plus 2 if |v| does. Real input points rank 0.
func (t *Triangulation) sentinelRank(p Point) int {
	rank := 0
	if math.Abs(p.U()) == t.maxCoord {
		rank = 1
	}
	if math.Abs(p.V()) == t.maxCoord {
		rank += 2
	}
	return rank
}

// inCircle is the in-circle test used by the flip machinery: d against
// the circle through a, b, c (CCW). When any of a, b, c is a vertex of
// the enclosing triangle the raw predicate would let the far-away
// sentinels dictate the topology, so the decision is replaced by the
// convexity rule of de Berg et al. (Computational Geometry, 3rd ed.,
// p. 204), adjusted so that the edge kept is always the one incident to
// the vertex of least rank. That tie-break keeps the algorithm from
// swapping the same edges forever.
func (t *Triangulation) inCircle(a, b, c, d Point) bool {
	rankA := t.sentinelRank(a)
	rankB := t.sentinelRank(b)
	rankC := t.sentinelRank(c)

	if rankA == 0 && rankB == 0 && rankC == 0 {
		return t.preds.InCircle(
			a.U(), a.V(),
			b.U(), b.V(),
			c.U(), c.V(),
			d.U(), d.V(),
		)
	}

	if rankB > rankC && rankB > rankA {
		// Either [a,b,c,d] is not strictly convex or the edge [a,c]
		// lies on the convex hull of the real input; in both cases the
		// edge must stay.
		return false
	}

	left := t.preds.Left(b.U(), b.V(), c.U(), c.V(), d.U(), d.V())
	leftOn := t.preds.LeftOn(b.U(), b.V(), a.U(), a.V(), d.U(), d.V())

	// Flip exactly when the quadrilateral [a,b,c,d] is strictly convex.
	return left && !leftOn
}

// isConvex reports whether the quadrilateral [a,b,c,d], in CCW order,
// is strictly convex.
func (t *Triangulation) isConvex(a, b, c, d Point) bool {
	res1 := t.preds.Left(b.U(), b.V(), c.U(), c.V(), d.U(), d.V())
	res2 := t.preds.LeftOn(b.U(), b.V(), a.U(), a.V(), d.U(), d.V())
	res3 := t.preds.Left(a.U(), a.V(), c.U(), c.V(), d.U(), d.V())
	return res1 && !res2 && res3
}

// crossSegment reports whether c and d lie strictly on opposite sides of
// the line through a and b. Whether the crossing point falls inside
// [a,b] is not checked.
func (t *Triangulation) crossSegment(a, b, c, d Point) bool {
	if t.preds.Left(a.U(), a.V(), b.U(), b.V(), c.U(), c.V()) {
		return t.preds.Left(b.U(), b.V(), a.U(), a.V(), d.U(), d.V())
	}
	if t.preds.Left(b.U(), b.V(), a.U(), a.V(), c.U(), c.V()) {
		return t.preds.Left(a.U(), a.V(), b.U(), b.V(), d.U(), d.V())
	}
	return false
}

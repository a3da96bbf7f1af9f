package cdt

// Constrained segment insertion. A segment between two existing
// vertices is forced into the triangulation by swapping away every edge
// whose interior it crosses, following Dyn, Goren and Rippa,
// "Transforming triangulations in polygonal domains", Computer Aided
// Geometric Design 10(6), 1993. The segment may pass through vertices
// of the triangulation, in which case it is inserted piecewise.

// insertSegment forces the segment p1 -> p2 into the triangulation and
// marks it constrained. Both endpoints must already be vertices.
func (t *Triangulation) insertSegment(p1, p2 Point) {
	e1 := t.locate(p1)
	if !samePlace(p1, e1.Origin().Point()) {
		e1 = e1.Symmetric()
		if !samePlace(p1, e1.Origin().Point()) {
			fatalf("no triangulation edge shares a vertex with the segment origin (%v, %v)", p1.U(), p1.V())
		}
	}

	// Already an edge? Just flag it.
	if samePlace(p2, e1.Destination().Point()) {
		t.markEdgeAsConstrained(e1)
		return
	}

	e2 := t.locate(p2)
	if !samePlace(p2, e2.Origin().Point()) {
		e2 = e2.Symmetric()
		if !samePlace(p2, e2.Origin().Point()) {
			fatalf("no triangulation edge shares a vertex with the segment destination (%v, %v)", p2.U(), p2.V())
		}
	}

	// The segment may run through intermediate vertices; each pass
	// inserts the subsegment up to the next vertex on the line.
	for {
		var elist []*Edge
		e := t.findVerticesOnTheRightSide(e1, e2, &elist)

		if len(elist) == 0 {
			// The subsegment is already an edge of the triangulation.
			t.markEdgeAsConstrained(e.LeftPrev())
		} else {
			var swapped []*Edge
			t.swapEdgesAwayFromConstraint(e1, e, elist, &swapped)
			if len(swapped) == 0 {
				fatalf("constraint insertion produced no swapped edges")
			}

			// The last swapped edge is the constraint itself.
			constraint := swapped[len(swapped)-1]
			swapped = swapped[:len(swapped)-1]
			t.markEdgeAsConstrained(constraint)

			t.restoreDelaunayList(swapped)
		}

		if samePlace(e.Origin().Point(), p2) {
			return
		}
		e1 = e
	}
}

// getClosestEdgeOnTheRightSide walks the star of the origin of e to
// find the edge forming the largest nonpositive angle with the segment
// from that origin to q: the closest spoke on the right side of the
// segment's supporting line. Rotation direction depends on which side
// the destination of e starts out on.
func (t *Triangulation) getClosestEdgeOnTheRightSide(e *Edge, q Point) *Edge {
	p := e.Origin().Point()
	s := e.Destination().Point()

	orient := t.preds.Classify(p.U(), p.V(), q.U(), q.V(), s.U(), s.V())

	// The destination already lies on the segment; e is the spoke.
	if orient == Destination || orient == Between {
		return e
	}

	// On the left or behind, rotate clockwise to come around to the
	// right side; on the right, rotate counterclockwise towards the
	// segment.
	ccw := true
	if orient == Left || orient == Behind {
		ccw = false
	}

	eaux := e
	for {
		if ccw {
			eaux = eaux.OriginNext()
		} else {
			eaux = eaux.OriginPrev()
		}

		s := eaux.Destination().Point()
		orient := t.preds.Classify(p.U(), p.V(), q.U(), q.V(), s.U(), s.V())

		if orient == Destination || orient == Between {
			return eaux
		}
		if orient == Left && ccw {
			// Crossed over to the left side; the previous spoke was
			// the closest on the right.
			return eaux.OriginPrev()
		}
		if orient == Right && !ccw {
			return eaux
		}
	}
}

// findVerticesOnTheRightSide walks across the triangulation along the
// segment from the origin of e1 to the origin of e2, collecting into
// elist one edge per distinct right-side vertex of the crossed edges.
// It returns an edge whose origin is the first vertex on the segment
// reached by the walk (possibly the destination itself). A crossed edge
// that is already constrained is a validation failure: the input
// contains interior-intersecting segments.
func (t *Triangulation) findVerticesOnTheRightSide(e1, e2 *Edge, elist *[]*Edge) *Edge {
	p := e1.Origin().Point()
	q := e2.Origin().Point()

	e := t.getClosestEdgeOnTheRightSide(e1, q)

	var last Point
	for {
		s := e.Destination().Point()
		orient := t.preds.Classify(p.U(), p.V(), q.U(), q.V(), s.U(), s.V())

		if orient == Between || orient == Destination {
			// The walk reached a vertex on the segment.
			break
		}

		// Right-side destination means the crossing edge is the one
		// following e around its left face; otherwise e itself
		// crosses.
		if orient == Right {
			e = e.LeftNext()
		}

		if e.IsConstrained() {
			failf(DegenerateSegment,
				"segment (%v, %v)-(%v, %v) crosses the interior of an existing constraint",
				p.U(), p.V(), q.U(), q.V())
		}

		// One entry per distinct right-side vertex.
		r := e.Origin().Point()
		if r != last {
			*elist = append(*elist, e)
			last = r
		}

		e = e.Symmetric().LeftNext()
	}

	return e.LeftNext()
}

// findEnclosingEdges finds the two spokes at the origin of e that
// enclose every edge crossing the segment p -> q: el on the left side
// of the crossing fan, er on the right.
func (t *Triangulation) findEnclosingEdges(p, q Point, e *Edge) (el, er *Edge) {
	s := e.Origin().Point()

	el = e.LeftPrev().Symmetric()
	for el != e {
		tp := el.Destination().Point()
		if !t.crossSegment(p, q, s, tp) {
			break
		}
		el = el.LeftPrev().Symmetric()
	}

	er = e.Symmetric().LeftNext()
	for er != e {
		tp := er.Destination().Point()
		if !t.crossSegment(p, q, s, tp) {
			break
		}
		er = er.Symmetric().LeftNext()
	}

	return el, er
}

// swapEdgesAwayFromConstraint eliminates every edge crossing the
// segment from the origin of e1 to the origin of e2. elist holds one
// crossing edge per right-side vertex; swapped collects the edges whose
// swap moved them off the segment, ending with the edge that realizes
// the segment itself.
//
// Per Dyn-Goren-Rippa, some right-side vertex always has an enclosing
// angle below 180 degrees, and within such a fan the crossing edges can
// all be swapped in finitely many sweeps.
func (t *Triangulation) swapEdgesAwayFromConstraint(e1, e2 *Edge, elist []*Edge, swapped *[]*Edge) {
	if len(elist) == 0 {
		fatalf("constraint insertion requires a nonempty crossing list")
	}

	p := e1.Origin().Point()
	q := e2.Origin().Point()

	for len(elist) > 0 {
		// Find a right-side vertex whose enclosing angle admits a
		// swap.
		var el, er *Edge
		found := false
		idx := 0
		for ; idx < len(elist); idx++ {
			el, er = t.findEnclosingEdges(p, q, elist[idx])

			a := el.Destination().Point()
			b := er.Origin().Point()
			c := er.Destination().Point()

			if t.preds.Left(a.U(), a.V(), b.U(), b.V(), c.U(), c.V()) {
				found = true
				break
			}
		}
		if !found {
			fatalf("no swappable vertex while inserting a constraint")
		}

		// Sweep the fan between er and el until every enclosed
		// crossing edge has been swapped away. A swap can unlock a
		// previously unswappable neighbor, so the sweep repeats.
		for el != er.LeftPrev().Symmetric() {
			e := er.LeftPrev().Symmetric()
			for {
				a := e.Origin().Point()
				c := e.Destination().Point()

				b := e.Symmetric().LeftPrev().Origin().Point()
				d := e.LeftPrev().Origin().Point()

				if t.isConvex(a, b, c, d) {
					f := e.Symmetric().LeftNext()

					t.swap(e)

					// Swapped edges that no longer cross the segment
					// are candidates for the Delaunay repair pass; the
					// last of them is the constraint.
					if !t.crossSegment(p, q, b, d) {
						*swapped = append(*swapped, e)
					}

					e.Face().setEdge(e)
					e.LeftPrev().setFace(e.Face())
					e.Symmetric().Face().setEdge(e.Symmetric())
					e.Symmetric().LeftPrev().setFace(e.Symmetric().Face())

					e = f
				}

				e = e.LeftPrev().Symmetric()
				if e == el {
					break
				}
			}
		}

		elist = append(elist[:idx], elist[idx+1:]...)
	}
}

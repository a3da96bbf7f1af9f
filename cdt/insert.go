package cdt

// insertPoint adds p as a new vertex of the triangulation, then flips
// edges until the Delaunay property holds again. A point coinciding
// with an existing vertex is discarded; insertion is idempotent.
func (t *Triangulation) insertPoint(p Point) {
	e := t.locate(p)

	if samePlace(p, e.Origin().Point()) || samePlace(p, e.Destination().Point()) {
		return
	}

	e = t.splitEdgeOrTriangle(p, e)

	// Edge e is now opposite p in a newly created triangle, and the
	// starting edge follows e in the left face of e.
	t.restoreDelaunayAround(p, e)
}

// splitEdgeOrTriangle inserts a vertex at p, which lies either on edge
// e or inside a triangle bordered by e. The containing triangle (or,
// when p is on an edge, the quadrilateral left after deleting it) is
// fanned out from the new vertex. Returns an edge opposite the new
// vertex; the resulting triangulation need not be Delaunay yet.
func (t *Triangulation) splitEdgeOrTriangle(p Point, e *Edge) *Edge {
	if t.onEdge(p, e) {
		// The point falls on an existing edge, which must be removed
		// first. Landing on a constraint is an input error.
		if e.IsConstrained() {
			failf(ConstrainedEdgeHit, "point (%v, %v) lies on a constrained edge", p.U(), p.V())
		}

		e = e.OriginPrev()
		t.deleteFace(e.Face())
		t.deleteEdge(e.OriginNext())
	}

	// First spoke: connect the origin of e to the new vertex.
	eb := NewQuadEdge().Edge(0)
	t.addEdge(eb)
	t.addEdge(eb.Symmetric())

	newVert := newVertex(p, nil)
	t.addVertex(newVert)

	eb.setEndpoints(e.Origin(), newVert)
	newVert.setEdge(eb.Symmetric())

	eb.Splice(e)
	t.setStartingEdge(eb)

	// Fan out the remaining spokes, each one closing a sector and
	// getting a fresh bounded face record; the last sector reuses the
	// record of the face that was split.
	for {
		eb = t.connect(e, eb.Symmetric())
		e = eb.OriginPrev()

		f := &Face{}
		f.setEdge(eb)
		f.setBounded(true)
		f.edge.setFace(f)
		f.edge.LeftNext().setFace(f)
		f.edge.LeftPrev().setFace(f)
		t.addFace(f)

		if e.LeftNext() == t.StartingEdge() {
			break
		}
	}

	// The face that was split keeps its record; rebind it to the last
	// sector of the fan.
	e.Face().setEdge(e)
	e.LeftNext().setFace(e.Face())
	e.LeftPrev().setFace(e.Face())

	return e
}

// restoreDelaunayAround walks the ring of edges opposite the freshly
// inserted point p, flipping every unconstrained edge that fails the
// in-circle test. The walk proceeds clockwise around the star polygon
// of p and stops once it closes on the starting edge.
func (t *Triangulation) restoreDelaunayAround(p Point, e *Edge) {
	for {
		edgeT := e.OriginPrev()

		if !e.IsConstrained() &&
			t.rightOf(edgeT.Destination().Point(), e) &&
			t.inCircle(
				e.Origin().Point(),
				edgeT.Destination().Point(),
				e.Destination().Point(),
				p,
			) {
			t.swap(e)

			e.Face().setEdge(e)
			e.LeftPrev().setFace(e.Face())
			e.Symmetric().Face().setEdge(e.Symmetric())
			e.Symmetric().LeftPrev().setFace(e.Symmetric().Face())

			// The swapped edge exposes a new suspect.
			e = e.OriginPrev()
		} else if e.OriginNext() == t.StartingEdge() {
			return
		} else {
			e = e.OriginNext().LeftPrev()
		}
	}
}

// restoreDelaunayList applies the in-circle test to each unconstrained
// interior edge in elist, flipping the ones that fail. Used after
// constraint insertion to bring the triangulation back to a CDT.
func (t *Triangulation) restoreDelaunayList(elist []*Edge) {
	for _, e := range elist {
		edgeT := e.OriginPrev()

		res := t.inCircle(
			e.Origin().Point(),
			edgeT.Destination().Point(),
			e.Destination().Point(),
			e.OriginNext().Destination().Point(),
		)
		if !res {
			continue
		}

		t.swap(e)

		e.Face().setEdge(e)
		e.LeftPrev().setFace(e.Face())
		e.Symmetric().Face().setEdge(e.Symmetric())
		e.Symmetric().LeftPrev().setFace(e.Symmetric().Face())
	}
}

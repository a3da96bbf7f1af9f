package cdt

// Removal of the enclosing triangle. Each sentinel vertex is stripped
// of its incident triangles one by one, boundary-first, and finally
// removed together with the last triangle's pair of boundary edges.

// findEnclosingTriangleEdge locates a boundary edge whose origin is the
// sentinel vertex at (maxCoord, 0).
func (t *Triangulation) findEnclosingTriangleEdge() *Edge {
	po := NewUV(t.maxCoord, 0)

	e := t.locate(po)

	if e.Origin().U() != t.maxCoord {
		e = e.Symmetric()
		if e.Origin().U() != t.maxCoord {
			fatalf("failed to find an edge of the enclosing triangle")
		}
	}

	// Rotate the star until the destination is the sentinel at
	// (0, maxCoord); that spoke is the hull edge between them.
	for e.Destination().V() != t.maxCoord {
		e = e.OriginNext()
	}

	return e
}

// removeEnclosingTriangle removes the three sentinel vertices along
// with every triangle incident to them, leaving the triangulation of
// the convex hull of the real input.
func (t *Triangulation) removeEnclosingTriangle() {
	eNext := t.findEnclosingTriangleEdge()

	for i := 0; i < 3; i++ {
		eIter := eNext
		// Pick up the next sentinel's boundary edge before this one's
		// neighborhood is torn down.
		eNext = eNext.Symmetric().OriginNext()
		t.removeBoundaryVertex(eIter)
	}
}

// removeBoundaryVertex removes every triangle incident to the origin of
// e, then the vertex itself. e must be a boundary edge.
func (t *Triangulation) removeBoundaryVertex(e *Edge) {
	eIter := e
	eLast := e.OriginPrev()

	for {
		eNext := eIter.OriginNext()

		// Never delete the edge the point locator starts from.
		if eIter == t.StartingEdge() || eIter.Symmetric() == t.StartingEdge() {
			t.setStartingEdge(eIter.DestinationPrev())
		}

		if eNext == eLast {
			// One triangle left at this vertex: both of its remaining
			// spokes go, and the vertex with them.
			t.removeBoundaryTriangleAndVertex(eIter, eLast)
			return
		}
		t.removeBoundaryTriangle(eIter)
		eIter = eNext
	}
}

// removeBoundaryTriangle removes the bounded triangle on the left of
// the boundary edge e, merging it into the unbounded face.
func (t *Triangulation) removeBoundaryTriangle(e *Edge) {
	if !e.Face().IsBounded() {
		fatalf("attempt to remove the unbounded face")
	}

	e2 := e.Symmetric()
	fub := e2.Face()
	if fub.IsBounded() {
		fatalf("expected a boundary edge")
	}

	t.deleteFace(e.Face())

	e.LeftPrev().setFace(fub)
	e.LeftNext().setFace(fub)

	if fub.Edge() == e2 {
		fub.setEdge(e.LeftNext())
	}

	t.deleteEdge(e)
}

// removeBoundaryTriangleAndVertex removes a triangle incident to two
// boundary edges e1 and e2 together with their shared origin vertex.
// When e1 == e2 the vertex hangs off a single edge and only that edge
// is removed.
func (t *Triangulation) removeBoundaryTriangleAndVertex(e1, e2 *Edge) {
	if e1 != e2 {
		fub := e1.Symmetric().Face()
		if !e1.Face().IsBounded() || fub.IsBounded() || e2.Face().IsBounded() {
			fatalf("unexpected face configuration at a boundary vertex")
		}

		t.deleteFace(e1.Face())

		e1.LeftNext().setFace(fub)

		if fub.Edge() == e2 {
			fub.setEdge(e1.LeftNext())
		}

		t.deleteEdge(e1)
		t.deleteEdge(e2)
	} else {
		t.deleteEdge(e1)
	}
}

package cdt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Shared structural assertions. Every constructed triangulation should
// survive all of these; the scenario tests call them after each build.

// AssertQuadEdgeAlgebra checks the algebraic identities of the
// quad-edge operators over every registered edge.
func AssertQuadEdgeAlgebra(t *testing.T, tr *Triangulation) {
	t.Helper()
	tr.EachEdge(func(e *Edge) {
		require.Same(t, e, e.Symmetric().Symmetric(), "Sym must be an involution")
		require.Same(t, e.Symmetric(), e.Rotation().Rotation(), "Rot^2 must be Sym")
		require.Same(t, e, e.Rotation().Rotation().Rotation().Rotation(), "Rot^4 must be the identity")
		require.Same(t, e, e.Rotation().InverseRotation(), "InvRot must invert Rot")
		require.Same(t, e.Origin(), e.OriginNext().Origin(), "Onext must preserve the origin")
		require.Same(t, e, e.OriginNext().OriginPrev(), "Oprev must invert Onext")
		require.Same(t, e.Origin(), e.Symmetric().Destination(), "Sym must exchange the endpoints")
	})
}

// AssertTriangleFaces checks that every bounded face has a left cycle
// of exactly three edges, each pointing back at the face.
func AssertTriangleFaces(t *testing.T, tr *Triangulation) {
	t.Helper()
	tr.EachFace(func(f *Face) {
		if !f.IsBounded() {
			return
		}
		e1 := f.Edge()
		require.NotNil(t, e1)
		e2 := e1.LeftNext()
		e3 := e2.LeftNext()
		require.Same(t, e1, e3.LeftNext(), "bounded face cycle must have length 3")
		require.Same(t, f, e1.Face())
		require.Same(t, f, e2.Face())
		require.Same(t, f, e3.Face())
	})
}

// AssertDelaunay checks the circumcircle property for every interior,
// unconstrained edge: neither opposite vertex may lie strictly inside
// the circle of the other triangle.
func AssertDelaunay(t *testing.T, tr *Triangulation) {
	t.Helper()
	tr.EachEdge(func(e *Edge) {
		if e.IsConstrained() {
			return
		}
		if !e.Face().IsBounded() || !e.Symmetric().Face().IsBounded() {
			return
		}
		rightOpp := e.OriginPrev().Destination()
		leftOpp := e.OriginNext().Destination()

		inside := tr.preds.InCircle(
			e.Origin().U(), e.Origin().V(),
			rightOpp.U(), rightOpp.V(),
			e.Destination().U(), e.Destination().V(),
			leftOpp.U(), leftOpp.V(),
		)
		require.False(t, inside,
			"edge (%v,%v)-(%v,%v) violates the Delaunay property",
			e.Origin().U(), e.Origin().V(), e.Destination().U(), e.Destination().V())
	})
}

// AssertEuler checks Euler's formula V - E + F = 2 for the full
// subdivision, unbounded face included.
func AssertEuler(t *testing.T, tr *Triangulation) {
	t.Helper()
	v := tr.NumVertices()
	e := tr.NumEdges()
	f := tr.NumFaces()
	require.Equal(t, 2, v-e+f, "Euler characteristic (V=%d, E=%d, F=%d)", v, e, f)
}

// AssertConstraintPresent checks that the segment p1-p2 appears as a
// constrained edge, in either direction.
func AssertConstraintPresent(t *testing.T, tr *Triangulation, p1, p2 Point) {
	t.Helper()
	found := false
	tr.EachEdge(func(e *Edge) {
		if !e.IsConstrained() {
			return
		}
		if samePlace(e.Origin().Point(), p1) && samePlace(e.Destination().Point(), p2) {
			found = true
		}
	})
	require.True(t, found, "segment (%v,%v)-(%v,%v) missing from the triangulation",
		p1.U(), p1.V(), p2.U(), p2.V())
}

// AssertValidTriangulation runs the full battery.
func AssertValidTriangulation(t *testing.T, tr *Triangulation) {
	t.Helper()
	AssertQuadEdgeAlgebra(t, tr)
	AssertTriangleFaces(t, tr)
	AssertDelaunay(t, tr)
	AssertEuler(t, tr)
}

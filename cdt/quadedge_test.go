package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadEdgeBaseState(t *testing.T) {
	qe := NewQuadEdge()

	t.Run("ids and ownership", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			e := qe.Edge(i)
			assert.Equal(t, i, e.ID())
			assert.Same(t, qe, e.Owner())
		}
	})

	t.Run("primal edges loop to themselves", func(t *testing.T) {
		assert.Same(t, qe.Edge(0), qe.Edge(0).OriginNext())
		assert.Same(t, qe.Edge(2), qe.Edge(2).OriginNext())
	})

	t.Run("dual edges loop to each other", func(t *testing.T) {
		assert.Same(t, qe.Edge(3), qe.Edge(1).OriginNext())
		assert.Same(t, qe.Edge(1), qe.Edge(3).OriginNext())
	})

	t.Run("algebra", func(t *testing.T) {
		e := qe.Edge(0)
		assert.Same(t, qe.Edge(2), e.Symmetric())
		assert.Same(t, qe.Edge(1), e.Rotation())
		assert.Same(t, qe.Edge(3), e.InverseRotation())
		assert.Same(t, e, e.Rotation().Rotation().Rotation().Rotation())
		assert.Same(t, e.Symmetric(), e.Rotation().Rotation())
	})

	t.Run("flags are shared by all four edges", func(t *testing.T) {
		assert.False(t, qe.Edge(0).IsConstrained())
		qe.setConstrained(true)
		for i := 0; i < 4; i++ {
			assert.True(t, qe.Edge(i).IsConstrained())
		}
	})
}

func TestSpliceMergesAndSplits(t *testing.T) {
	// Two isolated edges sharing no links. Splicing merges their origin
	// rings; splicing again splits them back apart.
	a := NewQuadEdge().Edge(0)
	b := NewQuadEdge().Edge(0)

	a.Splice(b)
	assert.Same(t, b, a.OriginNext())
	assert.Same(t, a, b.OriginNext())

	a.Splice(b)
	assert.Same(t, a, a.OriginNext())
	assert.Same(t, b, b.OriginNext())
}

func TestEnclosingTriangleFaceCycle(t *testing.T) {
	// Build the first triangle the way the bootstrap does and verify
	// the face cycle closes.
	tr := newTriangulation()
	tr.createEnclosingTriangle(NewUV(30, 0), NewUV(0, 30), NewUV(-30, -30))

	e := tr.StartingEdge()
	require.NotNil(t, e)

	assert.Same(t, e, e.LeftNext().LeftNext().LeftNext())
	assert.Same(t, e, e.LeftPrev().LeftPrev().LeftPrev())
	assert.Equal(t, 3, tr.NumEdges())
	assert.Equal(t, 3, tr.NumVertices())
	assert.Equal(t, 2, tr.NumFaces())

	AssertQuadEdgeAlgebra(t, tr)
	AssertTriangleFaces(t, tr)

	// One side is bounded, the other is the outer face.
	assert.True(t, e.Face().IsBounded())
	assert.False(t, e.Symmetric().Face().IsBounded())
}

func TestSwapRotatesDiagonal(t *testing.T) {
	// A rectangle with one diagonal; swapping the diagonal must connect
	// the other two corners.
	points := uvs(0, 0, 10, 0, 10, 5, 0, 5)
	tr, err := New(points)
	require.NoError(t, err)

	var diag *Edge
	tr.EachEdge(func(e *Edge) {
		if diag != nil {
			return
		}
		if e.Face().IsBounded() && e.Symmetric().Face().IsBounded() {
			diag = e
		}
	})
	require.NotNil(t, diag, "the rectangle must have an interior diagonal")

	before := []*Vertex{diag.Origin(), diag.Destination()}
	tr.swap(diag)
	diag.Face().setEdge(diag)
	diag.LeftPrev().setFace(diag.Face())
	diag.Symmetric().Face().setEdge(diag.Symmetric())
	diag.Symmetric().LeftPrev().setFace(diag.Symmetric().Face())

	after := []*Vertex{diag.Origin(), diag.Destination()}
	assert.NotContains(t, after, before[0])
	assert.NotContains(t, after, before[1])

	AssertQuadEdgeAlgebra(t, tr)
	AssertTriangleFaces(t, tr)
	AssertEuler(t, tr)
}

func TestDeleteEdgeDropsDanglingVertex(t *testing.T) {
	a := NewQuadEdge().Edge(0)
	b := NewQuadEdge().Edge(0)

	tr := newTriangulation()
	va := newVertex(NewUV(0, 0), a)
	vb := newVertex(NewUV(1, 0), b)
	vc := newVertex(NewUV(2, 0), nil)
	a.setEndpoints(va, vb)
	b.setEndpoints(vb, vc)
	a.Symmetric().Splice(b)

	tr.addEdge(a)
	tr.addEdge(a.Symmetric())
	tr.addEdge(b)
	tr.addEdge(b.Symmetric())
	tr.addVertex(va)
	tr.addVertex(vb)
	tr.addVertex(vc)
	tr.setStartingEdge(a)

	// Deleting b strands vc; it must leave the registry. vb survives on
	// edge a.
	tr.deleteEdge(b)
	assert.Equal(t, 1, tr.NumEdges())
	assert.Equal(t, 2, tr.NumVertices())
}

func TestLocateFindsContainingTriangle(t *testing.T) {
	tr := newTriangulation()
	tr.maxCoord = 30
	tr.createEnclosingTriangle(NewUV(30, 0), NewUV(0, 30), NewUV(-30, -30))

	t.Run("interior point", func(t *testing.T) {
		e := tr.locate(NewUV(1, 1))
		require.NotNil(t, e)
		// The left face of the returned edge must contain the point.
		assert.False(t, tr.rightOf(NewUV(1, 1), e))
	})

	t.Run("vertex hit", func(t *testing.T) {
		e := tr.locate(NewUV(30, 0))
		ok := samePlace(e.Origin().Point(), NewUV(30, 0)) ||
			samePlace(e.Destination().Point(), NewUV(30, 0))
		assert.True(t, ok)
	})
}

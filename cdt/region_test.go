package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionClassification(t *testing.T) {
	t.Run("no constraints means one trimmed region", func(t *testing.T) {
		// Without constraints the hull boundary is unconstrained, so
		// every face floods from it as trimmed.
		tr, err := New(uvs(0, 0, 10, 0, 10, 5, 0, 5))
		require.NoError(t, err)

		NewRegionVisitor().Visit(tr)

		bounded := 0
		tr.EachFace(func(f *Face) {
			if f.IsBounded() {
				bounded++
				assert.True(t, f.IsMarked(), "unconstrained hull face must be trimmed")
			}
		})
		assert.Equal(t, 2, bounded)
	})

	t.Run("constrained diagonal splits two regions", func(t *testing.T) {
		// Square with a constrained diagonal: the two triangles are in
		// different regions, both touching the unconstrained hull, so
		// both trimmed.
		tr, err := NewConstrained(uvs(0, 0, 10, 0, 10, 10, 0, 10), []int{0, 2})
		require.NoError(t, err)

		NewRegionVisitor().Visit(tr)

		tr.EachFace(func(f *Face) {
			if f.IsBounded() {
				assert.True(t, f.IsMarked())
			}
		})
	})

	t.Run("constrained outline keeps its interior", func(t *testing.T) {
		// A constrained triangle outline inside a larger point set: the
		// faces inside the outline form a non-trimmed region, the
		// outside ring is trimmed.
		points := uvs(
			0, 0, 20, 0, 20, 20, 0, 20, // outer square
			5, 5, 15, 5, 10, 14, // constrained inner triangle
		)
		segments := []int{4, 5, 5, 6, 6, 4}

		tr, err := NewConstrained(points, segments)
		require.NoError(t, err)

		NewRegionVisitor().Visit(tr)

		inner, outer := 0, 0
		tr.EachFace(func(f *Face) {
			if !f.IsBounded() {
				return
			}
			if faceInsideTriangle(tr, f, points[4], points[5], points[6]) {
				inner++
				assert.False(t, f.IsMarked(), "faces inside the outline are kept")
			} else {
				outer++
				assert.True(t, f.IsMarked(), "faces outside the outline are trimmed")
			}
		})
		assert.NotZero(t, inner)
		assert.NotZero(t, outer)
	})
}

// faceInsideTriangle reports whether the centroid of f lies inside the
// triangle (a, b, c), CCW.
func faceInsideTriangle(tr *Triangulation, f *Face, a, b, c Point) bool {
	e := f.Edge()
	v1 := e.Origin()
	v2 := e.LeftNext().Origin()
	v3 := e.LeftPrev().Origin()
	cu := (v1.U() + v2.U() + v3.U()) / 3
	cv := (v1.V() + v2.V() + v3.V()) / 3

	return tr.preds.LeftOn(a.U(), a.V(), b.U(), b.V(), cu, cv) &&
		tr.preds.LeftOn(b.U(), b.V(), c.U(), c.V(), cu, cv) &&
		tr.preds.LeftOn(c.U(), c.V(), a.U(), a.V(), cu, cv)
}

func TestTrimmedEnumeration(t *testing.T) {
	points := uvs(
		0, 0, 20, 0, 20, 20, 0, 20,
		5, 5, 15, 5, 10, 14,
	)
	segments := []int{4, 5, 5, 6, 6, 4}

	tr, err := NewConstrained(points, segments)
	require.NoError(t, err)

	mesh := NewTriangulationVisitor().Visit(tr)

	// Only the interior of the constrained outline survives; its
	// vertices are exactly the outline's three.
	assert.Equal(t, 3, mesh.NumVertices())
	assert.NotZero(t, mesh.NumTriangles())
	for i := 0; i+2 < len(mesh.Triangles); i += 3 {
		f := mesh.Triangles[i : i+3]
		for _, idx := range f {
			assert.Less(t, idx, mesh.NumVertices())
		}
	}

	// Marks must be cleared afterwards.
	tr.EachFace(func(f *Face) {
		assert.False(t, f.IsMarked())
	})
}

func TestTrimmedEnumerationWithoutConstraints(t *testing.T) {
	// With no constraints everything is trimmed, so the kept mesh is
	// empty; the untrimmed enumeration still sees both triangles.
	tr, err := New(uvs(0, 0, 10, 0, 10, 5, 0, 5))
	require.NoError(t, err)

	trimmed := NewTriangulationVisitor().Visit(tr)
	assert.Zero(t, trimmed.NumTriangles())

	full := NewFaceVisitor().Visit(tr)
	assert.Equal(t, 2, full.NumTriangles())
}

// A constrained Delaunay triangulation library for Go.
//
// This package converts a planar straight-line graph — a set of points
// plus non-crossing constraint segments — into a triangulation in which
// every constraint appears as an edge and every unconstrained edge
// satisfies the Delaunay property. Construction is incremental on a
// quad-edge structure, and all orientation and in-circle decisions go
// through adaptive-precision exact arithmetic, so degenerate and
// near-degenerate inputs are handled without tolerances.
package cdtri

import "github.com/meshprim/cdtri/cdt"

// Re-exported engine types, for callers that only need the facade.
type (
	Point    = cdt.Point
	UV       = cdt.UV
	Mesh     = cdt.Mesh
	EdgeType = cdt.EdgeType
	Error    = cdt.Error
)

const (
	Regular     = cdt.Regular
	Constrained = cdt.Constrained
	Boundary    = cdt.Boundary
)

// NewUV returns a plain point at (u, v).
func NewUV(u, v float64) *UV {
	return cdt.NewUV(u, v)
}

// Triangulate builds the Delaunay triangulation of the points and
// returns its flat-array form. Duplicate points are dropped. Fails with
// a *cdt.Error when fewer than three points are given or all points are
// collinear.
func Triangulate(points []Point) (*Mesh, error) {
	t, err := cdt.New(points)
	if err != nil {
		return nil, err
	}
	return cdt.NewFaceVisitor().Visit(t), nil
}

// TriangulateConstrained builds the constrained Delaunay triangulation
// of the PSLG and returns its flat-array form with every bounded face
// included. segments is a flat list of index pairs into points.
func TriangulateConstrained(points []Point, segments []int) (*Mesh, error) {
	t, err := cdt.NewConstrained(points, segments)
	if err != nil {
		return nil, err
	}
	return cdt.NewFaceVisitor().Visit(t), nil
}

// TriangulateTrimmed is TriangulateConstrained with region trimming:
// regions outside the constrained outlines are classified away and only
// the kept faces are enumerated.
func TriangulateTrimmed(points []Point, segments []int) (*Mesh, error) {
	t, err := cdt.NewConstrained(points, segments)
	if err != nil {
		return nil, err
	}
	return cdt.NewTriangulationVisitor().Visit(t), nil
}

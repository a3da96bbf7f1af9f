package cdt

import "container/list"

// Vertex is a topological vertex of the triangulation. It owns its
// geometric Point and remembers one edge whose origin it is; the full
// star is reachable from that edge via OriginNext. Vertices are created
// by the triangulator and dropped when their last incident edge goes.
//
// Vertices are only ever handled by pointer, so the registry position
// below can never be aliased by a copy.
type Vertex struct {
	point Point
	edge  *Edge
	pos   *list.Element // position in the triangulation's vertex registry
}

func newVertex(p Point, e *Edge) *Vertex {
	return &Vertex{point: p, edge: e}
}

// Point returns the geometric attribute of this vertex.
func (v *Vertex) Point() Point { return v.point }

// U returns the first coordinate of the vertex point.
func (v *Vertex) U() float64 { return v.point.U() }

// V returns the second coordinate of the vertex point.
func (v *Vertex) V() float64 { return v.point.V() }

// Edge returns an edge whose origin is this vertex.
func (v *Vertex) Edge() *Edge { return v.edge }

func (v *Vertex) setEdge(e *Edge) { v.edge = e }

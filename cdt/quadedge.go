package cdt

import "container/list"

// Quad-edge data structure after Guibas and Stolfi, "Primitives for the
// Manipulation of General Subdivisions and the Computation of Voronoi
// Diagrams", ACM Transactions on Graphics 4(2), 1985, augmented with
// explicit face records and a constrained flag per quad-edge.
//
// A QuadEdge owns its four directed edges in a fixed array, so the
// algebraic operators (Symmetric, Rotation, InverseRotation) are pure id
// arithmetic into that array and never follow a next link. Edges with
// ids 0 and 2 are the primal pair; 1 and 3 are the dual pair.

// Edge is one of the four directed edges of a QuadEdge.
type Edge struct {
	owner *QuadEdge
	id    int
	next  *Edge
	orig  *Vertex
	face  *Face
	pos   *list.Element // position in the triangulation's edge registry
}

// QuadEdge groups an undirected edge's two primal and two dual directed
// edges, and carries the flags shared by all four.
type QuadEdge struct {
	edges       [4]Edge
	marked      bool
	constrained bool
}

// NewQuadEdge returns a fresh quad-edge whose primal edges loop to
// themselves and whose dual edges loop to each other, the Guibas-Stolfi
// base state of an isolated edge.
func NewQuadEdge() *QuadEdge {
	qe := &QuadEdge{}
	for i := range qe.edges {
		qe.edges[i].owner = qe
		qe.edges[i].id = i
	}
	qe.edges[0].next = &qe.edges[0]
	qe.edges[2].next = &qe.edges[2]
	qe.edges[1].next = &qe.edges[3]
	qe.edges[3].next = &qe.edges[1]
	return qe
}

// Edge returns the i-th directed edge, i in 0..3.
func (qe *QuadEdge) Edge(i int) *Edge {
	if i < 0 || i > 3 {
		fatalf("quad-edge id %d out of range", i)
	}
	return &qe.edges[i]
}

// IsConstrained reports whether this quad-edge is a PSLG segment.
func (qe *QuadEdge) IsConstrained() bool { return qe.constrained }

func (qe *QuadEdge) setConstrained(value bool) { qe.constrained = value }

// IsMarked reports the visitor mark.
func (qe *QuadEdge) IsMarked() bool { return qe.marked }

// SetMark sets the visitor mark.
func (qe *QuadEdge) SetMark(value bool) { qe.marked = value }

// Owner returns the quad-edge this edge belongs to.
func (e *Edge) Owner() *QuadEdge { return e.owner }

// ID returns the edge's ordinal within its quad-edge.
func (e *Edge) ID() int { return e.id }

// Origin returns the origin vertex.
func (e *Edge) Origin() *Vertex { return e.orig }

// Destination returns the destination vertex, i.e. the origin of the
// symmetric edge.
func (e *Edge) Destination() *Vertex { return e.Symmetric().orig }

// Face returns the face on the left of this edge.
func (e *Edge) Face() *Face { return e.face }

// IsConstrained reports whether the owning quad-edge is constrained.
func (e *Edge) IsConstrained() bool { return e.owner.constrained }

// Rotation returns the dual edge obtained by rotating this edge 90
// degrees counterclockwise: id (i+1) mod 4.
func (e *Edge) Rotation() *Edge {
	return &e.owner.edges[(e.id+1)&3]
}

// InverseRotation returns the dual edge at id (i+3) mod 4.
func (e *Edge) InverseRotation() *Edge {
	return &e.owner.edges[(e.id+3)&3]
}

// Symmetric returns this edge with its direction reversed: id (i+2)
// mod 4.
func (e *Edge) Symmetric() *Edge {
	return &e.owner.edges[(e.id+2)&3]
}

// OriginNext returns the next edge counterclockwise around the origin
// vertex.
func (e *Edge) OriginNext() *Edge { return e.next }

// OriginPrev returns the next edge clockwise around the origin vertex.
func (e *Edge) OriginPrev() *Edge {
	return e.Rotation().OriginNext().Rotation()
}

// DestinationNext returns the next edge counterclockwise around the
// destination vertex.
func (e *Edge) DestinationNext() *Edge {
	return e.Symmetric().OriginNext().Symmetric()
}

// DestinationPrev returns the next edge clockwise around the
// destination vertex.
func (e *Edge) DestinationPrev() *Edge {
	return e.InverseRotation().OriginNext().InverseRotation()
}

// LeftNext returns the next edge counterclockwise around the left face,
// with the same left face.
func (e *Edge) LeftNext() *Edge {
	return e.InverseRotation().OriginNext().Rotation()
}

// LeftPrev returns the previous edge around the left face.
func (e *Edge) LeftPrev() *Edge {
	return e.OriginNext().Symmetric()
}

// RightNext returns the next edge counterclockwise around the right
// face.
func (e *Edge) RightNext() *Edge {
	return e.Rotation().OriginNext().InverseRotation()
}

// RightPrev returns the previous edge around the right face.
func (e *Edge) RightPrev() *Edge {
	return e.Symmetric().OriginNext()
}

// Splice is the fundamental quad-edge mutation. If e and f share an
// origin, it splits the counterclockwise rotation cycle of that vertex
// in two; if they belong to distinct cycles, it merges them. Dually it
// does the inverse to the face cycles through e and f. Four next links
// are rewired; everything else is derived.
func (e *Edge) Splice(f *Edge) {
	eNextDual := e.OriginNext().Rotation()
	fNextDual := f.OriginNext().Rotation()

	eNext := e.OriginNext()
	fNext := f.OriginNext()
	eDualNext := eNextDual.OriginNext()
	fDualNext := fNextDual.OriginNext()

	e.next = fNext
	f.next = eNext
	eNextDual.next = fDualNext
	fNextDual.next = eDualNext
}

func (e *Edge) setOrigin(v *Vertex) { e.orig = v }

func (e *Edge) setDestination(v *Vertex) { e.Symmetric().orig = v }

// setEndpoints assigns both endpoint vertices.
func (e *Edge) setEndpoints(orig, dest *Vertex) {
	e.setOrigin(orig)
	e.setDestination(dest)
}

func (e *Edge) setFace(f *Face) { e.face = f }

package cdt

// Enumeration of the triangulation into flat arrays: dense vertex
// indices assigned on first sighting during the face walk, triangle
// index triples in CCW order, edge index pairs, and a type tag per
// edge. FaceVisitor enumerates every bounded face; TriangulationVisitor
// first runs region classification and enumerates only the kept
// regions.

// EdgeType tags an enumerated edge.
type EdgeType int

const (
	// Regular is an interior, unconstrained edge.
	Regular EdgeType = iota
	// Constrained is a PSLG segment, interior or boundary.
	Constrained
	// Boundary is an unconstrained convex-hull edge.
	Boundary
)

func (et EdgeType) String() string {
	switch et {
	case Regular:
		return "Regular"
	case Constrained:
		return "Constrained"
	case Boundary:
		return "Boundary"
	}
	return "Unknown"
}

// Mesh is the flat-array form of a triangulation. Triangles holds three
// vertex indices per face, CCW; Edges holds two per edge, parallel to
// EdgeTypes. Indices point into Vertices, whose entries are the same
// Point values the caller handed to the triangulator.
type Mesh struct {
	Vertices  []Point
	Triangles []int
	Edges     []int
	EdgeTypes []EdgeType
}

// NumVertices returns the number of enumerated vertices.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumTriangles returns the number of enumerated triangles.
func (m *Mesh) NumTriangles() int { return len(m.Triangles) / 3 }

// NumEdges returns the number of enumerated edges.
func (m *Mesh) NumEdges() int { return len(m.Edges) / 2 }

// FaceVisitor walks bounded faces and accumulates the entities to
// enumerate.
type FaceVisitor struct {
	vertexIndex map[*Vertex]int
	vertexOrder []*Vertex
	edgeList    []*Edge
	faceList    []*Face
}

// NewFaceVisitor returns an empty enumeration visitor.
func NewFaceVisitor() *FaceVisitor {
	return &FaceVisitor{vertexIndex: make(map[*Vertex]int)}
}

// Visit enumerates every bounded face of t and returns the flat mesh.
func (fv *FaceVisitor) Visit(t *Triangulation) *Mesh {
	fv.reset()

	t.EachFace(func(f *Face) {
		if f.IsBounded() {
			fv.visitFace(f)
		}
	})

	return fv.collect()
}

func (fv *FaceVisitor) reset() {
	fv.vertexIndex = make(map[*Vertex]int)
	fv.vertexOrder = fv.vertexOrder[:0]
	fv.edgeList = fv.edgeList[:0]
	fv.faceList = fv.faceList[:0]
}

// visitFace records a face and its not-yet-seen edges. Quad-edges are
// marked so each undirected edge is taken once; the marks are cleared
// in collect.
func (fv *FaceVisitor) visitFace(f *Face) {
	e1 := f.Edge()
	if e1 == nil || e1.Face() != f {
		fatalf("face has an inconsistent edge pointer")
	}
	e2 := e1.LeftNext()
	e3 := e2.LeftNext()
	if e3.LeftNext() != e1 {
		fatalf("bounded face boundary is not a triangle")
	}

	for _, e := range [3]*Edge{e1, e2, e3} {
		if !e.Owner().IsMarked() {
			fv.visitEdge(e)
		}
	}
	fv.faceList = append(fv.faceList, f)
}

func (fv *FaceVisitor) visitEdge(e *Edge) {
	fv.visitVertex(e.Origin())
	fv.visitVertex(e.Destination())
	fv.edgeList = append(fv.edgeList, e)
	e.Owner().SetMark(true)
}

// visitVertex assigns the vertex a dense index on first sighting.
func (fv *FaceVisitor) visitVertex(v *Vertex) {
	if _, ok := fv.vertexIndex[v]; !ok {
		fv.vertexIndex[v] = len(fv.vertexIndex)
		fv.vertexOrder = append(fv.vertexOrder, v)
	}
}

// collect writes the accumulated entities into a Mesh and clears the
// traversal marks.
func (fv *FaceVisitor) collect() *Mesh {
	m := &Mesh{
		Vertices:  make([]Point, len(fv.vertexOrder)),
		Triangles: make([]int, 0, 3*len(fv.faceList)),
		Edges:     make([]int, 0, 2*len(fv.edgeList)),
		EdgeTypes: make([]EdgeType, 0, len(fv.edgeList)),
	}

	for i, v := range fv.vertexOrder {
		m.Vertices[i] = v.Point()
	}

	for _, e := range fv.edgeList {
		i1, ok := fv.vertexIndex[e.Origin()]
		if !ok {
			fatalf("enumerated edge references an unindexed vertex")
		}
		i2, ok := fv.vertexIndex[e.Destination()]
		if !ok {
			fatalf("enumerated edge references an unindexed vertex")
		}
		m.Edges = append(m.Edges, i1, i2)

		switch {
		case e.IsConstrained():
			m.EdgeTypes = append(m.EdgeTypes, Constrained)
		case e.Symmetric().Face() != nil && e.Symmetric().Face().IsBounded():
			m.EdgeTypes = append(m.EdgeTypes, Regular)
		default:
			m.EdgeTypes = append(m.EdgeTypes, Boundary)
		}

		e.Owner().SetMark(false)
	}

	for _, f := range fv.faceList {
		v1 := f.Edge().Origin()
		v2 := f.Edge().LeftNext().Origin()
		v3 := f.Edge().LeftPrev().Origin()
		for _, v := range [3]*Vertex{v1, v2, v3} {
			idx, ok := fv.vertexIndex[v]
			if !ok {
				fatalf("enumerated face references an unindexed vertex")
			}
			m.Triangles = append(m.Triangles, idx)
		}
	}

	return m
}

// TriangulationVisitor enumerates only the faces of kept (non-trimmed)
// regions: it runs RegionVisitor first, then walks bounded faces whose
// trimmed mark is unset.
type TriangulationVisitor struct {
	FaceVisitor
}

// NewTriangulationVisitor returns an empty trimming-aware enumeration
// visitor.
func NewTriangulationVisitor() *TriangulationVisitor {
	return &TriangulationVisitor{
		FaceVisitor{vertexIndex: make(map[*Vertex]int)},
	}
}

// Visit classifies regions and enumerates the kept bounded faces of t.
// Face marks are left cleared afterwards.
func (tv *TriangulationVisitor) Visit(t *Triangulation) *Mesh {
	tv.reset()

	// Mark everything trimmed first, so faces the classifier cannot
	// reach (there are none in a consistent CDT) default to excluded.
	t.EachFace(func(f *Face) { f.SetMark(true) })

	NewRegionVisitor().Visit(t)

	t.EachFace(func(f *Face) {
		if f.IsBounded() && !f.IsMarked() {
			tv.visitFace(f)
		}
	})

	m := tv.collect()

	t.EachFace(func(f *Face) { f.SetMark(false) })

	return m
}

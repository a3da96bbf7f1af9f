package cdt

import (
	"container/list"
	"math"
)

// Triangulation is a constrained Delaunay triangulation of a planar
// straight-line graph, built incrementally on the quad-edge structure.
// It owns three registries (vertices, directed edges, faces), the
// distinguished starting edge used by point location, and the scalar
// maxCoord that positions the enclosing triangle and drives the
// sentinel-aware in-circle test.
//
// A Triangulation is single-threaded: the registries and the predicate
// state are not guarded, and separate instances are fully independent.
type Triangulation struct {
	sedge    *Edge
	maxCoord float64
	verts    *list.List // of *Vertex
	edges    *list.List // of *Edge, both directions of every quad-edge
	faces    *list.List // of *Face
	preds    Predicates
}

// New builds the Delaunay triangulation of the given points. It fails
// with a validation error if fewer than three points are given or all
// points are collinear. Duplicate points are discarded.
func New(points []Point) (t *Triangulation, err error) {
	defer func() {
		if rerr := HandlePanicRecover(recover()); rerr != nil {
			t = nil
			err = rerr
		}
	}()

	t = newTriangulation()
	t.checkPointConsistency(points)
	t.build(points, nil)
	return t, nil
}

// NewConstrained builds the constrained Delaunay triangulation of the
// given PSLG. segments is a flat list of 2*k indices into points, each
// pair naming the endpoints of one constraint segment. In addition to
// the point checks, it fails if any two segments cross in their
// interiors or name the same endpoint pair twice.
func NewConstrained(points []Point, segments []int) (t *Triangulation, err error) {
	defer func() {
		if rerr := HandlePanicRecover(recover()); rerr != nil {
			t = nil
			err = rerr
		}
	}()

	if len(segments)%2 != 0 {
		fatalf("segment index list has odd length %d", len(segments))
	}
	t = newTriangulation()
	t.checkPointConsistency(points)
	t.checkSegmentConsistency(points, segments)
	t.build(points, segments)
	return t, nil
}

func newTriangulation() *Triangulation {
	return &Triangulation{
		verts: list.New(),
		edges: list.New(),
		faces: list.New(),
		preds: NewPredicates(),
	}
}

// build runs the shared construction pipeline: enclosing triangle,
// point insertion, optional segment insertion, sentinel removal.
func (t *Triangulation) build(points []Point, segments []int) {
	max := 0.0
	for _, p := range points {
		if u := math.Abs(p.U()); u > max {
			max = u
		}
		if v := math.Abs(p.V()); v > max {
			max = v
		}
	}

	// The enclosing triangle is placed three times as far out as the
	// farthest coordinate. The value is also what the in-circle test
	// uses to recognize sentinel vertices.
	max *= 3
	t.maxCoord = max

	t.createEnclosingTriangle(
		NewUV(max, 0),
		NewUV(0, max),
		NewUV(-max, -max),
	)

	for _, p := range points {
		t.insertPoint(p)
	}

	for i := 0; i < len(segments); i += 2 {
		t.insertSegment(points[segments[i]], points[segments[i+1]])
	}

	t.removeEnclosingTriangle()
}

// StartingEdge returns the triangulation's current starting edge. It is
// never nil and always registered.
func (t *Triangulation) StartingEdge() *Edge { return t.sedge }

// MaxCoord returns three times the largest absolute input coordinate,
// the coordinate magnitude of the (already removed) enclosing
// triangle's vertices.
func (t *Triangulation) MaxCoord() float64 { return t.maxCoord }

// NumVertices returns the number of vertices.
func (t *Triangulation) NumVertices() int { return t.verts.Len() }

// NumEdges returns the number of undirected edges. The registry holds
// both directions of every quad-edge.
func (t *Triangulation) NumEdges() int { return t.edges.Len() / 2 }

// NumFaces returns the number of faces, the unbounded one included
// while it exists.
func (t *Triangulation) NumFaces() int { return t.faces.Len() }

// EachVertex calls fn for every vertex of the triangulation. fn must
// not mutate the triangulation.
func (t *Triangulation) EachVertex(fn func(*Vertex)) {
	for el := t.verts.Front(); el != nil; el = el.Next() {
		fn(el.Value.(*Vertex))
	}
}

// EachEdge calls fn for every directed edge of the triangulation, both
// directions of every quad-edge included. fn must not mutate the
// triangulation.
func (t *Triangulation) EachEdge(fn func(*Edge)) {
	for el := t.edges.Front(); el != nil; el = el.Next() {
		fn(el.Value.(*Edge))
	}
}

// EachFace calls fn for every face. fn must not mutate the
// triangulation.
func (t *Triangulation) EachFace(fn func(*Face)) {
	for el := t.faces.Front(); el != nil; el = el.Next() {
		fn(el.Value.(*Face))
	}
}

func (t *Triangulation) setStartingEdge(e *Edge) { t.sedge = e }

func (t *Triangulation) addVertex(v *Vertex) {
	v.pos = t.verts.PushBack(v)
}

func (t *Triangulation) addEdge(e *Edge) {
	e.pos = t.edges.PushBack(e)
}

func (t *Triangulation) addFace(f *Face) {
	f.pos = t.faces.PushBack(f)
}

// createEnclosingTriangle bootstraps the subdivision with the three
// sentinel vertices: three quad-edges spliced into a cycle, one bounded
// face and the unbounded face. The starting edge is pa -> pb.
func (t *Triangulation) createEnclosingTriangle(pa, pb, pc Point) {
	va := newVertex(pa, nil)
	vb := newVertex(pb, nil)
	vc := newVertex(pc, nil)

	ea := NewQuadEdge().Edge(0)
	ea.setEndpoints(va, vb)

	eb := NewQuadEdge().Edge(0)
	eb.setEndpoints(vb, vc)

	ea.Symmetric().Splice(eb)

	ec := NewQuadEdge().Edge(0)
	ec.setEndpoints(vc, va)

	eb.Symmetric().Splice(ec)
	ec.Symmetric().Splice(ea)

	t.setStartingEdge(ea)

	va.setEdge(ea)
	vb.setEdge(eb)
	vc.setEdge(ec)

	t.addEdge(ea)
	t.addEdge(eb)
	t.addEdge(ec)
	t.addEdge(ea.Symmetric())
	t.addEdge(eb.Symmetric())
	t.addEdge(ec.Symmetric())

	t.addVertex(va)
	t.addVertex(vb)
	t.addVertex(vc)

	f := &Face{}
	f.setEdge(ea)
	f.edge.setFace(f)
	f.edge.LeftNext().setFace(f)
	f.edge.LeftPrev().setFace(f)
	f.setBounded(true)
	t.addFace(f)

	f = &Face{}
	f.setEdge(ea.Symmetric())
	f.edge.setFace(f)
	f.edge.LeftNext().setFace(f)
	f.edge.LeftPrev().setFace(f)
	f.setBounded(false)
	t.addFace(f)
}

// connect adds a new edge from the destination of ea to the origin of
// eb such that all three share the same left face afterwards, and
// registers it.
func (t *Triangulation) connect(ea, eb *Edge) *Edge {
	newEdge := NewQuadEdge().Edge(0)

	t.addEdge(newEdge)
	t.addEdge(newEdge.Symmetric())

	newEdge.Splice(ea.LeftNext())
	newEdge.Symmetric().Splice(eb)
	newEdge.setEndpoints(ea.Destination(), eb.Origin())

	return newEdge
}

// swap turns edge e counterclockwise inside the quadrilateral formed by
// the two triangles incident to it: detach from both endpoint stars,
// re-splice at the opposite vertices, reassign the endpoints.
func (t *Triangulation) swap(e *Edge) {
	ea := e.OriginPrev()
	eb := e.Symmetric().OriginPrev()

	// The endpoint vertices may currently name e as their incident
	// edge.
	ea.Origin().setEdge(ea)
	eb.Origin().setEdge(eb)

	e.Splice(ea)
	e.Symmetric().Splice(eb)
	e.Splice(ea.LeftNext())
	e.Symmetric().Splice(eb.LeftNext())
	e.setEndpoints(ea.Destination(), eb.Destination())
}

// deleteEdge splices e out of the stars of both endpoints and drops it
// from the registry. Endpoint vertices left without incident edges are
// dropped too.
func (t *Triangulation) deleteEdge(e *Edge) {
	vo := e.Origin()
	vd := e.Destination()

	if e != e.OriginPrev() {
		vo.setEdge(e.OriginPrev())
		vo = nil
	}
	if e != e.DestinationPrev() {
		vd.setEdge(e.Symmetric().OriginPrev())
		vd = nil
	}

	e.Splice(e.OriginPrev())
	e.Symmetric().Splice(e.Symmetric().OriginPrev())

	t.edges.Remove(e.pos)
	t.edges.Remove(e.Symmetric().pos)

	if vo != nil {
		t.verts.Remove(vo.pos)
	}
	if vd != nil {
		t.verts.Remove(vd.pos)
	}
}

// deleteFace unregisters f and clears the face pointers of its boundary
// cycle.
func (t *Triangulation) deleteFace(f *Face) {
	e := f.Edge()
	if e == nil {
		fatalf("attempt to delete a face with no incident edge")
	}

	if f.IsBounded() {
		e.setFace(nil)
		e.LeftPrev().setFace(nil)
		e.LeftNext().setFace(nil)
	} else {
		eaux := e.LeftNext()
		for {
			eaux.setFace(nil)
			eaux = eaux.LeftNext()
			if eaux == e {
				break
			}
		}
		e.setFace(nil)
	}

	t.faces.Remove(f.pos)
}

// markEdgeAsConstrained flags the quad-edge of e as a PSLG segment.
func (t *Triangulation) markEdgeAsConstrained(e *Edge) {
	e.owner.setConstrained(true)
}

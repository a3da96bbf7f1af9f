package cdt

// Region classification. The bounded faces of a CDT partition into
// regions: maximal sets of faces connected across unconstrained edges.
// Regions are bounded by constrained edges and the convex hull, and
// they two-color: every neighbor of a trimmed region is non-trimmed and
// vice versa. RegionVisitor flood-fills each region and marks its faces
// with the trimmed flag.

// RegionVisitor labels every bounded face of a triangulation as trimmed
// or kept. The zero value is ready to use for a single Visit.
type RegionVisitor struct {
	visited     map[*Face]bool
	trimmedFlag bool
}

// NewRegionVisitor returns a visitor for one classification pass.
func NewRegionVisitor() *RegionVisitor {
	return &RegionVisitor{visited: make(map[*Face]bool)}
}

// Visit classifies every bounded face of t. Faces in trimmed regions
// end up with their mark set true, faces in kept regions false.
func (rv *RegionVisitor) Visit(t *Triangulation) {
	if rv.visited == nil {
		rv.visited = make(map[*Face]bool)
	}
	rv.visitOuterTrimmedRegions(t)
	rv.visitOuterNonTrimmedRegions(t)
	rv.visitInteriorRegions(t)
}

// visitFace marks a single face with the current trimmed flag.
func (rv *RegionVisitor) visitFace(f *Face) {
	if !f.IsBounded() {
		fatalf("region classification reached the unbounded face")
	}
	if rv.visited[f] {
		fatalf("region classification visited a face twice")
	}
	f.SetMark(rv.trimmedFlag)
	rv.visited[f] = true
}

// Outer trimmed regions touch the hull through an unconstrained
// boundary edge: whatever lies there is outside every constrained
// outline and gets trimmed.
func (rv *RegionVisitor) visitOuterTrimmedRegions(t *Triangulation) {
	edges := collectBoundaryEdges(t, false)

	rv.trimmedFlag = true
	for _, e := range edges {
		f := e.Face()
		if !f.IsBounded() {
			fatalf("expected the bounded side of a hull edge")
		}
		if !rv.visited[f] {
			rv.visitFacesInRegion(f)
		}
	}
}

// Outer non-trimmed regions touch the hull through a constrained
// boundary edge: the constrained outline itself reaches the hull, so
// the region inside it is kept.
func (rv *RegionVisitor) visitOuterNonTrimmedRegions(t *Triangulation) {
	edges := collectBoundaryEdges(t, true)

	rv.trimmedFlag = false
	for _, e := range edges {
		f := e.Face()
		if !f.IsBounded() {
			fatalf("expected the bounded side of a hull edge")
		}
		if !rv.visited[f] {
			rv.visitFacesInRegion(f)
		}
	}
}

// Interior regions are reached from already-classified neighbors across
// constrained interior edges, alternating the trimmed flag. Repeats
// until no region is left, so nested outlines alternate
// kept/trimmed/kept however deeply.
func (rv *RegionVisitor) visitInteriorRegions(t *Triangulation) {
	edges := collectConstrainedInteriorEdges(t)

	for {
		done := true
		for _, e := range edges {
			f := e.Face()
			fmate := e.Symmetric().Face()
			if !f.IsBounded() || !fmate.IsBounded() {
				fatalf("constrained interior edge borders the unbounded face")
			}
			if rv.visited[f] {
				continue
			}
			if !rv.visited[fmate] {
				continue
			}
			rv.trimmedFlag = !fmate.IsMarked()
			rv.visitFacesInRegion(f)
			done = false
		}
		if done {
			return
		}
	}
}

// visitFacesInRegion flood-fills one region from f, in breadth-first
// order, stopping at constrained edges and the hull.
func (rv *RegionVisitor) visitFacesInRegion(f *Face) {
	if !f.IsBounded() {
		fatalf("region flood started at the unbounded face")
	}

	reached := map[*Face]bool{f: true}
	queue := []*Face{f}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		rv.visitFace(cur)

		e1 := cur.Edge()
		if e1 == nil || e1.Face() != cur {
			fatalf("face has an inconsistent edge pointer")
		}
		e2 := e1.LeftNext()
		e3 := e2.LeftNext()
		if e3.LeftNext() != e1 {
			fatalf("bounded face boundary is not a triangle")
		}

		for _, e := range [3]*Edge{e1, e2, e3} {
			if e.IsConstrained() {
				continue
			}
			next := e.Symmetric().Face()
			if !next.IsBounded() {
				continue
			}
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}
}

// collectBoundaryEdges gathers the bounded-side edges of the convex
// hull, constrained or unconstrained per the flag.
func collectBoundaryEdges(t *Triangulation, constrained bool) []*Edge {
	var out []*Edge
	t.EachEdge(func(e *Edge) {
		if !e.Face().IsBounded() {
			return
		}
		if !e.Symmetric().Face().IsBounded() && e.IsConstrained() == constrained {
			out = append(out, e)
		}
	})
	return out
}

// collectConstrainedInteriorEdges gathers constrained edges bordering
// bounded faces on both sides.
func collectConstrainedInteriorEdges(t *Triangulation) []*Edge {
	var out []*Edge
	t.EachEdge(func(e *Edge) {
		if e.Face().IsBounded() && e.Symmetric().Face().IsBounded() && e.IsConstrained() {
			out = append(out, e)
		}
	})
	return out
}

package cdt

import "container/list"

// Face is a face of the subdivision. Bounded faces are triangles;
// exactly one unbounded face always exists. Cleanup of the enclosing
// triangle merges the sentinel triangles into it, so after construction
// it is the face outside the convex hull of the input.
type Face struct {
	edge    *Edge
	bounded bool
	marked  bool
	pos     *list.Element // position in the triangulation's face registry
}

// Edge returns an edge on the counterclockwise boundary cycle of this
// face.
func (f *Face) Edge() *Edge { return f.edge }

// IsBounded reports whether the face is a triangle of the
// triangulation, as opposed to the outer face.
func (f *Face) IsBounded() bool { return f.bounded }

// IsMarked reports the visitor mark.
func (f *Face) IsMarked() bool { return f.marked }

// SetMark sets the visitor mark.
func (f *Face) SetMark(value bool) { f.marked = value }

func (f *Face) setEdge(e *Edge) {
	if e == nil {
		fatalf("attempt to assign a nil edge to a face")
	}
	f.edge = e
}

func (f *Face) setBounded(value bool) { f.bounded = value }

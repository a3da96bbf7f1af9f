package cdt

import (
	"fmt"

	"github.com/meshprim/cdtri/dbg"
)

// String methods for the topological entities. Each quad-edge, vertex
// and face gets a readable pet name, so traces of splice and swap
// sequences stay legible.

func (e *Edge) String() string {
	if e == nil {
		return "Edge(Ø)"
	}
	o, d := "?", "?"
	if e.Origin() != nil {
		o = fmt.Sprintf("(%g,%g)", e.Origin().U(), e.Origin().V())
	}
	if e.Symmetric().Origin() != nil {
		d = fmt.Sprintf("(%g,%g)", e.Destination().U(), e.Destination().V())
	}
	return fmt.Sprintf("%s[%d] %s->%s", dbg.Name(e.owner), e.id, o, d)
}

func (v *Vertex) String() string {
	if v == nil {
		return "Vertex(Ø)"
	}
	return fmt.Sprintf("%s(%g,%g)", dbg.Name(v), v.U(), v.V())
}

func (f *Face) String() string {
	if f == nil {
		return "Face(Ø)"
	}
	kind := "unbounded"
	if f.IsBounded() {
		kind = "bounded"
	}
	return fmt.Sprintf("%s(%s)", dbg.Name(f), kind)
}

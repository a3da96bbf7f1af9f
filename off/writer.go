// Package off writes triangle meshes in the Object File Format: the
// literal "OFF", a count line, vertex lines, face lines.
package off

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/meshprim/cdtri/cdt"
)

// positioned is the optional accessor a point type implements when it
// carries a 3D position. Plain parameter-domain points are written flat
// at z = 0.
type positioned interface {
	Position() (x, y, z float64)
}

// Write emits the mesh to w. Coordinates are fixed-point with 18 digits
// of precision, tab separated; each face line starts with its vertex
// count, always 3.
func Write(w io.Writer, m *cdt.Mesh) error {
	bw := bufio.NewWriter(w)

	nv := m.NumVertices()
	nf := m.NumTriangles()

	if _, err := fmt.Fprintf(bw, "OFF\n%d\t%d\t0\n", nv, nf); err != nil {
		return errors.Wrap(err, "writing OFF header")
	}

	for i, p := range m.Vertices {
		var x, y, z float64
		if sp, ok := p.(positioned); ok {
			x, y, z = sp.Position()
		} else {
			x, y, z = p.U(), p.V(), 0
		}
		if _, err := fmt.Fprintf(bw, "%.18f\t%.18f\t%.18f\n", x, y, z); err != nil {
			return errors.Wrapf(err, "writing vertex %d", i)
		}
	}

	for i := 0; i+2 < len(m.Triangles); i += 3 {
		if _, err := fmt.Fprintf(bw, "3 %d\t%d\t%d\n",
			m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2]); err != nil {
			return errors.Wrapf(err, "writing face %d", i/3)
		}
	}

	return errors.Wrap(bw.Flush(), "flushing OFF output")
}

// WriteFile writes the mesh to the named file.
func WriteFile(path string, m *cdt.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := Write(f, m); err != nil {
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

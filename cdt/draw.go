package cdt

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Rendering of an enumerated mesh for debugging and for the CLI's
// --png flag. Constrained edges draw red, boundary edges cyan, regular
// edges gray.

const drawPadding = 10

// SavePNG renders the mesh at the given scale and writes it to path.
func (m *Mesh) SavePNG(path string, scale float64) error {
	c := m.render(scale)
	return c.SavePNG(path)
}

// DbgDraw renders the mesh to a temp file and cats it to the terminal.
// Debugging helper; requires an imgcat-capable terminal to be useful.
func (m *Mesh) DbgDraw(scale float64) {
	c := m.render(scale)
	if err := c.SavePNG("/tmp/cdt_mesh.png"); err != nil {
		return
	}
	imgcat.CatFile("/tmp/cdt_mesh.png", os.Stdout)
}

func (m *Mesh) render(scale float64) *gg.Context {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, p := range m.Vertices {
		minX = math.Min(minX, p.U())
		minY = math.Min(minY, p.V())
		maxX = math.Max(maxX, p.U())
		maxY = math.Max(maxY, p.V())
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin sits at the bottom left, then fit the bounding
	// box inside the padded canvas.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Fill the triangles first so the edges draw on top.
	c.SetRGB(0, 0.25, 0)
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a := m.Vertices[m.Triangles[i]]
		b := m.Vertices[m.Triangles[i+1]]
		cc := m.Vertices[m.Triangles[i+2]]
		c.MoveTo(a.U(), a.V())
		c.LineTo(b.U(), b.V())
		c.LineTo(cc.U(), cc.V())
		c.ClosePath()
	}
	c.Fill()

	c.SetLineWidth(2)
	for i := 0; i+1 < len(m.Edges); i += 2 {
		a := m.Vertices[m.Edges[i]]
		b := m.Vertices[m.Edges[i+1]]
		switch m.EdgeTypes[i/2] {
		case Constrained:
			c.SetRGB(1, 0.2, 0.2)
		case Boundary:
			c.SetRGB(0, 1, 1)
		default:
			c.SetRGB(0.6, 0.6, 0.6)
		}
		c.MoveTo(a.U(), a.V())
		c.LineTo(b.U(), b.V())
		c.Stroke()
	}

	return c
}

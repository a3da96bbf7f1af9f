// Command cdtri samples a parametric surface with Poisson-disk darts,
// triangulates the samples in the parameter domain, and writes the
// resulting patch triangulation as an OFF mesh.
//
//	cdtri --surface cone --seed 7 --out mesh.off
//	cdtri --surface sphere --alpha 0.25 --png mesh.png --out mesh.off
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/meshprim/cdtri/cdt"
	"github.com/meshprim/cdtri/off"
	"github.com/meshprim/cdtri/sampler"
	"github.com/meshprim/cdtri/surfaces"
)

var (
	surfaceName = kingpin.Flag("surface", "Surface to sample: cone, sphere or cylinder.").Default("cone").Enum("cone", "sphere", "cylinder")
	seed        = kingpin.Flag("seed", "Random seed for the sampler.").Default("1").Int64()
	alpha       = kingpin.Flag("alpha", "Minimum-distance parameter; the conflict radius is twice this.").Default("0.1").Float64()
	maxTrials   = kingpin.Flag("max-trials", "Consecutive rejections before sampling stops.").Default("100").Int()
	outPath     = kingpin.Flag("out", "Output OFF file.").Required().String()
	pngPath     = kingpin.Flag("png", "Also render the parameter-domain triangulation to this PNG.").String()
	pngScale    = kingpin.Flag("png-scale", "Pixels per parameter unit for --png.").Default("60").Float64()
)

func main() {
	kingpin.Parse()

	var surface sampler.Surface
	switch *surfaceName {
	case "cone":
		surface = surfaces.NewCone()
	case "sphere":
		surface = surfaces.NewSphere()
	case "cylinder":
		surface = surfaces.NewCylinder()
	}

	fmt.Println(aurora.Cyan("Sampling the surface with Poisson-disk darts..."))
	s := sampler.New()
	s.Alpha = *alpha
	s.MaxTrials = *maxTrials

	rng := rand.New(rand.NewSource(*seed))
	samples, err := s.Sample(surface, rng)
	if err != nil {
		fail(err)
	}
	fmt.Printf("  %d samples\n", len(samples))

	fmt.Println(aurora.Cyan("Computing the Delaunay triangulation..."))
	points := make([]cdt.Point, len(samples))
	for i, sp := range samples {
		points[i] = sp
	}
	t, err := cdt.New(points)
	if err != nil {
		fail(err)
	}

	fmt.Println(aurora.Cyan("Collecting vertices, edges and triangles..."))
	mesh := cdt.NewFaceVisitor().Visit(t)
	fmt.Printf("  %d vertices, %d edges, %d triangles\n",
		mesh.NumVertices(), mesh.NumEdges(), mesh.NumTriangles())

	fmt.Println(aurora.Cyan("Writing the patch triangulation..."))
	if err := off.WriteFile(*outPath, mesh); err != nil {
		fail(err)
	}

	if *pngPath != "" {
		if err := mesh.SavePNG(*pngPath, *pngScale); err != nil {
			fail(err)
		}
	}

	fmt.Println(aurora.Green("Finished."))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red("ERROR:"), err)
	os.Exit(1)
}

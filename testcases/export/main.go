// Command export writes the test cases, together with the pixels filled
// for each of them, to testdata/testcases.json, and writes an enlarged
// PNG rendering of every case to testdata/png.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

// scale is the enlargement factor of the PNG images.
const scale = 4

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	pngDir := filepath.Join("testdata", "png")
	if err := os.MkdirAll(pngDir, 0755); err != nil {
		panic(err)
	}

	f := polyfill.NewFiller()
	f.Order = polyfill.ScanlineOrder
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			poly, err := polyfill.Polygon(tc.Path, tc.Transform())
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			g := polyfill.NewSparseGrid()
			f.ScanlineFill(poly, g)
			out.TestCases = append(out.TestCases, toJSON(name, tc, poly, g))

			if err := writePNG(filepath.Join(pngDir, name+".png"), g); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	file, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string     `json:"name"`
	Vertices [][2]int   `json:"vertices"`
	Seed     [2]int     `json:"seed"`
	Pixels   int        `json:"pixels"`
	Spans    []jsonSpan `json:"spans"`
}

// jsonSpan is a run of filled pixels [X1, X2) on row Y.
type jsonSpan struct {
	Y  int `json:"y"`
	X1 int `json:"x1"`
	X2 int `json:"x2"`
}

func toJSON(name string, tc testcases.TestCase, poly []image.Point, g *polyfill.SparseGrid) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Seed:   [2]int{tc.Seed.X, tc.Seed.Y},
		Pixels: g.Len(),
	}
	for _, p := range poly {
		jtc.Vertices = append(jtc.Vertices, [2]int{p.X, p.Y})
	}

	// Points are sorted by row, so runs are contiguous.
	for _, p := range g.Points() {
		n := len(jtc.Spans)
		if n > 0 && jtc.Spans[n-1].Y == p.Y && jtc.Spans[n-1].X2 == p.X {
			jtc.Spans[n-1].X2++
			continue
		}
		jtc.Spans = append(jtc.Spans, jsonSpan{Y: p.Y, X1: p.X, X2: p.X + 1})
	}
	return jtc
}

// writePNG renders the pixels of g, with a one pixel margin, enlarged by
// the factor scale.
func writePNG(fname string, g *polyfill.SparseGrid) (err error) {
	r := g.Bounds().Inset(-1)
	small := polyfill.NewAlphaGrid(r)
	for _, p := range g.Points() {
		small.Set(p.X, p.Y)
	}

	big := image.NewGray(image.Rect(0, 0, r.Dx()*scale, r.Dy()*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small.Img, r, draw.Src, nil)

	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(file, big)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

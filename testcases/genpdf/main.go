// seehuhn.de/go/polyfill - polygon fill algorithms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf draws every test case into a PDF file, showing the
// pixels set by the scanline fill together with the polygon outline.
// This allows to check visually which pixels are considered inside.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

const (
	outDir = "testdata/pdf"

	// scale is the size of one pixel, in PDF points.
	scale = 8
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	poly, err := polyfill.Polygon(tc.Path, tc.Transform())
	if err != nil {
		return err
	}
	if len(poly) < 3 {
		return fmt.Errorf("only %d vertices", len(poly))
	}
	g := polyfill.NewSparseGrid()
	polyfill.ScanlineFill(poly, g)

	// area to show, in pixel coordinates
	r := g.Bounds()
	for _, p := range poly {
		r = r.Union(image.Rectangle{Min: p, Max: p})
	}
	r = r.Inset(-2)

	paper := &pdf.Rectangle{
		URx: float64(r.Dx() * scale),
		URy: float64(r.Dy() * scale),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, with filled pixels in white.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left; pixel rows grow downwards.
	page.Transform(matrix.Matrix{
		scale, 0,
		0, -scale,
		-scale * float64(r.Min.X), scale * float64(r.Max.Y),
	})

	page.SetFillColor(color.DeviceGray(1))
	for _, p := range g.Points() {
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	page.Fill()

	// Polygon outline, through the pixel corners given by the vertices.
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.1)
	page.MoveTo(float64(poly[0].X), float64(poly[0].Y))
	for _, p := range poly[1:] {
		page.LineTo(float64(p.X), float64(p.Y))
	}
	page.ClosePath()
	page.Stroke()

	// Seed point, as a small square.
	page.SetFillColor(color.DeviceGray(0.5))
	page.Rectangle(float64(tc.Seed.X)+0.3, float64(tc.Seed.Y)+0.3, 0.4, 0.4)
	page.Fill()

	return page.Close()
}

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

package polyfill

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/polyfill/testcases"
)

// TestCases fills every test case with both algorithms and checks that
// they agree.  Seed fill and scanline fill with ScanlineOrder must always
// produce the same pixels.  ReferenceOrder must agree with them, except
// for the cases marked as misordered, where it must differ.
func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				poly, err := Polygon(tc.Path, tc.Transform())
				if err != nil {
					t.Fatal(err)
				}

				f := NewFiller()
				seed := NewSparseGrid()
				if err := f.SeedFill(poly, seed, tc.Seed); err != nil {
					t.Fatal(err)
				}

				f.Order = ScanlineOrder
				scan := NewSparseGrid()
				f.ScanlineFill(poly, scan)

				f.Order = ReferenceOrder
				ref := NewSparseGrid()
				f.ScanlineFill(poly, ref)

				if tc.Pixels != 0 && seed.Len() != tc.Pixels {
					t.Errorf("seed fill set %d pixels, want %d", seed.Len(), tc.Pixels)
				}
				if err := compareGrids(name+"_scanline", seed, scan); err != nil {
					t.Errorf("%s order: %v", ScanlineOrder, err)
				}

				err = compareGrids(name+"_reference", seed, ref)
				if tc.Misordered && err == nil {
					t.Errorf("%s order: expected a difference", ReferenceOrder)
				} else if !tc.Misordered && err != nil {
					t.Errorf("%s order: %v", ReferenceOrder, err)
				}
			})
		}
	}
}

// compareGrids returns an error describing the pixels where got differs
// from want.  If the grids differ and debug output is requested with
// -v, a diff image is written to the debug directory.
func compareGrids(name string, want, got *SparseGrid) error {
	wantPts := want.Points()
	gotPts := got.Points()
	if slices.Equal(wantPts, gotPts) {
		return nil
	}

	missing, extra := 0, 0
	for _, p := range wantPts {
		if !got.Get(p.X, p.Y) {
			missing++
		}
	}
	for _, p := range gotPts {
		if !want.Get(p.X, p.Y) {
			extra++
		}
	}

	if testing.Verbose() {
		_ = writeDiffImage(name, want, got)
	}
	return fmt.Errorf("%d pixels missing, %d extra", missing, extra)
}

// writeDiffImage writes a 3-panel image to debug/<name>.png:
// got (left), diff (middle), want (right).
func writeDiffImage(name string, want, got *SparseGrid) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	r := want.Bounds().Union(got.Bounds())
	w, h := r.Dx(), r.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			px, py := r.Min.X+x, r.Min.Y+y
			inWant := want.Get(px, py)
			inGot := got.Get(px, py)

			if inGot {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}

			// green=missing, red=extra, black=match
			var diffColor color.RGBA
			switch {
			case inWant && !inGot:
				diffColor = color.RGBA{G: 255, A: 255}
			case inGot && !inWant:
				diffColor = color.RGBA{R: 255, A: 255}
			default:
				diffColor = color.RGBA{A: 255}
			}
			img.Set(x+w, y, diffColor)

			if inWant {
				img.Set(x+2*w, y, color.White)
			} else {
				img.Set(x+2*w, y, color.Black)
			}
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

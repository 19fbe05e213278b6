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
	"cmp"
	"image"
	"image/color"
	"slices"
)

// Grid is a two-dimensional surface of binary pixels.
// Pixels which have never been set read as false.
type Grid interface {
	Get(x, y int) bool
	Set(x, y int)
}

// SparseGrid is an unbounded Grid which stores only the pixels set.
// The zero value is not usable; use [NewSparseGrid].
type SparseGrid struct {
	pix map[image.Point]struct{}
}

// NewSparseGrid returns an empty SparseGrid.
func NewSparseGrid() *SparseGrid {
	return &SparseGrid{pix: make(map[image.Point]struct{})}
}

// Get implements the [Grid] interface.
func (g *SparseGrid) Get(x, y int) bool {
	_, ok := g.pix[image.Point{X: x, Y: y}]
	return ok
}

// Set implements the [Grid] interface.
func (g *SparseGrid) Set(x, y int) {
	g.pix[image.Point{X: x, Y: y}] = struct{}{}
}

// Len returns the number of pixels set.
func (g *SparseGrid) Len() int {
	return len(g.pix)
}

// Points returns all pixels set, sorted by y and then by x.
func (g *SparseGrid) Points() []image.Point {
	pts := make([]image.Point, 0, len(g.pix))
	for p := range g.pix {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, func(a, b image.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return pts
}

// Bounds returns the smallest rectangle containing all pixels set.
// The result is empty if no pixel is set.
func (g *SparseGrid) Bounds() image.Rectangle {
	var r image.Rectangle
	for p := range g.pix {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Point{X: 1, Y: 1})})
	}
	return r
}

// AlphaGrid is a Grid backed by an [image.Alpha].
// Set marks a pixel as fully opaque; pixels outside the image bounds are
// silently dropped by Set and read as false by Get.  For this reason, the
// image must cover the whole polygon when used with SeedFill.
type AlphaGrid struct {
	Img *image.Alpha
}

// NewAlphaGrid returns an AlphaGrid backed by a new, transparent image
// covering r.
func NewAlphaGrid(r image.Rectangle) *AlphaGrid {
	return &AlphaGrid{Img: image.NewAlpha(r)}
}

// Get implements the [Grid] interface.
func (g *AlphaGrid) Get(x, y int) bool {
	return g.Img.AlphaAt(x, y).A != 0
}

// Set implements the [Grid] interface.
func (g *AlphaGrid) Set(x, y int) {
	g.Img.SetAlpha(x, y, color.Alpha{A: 0xFF})
}

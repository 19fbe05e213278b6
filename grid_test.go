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
	"image"
	"slices"
	"testing"
)

func TestSparseGrid(t *testing.T) {
	g := NewSparseGrid()
	if g.Get(0, 0) {
		t.Error("empty grid has a set pixel")
	}
	if b := g.Bounds(); !b.Empty() {
		t.Errorf("empty grid has bounds %v", b)
	}

	for _, p := range []image.Point{{3, 1}, {-2, 5}, {0, 1}, {3, 1}} {
		g.Set(p.X, p.Y)
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
	want := []image.Point{{0, 1}, {3, 1}, {-2, 5}}
	if got := g.Points(); !slices.Equal(got, want) {
		t.Errorf("Points() = %v, want %v", got, want)
	}
	if b := g.Bounds(); b != image.Rect(-2, 1, 4, 6) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestAlphaGrid(t *testing.T) {
	g := NewAlphaGrid(image.Rect(-2, -2, 2, 2))
	g.Set(-2, -2)
	g.Set(5, 5) // dropped

	if !g.Get(-2, -2) {
		t.Error("pixel (-2, -2) not set")
	}
	if g.Get(5, 5) {
		t.Error("pixel outside the image reads as set")
	}
	if a := g.Img.AlphaAt(-2, -2).A; a != 0xFF {
		t.Errorf("alpha = %d, want 255", a)
	}
}

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
	"errors"
	"image"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPolygon(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 3.4, Y: 0}).
		LineTo(vec.Vec2{X: 3.6, Y: 2.5}).
		LineTo(vec.Vec2{X: 0, Y: 0}).
		Close()

	got, err := Polygon(p.Iter(), matrix.Identity)
	if err != nil {
		t.Fatal(err)
	}
	// (3.4, 0) rounds to (3, 0), (3.6, 2.5) to (4, 3); the repeated
	// start point is dropped
	want := []image.Point{{0, 0}, {3, 0}, {4, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("Polygon() = %v, want %v", got, want)
	}
}

func TestPolygonTransform(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	got, err := Polygon(p.Iter(), matrix.Matrix{0, 2, -2, 0, 10, 20})
	if err != nil {
		t.Fatal(err)
	}
	want := []image.Point{{10, 20}, {10, 22}, {8, 20}}
	if !slices.Equal(got, want) {
		t.Errorf("Polygon() = %v, want %v", got, want)
	}
}

func TestPolygonErrors(t *testing.T) {
	curve := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 10, Y: 0}).
		Close()
	if _, err := Polygon(curve.Iter(), matrix.Identity); !errors.Is(err, ErrCurve) {
		t.Errorf("curve: got %v, want %v", err, ErrCurve)
	}

	twice := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		Close().
		MoveTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 14, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 4}).
		Close()
	if _, err := Polygon(twice.Iter(), matrix.Identity); !errors.Is(err, ErrSubpaths) {
		t.Errorf("two subpaths: got %v, want %v", err, ErrSubpaths)
	}
}

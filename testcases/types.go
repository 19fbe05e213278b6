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

package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single polygon fill test.
type TestCase struct {
	Name string        // lowercase a-z, 0-9 and _ only
	Path path.Path     // a single closed subpath of straight lines
	CTM  matrix.Matrix // transformation matrix (zero-value means no transform)
	Seed image.Point   // a pixel inside the polygon, in device coordinates

	// Pixels is the number of pixels a correct fill sets.
	// Zero means the count is not checked.
	Pixels int

	// Misordered is set if sorting the active edges by the x-coordinate of
	// their lower endpoint pairs up crossings wrongly for this polygon.
	Misordered bool
}

// Transform returns the matrix mapping the path to device coordinates.
func (tc TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// polygon builds a closed path through the given vertices.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

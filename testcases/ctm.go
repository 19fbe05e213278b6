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
)

// ctmCases map the path to device space before filling.
var ctmCases = []TestCase{
	{
		Name:   "scaled_triangle",
		Path:   triangle(0, 0, 6, 0, 0, 6),
		CTM:    matrix.Matrix{2, 0, 0, 2, 0, 0},
		Seed:   image.Pt(2, 2),
		Pixels: 12 * 13 / 2,
	},
	{
		Name:   "translated_square",
		Path:   rectangle(0, 0, 4, 4),
		CTM:    matrix.Matrix{1, 0, 0, 1, -10, -20},
		Seed:   image.Pt(-8, -18),
		Pixels: 16,
	},
	{
		// (x, y) -> (-y, x)
		Name:   "rotated_square",
		Path:   rectangle(0, 0, 4, 4),
		CTM:    matrix.Matrix{0, 1, -1, 0, 0, 0},
		Seed:   image.Pt(-2, 2),
		Pixels: 16,
	},
	{
		// flip the y-axis, as for PDF user space
		Name:   "flipped_diamond",
		Path:   diamond(32, 32, 20),
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
		Seed:   image.Pt(32, 32),
		Pixels: 2 * 20 * 20,
	},
}

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

import "image"

// precisionCases have edges with non-integer slopes, where the crossing
// with a scanline has to be rounded down.
var precisionCases = []TestCase{
	{
		// row 0: [0,7), row 1: [0,4), row 2: [0,2)
		Name:   "shallow_thirds",
		Path:   triangle(0, 0, 7, 0, 0, 3),
		Seed:   image.Pt(1, 1),
		Pixels: 7 + 4 + 2,
	},
	{
		// row y: [0, 50 + floor(-50y/3))
		Name:   "sliver",
		Path:   triangle(0, 0, 50, 0, 0, 3),
		Seed:   image.Pt(1, 1),
		Pixels: 50 + 33 + 16,
	},
	{
		// row 0 is 3 pixels wide, rows 1-16 are 2 pixels wide,
		// rows 17-33 are 1 pixel wide, rows 34-49 are empty
		Name:   "steep",
		Path:   triangle(0, 0, 3, 0, 0, 50),
		Seed:   image.Pt(0, 1),
		Pixels: 3 + 16*2 + 17*1,
	},
}

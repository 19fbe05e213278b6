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

// complexCases contain concave and sheared polygons.
var complexCases = []TestCase{
	{
		// Below y=50 a second, narrower region opens on the right.  The
		// edge bounding it on the left becomes active at x=60 while the
		// long diagonal, active since y=0, has already moved left of it.
		Name:       "notch",
		Path:       polygon(pt(0, 0), pt(100, 0), pt(10, 90), pt(60, 50), pt(80, 100), pt(0, 100)),
		Seed:       image.Pt(5, 5),
		Misordered: true,
	},
	{
		// A sheared band.  Below y=50 the left edge starts at x=50, to the
		// right of where the right edge started at y=0.  Rounding in the
		// interpolation widens rows 22, 36 and 43 and narrows row 70 by
		// one pixel each.
		Name:       "shear",
		Path:       polygon(pt(0, 0), pt(10, 0), pt(100, 100), pt(95, 100), pt(50, 50)),
		Seed:       image.Pt(12, 10),
		Pixels:     355 + 50*5 + 3 - 1,
		Misordered: true,
	},
	{
		Name: "comb",
		Path: polygon(
			pt(0, 0), pt(40, 0), pt(40, 30),
			pt(34, 30), pt(34, 10), pt(26, 10), pt(26, 30),
			pt(14, 30), pt(14, 10), pt(6, 10), pt(6, 30),
			pt(0, 30)),
		Seed:   image.Pt(2, 2),
		Pixels: 40*10 + 20*(6+12+6),
	},
	{
		Name:   "arrow",
		Path:   polygon(pt(30, 0), pt(60, 30), pt(40, 30), pt(40, 60), pt(20, 60), pt(20, 30), pt(0, 30)),
		Seed:   image.Pt(30, 20),
		Pixels: 30*29 + 30*20,
	},
}

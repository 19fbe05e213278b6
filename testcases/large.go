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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// largeCases contain polygons covering many pixels, for benchmarks and to
// exercise long sweeps.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Seed:   image.Pt(256, 256),
		Pixels: 412 * 412,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Seed:   image.Pt(256, 256),
		Pixels: 2 * 180 * 180,
	},
	{
		Name: "large_disk",
		Path: regularPolygon(256, 256, 200, 64),
		Seed: image.Pt(256, 256),
	},
}

// regularPolygon builds a regular polygon with n corners on the circle of
// radius r around (cx, cy).
func regularPolygon(cx, cy, r float64, n int) path.Path {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

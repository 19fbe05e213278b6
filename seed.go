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
	"fmt"
	"image"
)

// ErrInvalidSeed is returned by SeedFill if the seed point does not lie
// inside the polygon.
var ErrInvalidSeed = errors.New("seed not in polygon")

// SeedFill fills poly into g, starting from seed, with the default
// settings.  See [Filler.SeedFill].
func SeedFill(poly []image.Point, g Grid, seed image.Point) error {
	return NewFiller().SeedFill(poly, g, seed)
}

// neighbours are the offsets of the four pixels adjacent to a pixel.
// Diagonal neighbours are not visited.
var neighbours = [4]image.Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// SeedFill fills the simple polygon poly into g by flooding outwards from
// seed.
//
// Every pixel which is inside the polygon, as decided by [Inside], and
// 4-connected to seed through such pixels is set.  If seed itself is not
// inside the polygon, an error wrapping [ErrInvalidSeed] is returned and g
// is not modified.  Polygons with fewer than three vertices enclose no area
// and leave g untouched.
//
// The fill relies on g remembering every pixel set inside the polygon;
// a grid which drops writes can make SeedFill loop forever.
//
// Each candidate pixel is tested against all edges, so the cost is
// proportional to the filled area times the number of edges.
func (f *Filler) SeedFill(poly []image.Point, g Grid, seed image.Point) error {
	if len(poly) < 3 {
		return nil
	}

	f.edges = AppendEdges(f.edges[:0], poly)
	if !Inside(f.edges, seed) {
		Logger().Debug("seed fill rejected", "seed", seed, "edges", len(f.edges))
		return fmt.Errorf("seed %v: %w", seed, ErrInvalidSeed)
	}

	visited := 0
	f.stack = append(f.stack[:0], seed)
	for len(f.stack) > 0 {
		p := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		g.Set(p.X, p.Y)
		visited++

		for _, d := range neighbours {
			q := p.Add(d)
			if !g.Get(q.X, q.Y) && Inside(f.edges, q) {
				f.stack = append(f.stack, q)
			}
		}
	}

	Logger().Debug("seed fill",
		"seed", seed,
		"edges", len(f.edges),
		"visited", visited)
	return nil
}

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
	"math"
)

// Edge is a non-horizontal polygon edge from P1 to P2.
// The endpoints keep the order in which they appear in the polygon.
type Edge struct {
	P1, P2 image.Point
}

// Edges returns the non-horizontal edges of the closed polygon poly.
// The first edge runs from the last vertex to the first one.
func Edges(poly []image.Point) []Edge {
	return AppendEdges(nil, poly)
}

// AppendEdges appends the non-horizontal edges of poly to dst
// and returns the extended slice.
func AppendEdges(dst []Edge, poly []image.Point) []Edge {
	if len(poly) == 0 {
		return dst
	}
	p1 := poly[len(poly)-1]
	for _, p2 := range poly {
		// horizontal edges never cross a scanline
		if p1.Y != p2.Y {
			dst = append(dst, Edge{P1: p1, P2: p2})
		}
		p1 = p2
	}
	return dst
}

// YMin returns the smaller y-coordinate of the two endpoints.
func (e Edge) YMin() int {
	return min(e.P1.Y, e.P2.Y)
}

// YMax returns the larger y-coordinate of the two endpoints.
func (e Edge) YMax() int {
	return max(e.P1.Y, e.P2.Y)
}

// XAtYMin returns the x-coordinate of the endpoint with the smaller y.
func (e Edge) XAtYMin() int {
	if e.P1.Y <= e.P2.Y {
		return e.P1.X
	}
	return e.P2.X
}

// XAtYMax returns the x-coordinate of the endpoint with the larger y.
func (e Edge) XAtYMax() int {
	if e.P1.Y > e.P2.Y {
		return e.P1.X
	}
	return e.P2.X
}

// XAt returns the x-coordinate where the line through e crosses
// scanline y, rounded down.
//
// The value is computed as x1 + floor((y-y1)/(y2-y1)*(x2-x1)) in float64
// arithmetic, dividing before multiplying.  Pixel boundaries depend on
// this exact sequence of operations: where the true crossing is an
// integer, the rounding error of the division can move the result one
// pixel to the left.  Coordinates must be smaller than 2^53 in magnitude.
func (e Edge) XAt(y int) int {
	t := float64(y-e.P1.Y) / float64(e.P2.Y-e.P1.Y)
	return e.P1.X + int(math.Floor(t*float64(e.P2.X-e.P1.X)))
}

// Inside reports whether p lies inside the polygon with the given edges,
// using the odd-even rule.
//
// A ray is cast from p to the right.  Edge e is counted if
// e.YMin() <= p.Y < e.YMax() and the ray meets it strictly to the right
// of p.X.  This makes Inside agree with the spans [x1, x2) drawn by the
// scanline fill.
func Inside(edges []Edge, p image.Point) bool {
	in := false
	for _, e := range edges {
		if p.Y < e.YMin() || p.Y >= e.YMax() {
			continue
		}
		if e.XAt(p.Y) > p.X {
			in = !in
		}
	}
	return in
}

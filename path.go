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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrCurve is returned by Polygon if the path contains curve segments.
	ErrCurve = errors.New("path contains curves")

	// ErrSubpaths is returned by Polygon if the path has more than one
	// subpath.
	ErrSubpaths = errors.New("path has more than one subpath")
)

// Polygon converts a path consisting of a single subpath of straight line
// segments into a polygon.  The vertices are mapped through ctm and rounded
// to the nearest integer.  The subpath is treated as closed, whether or not
// it ends with a close command.  Consecutive duplicate vertices, which can
// arise from rounding, are merged.
func Polygon(p path.Path, ctm matrix.Matrix) ([]image.Point, error) {
	var poly []image.Point
	subpaths := 0
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			subpaths++
			if subpaths > 1 {
				return nil, ErrSubpaths
			}
			poly = appendVertex(poly, ctm, pts[0])
		case path.CmdLineTo:
			poly = appendVertex(poly, ctm, pts[0])
		case path.CmdQuadTo, path.CmdCubeTo:
			return nil, ErrCurve
		case path.CmdClose:
			// implicit
		}
	}
	if n := len(poly); n > 1 && poly[n-1] == poly[0] {
		poly = poly[:n-1]
	}
	return poly, nil
}

// appendVertex maps v from user space to device space and appends the
// rounded result, unless it repeats the previous vertex.
func appendVertex(poly []image.Point, ctm matrix.Matrix, v vec.Vec2) []image.Point {
	x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
	y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
	q := image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
	if n := len(poly); n > 0 && poly[n-1] == q {
		return poly
	}
	return append(poly, q)
}

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
	"cmp"
	"image"
	"slices"
)

// ScanlineFill fills poly into g using the scanline algorithm with the
// default settings.  See [Filler.ScanlineFill].
func ScanlineFill(poly []image.Point, g Grid) {
	NewFiller().ScanlineFill(poly, g)
}

// ScanlineFill fills the simple polygon poly into g.
//
// The pixel (x, y) is set if y lies in the scanline range of the polygon
// and x lies in one of the spans [x1, x2) between consecutive pairs of
// edge crossings on scanline y.  Polygons with fewer than three vertices
// enclose no area and leave g untouched.
func (f *Filler) ScanlineFill(poly []image.Point, g Grid) {
	if len(poly) < 3 {
		return
	}

	// Edge table, sorted by decreasing yMin so that the next edge to
	// become active is always at the end.
	f.edges = AppendEdges(f.edges[:0], poly)
	if len(f.edges) == 0 {
		return
	}
	slices.SortStableFunc(f.edges, func(a, b Edge) int {
		return cmp.Compare(b.YMin(), a.YMin())
	})

	f.aet = f.aet[:0]
	numEdges := len(f.edges)
	yStart := f.edges[len(f.edges)-1].YMin()
	yScan := yStart
	for len(f.edges) > 0 || len(f.aet) > 0 {
		// Move edges starting at this scanline from the edge table to
		// the active edge table.
		for len(f.edges) > 0 {
			e := f.edges[len(f.edges)-1]
			if e.YMin() != yScan {
				break
			}
			f.aet = append(f.aet, e)
			f.edges = f.edges[:len(f.edges)-1]
		}

		// Remove edges which end at or before this scanline (swap with last).
		for i := 0; i < len(f.aet); {
			if f.aet[i].YMax() <= yScan {
				f.aet[i] = f.aet[len(f.aet)-1]
				f.aet = f.aet[:len(f.aet)-1]
				continue
			}
			i++
		}

		f.sortActive(yScan)

		f.spans = f.spans[:0]
		for _, e := range f.aet {
			f.spans = append(f.spans, e.XAt(yScan))
		}
		fillSpans(g, f.spans, yScan)

		yScan++
	}

	Logger().Debug("scanline fill",
		"order", f.Order,
		"edges", numEdges,
		"scanlines", yScan-yStart)
}

// sortActive orders the active edge table according to f.Order.
func (f *Filler) sortActive(yScan int) {
	switch f.Order {
	case ScanlineOrder:
		slices.SortStableFunc(f.aet, func(a, b Edge) int {
			if c := cmp.Compare(a.XAt(yScan), b.XAt(yScan)); c != 0 {
				return c
			}
			return cmp.Compare(a.XAtYMax(), b.XAtYMax())
		})
	default:
		slices.SortStableFunc(f.aet, func(a, b Edge) int {
			if c := cmp.Compare(a.XAtYMin(), b.XAtYMin()); c != 0 {
				return c
			}
			return cmp.Compare(a.XAtYMax(), b.XAtYMax())
		})
	}
}

// fillSpans sets the pixels of row y between consecutive pairs of
// crossings.  A trailing unpaired crossing is ignored.
func fillSpans(g Grid, spans []int, y int) {
	for i := 0; i+1 < len(spans); i += 2 {
		for x := spans[i]; x < spans[i+1]; x++ {
			g.Set(x, y)
		}
	}
}

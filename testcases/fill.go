package testcases

import (
	"image"

	"seehuhn.de/go/geom/path"
)

var fillCases = []TestCase{
	{
		Name:   "unit_square",
		Path:   rectangle(0, 0, 4, 4),
		Seed:   image.Pt(2, 2),
		Pixels: 16,
	},
	{
		Name:   "triangle",
		Path:   triangle(0, 0, 6, 0, 0, 6),
		Seed:   image.Pt(1, 1),
		Pixels: 6 + 5 + 4 + 3 + 2 + 1,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 54, 44),
		Seed:   image.Pt(32, 32),
		Pixels: 44 * 34,
	},
	{
		Name:   "diamond",
		Path:   diamond(32, 32, 20),
		Seed:   image.Pt(32, 32),
		Pixels: 2 * 20 * 20,
	},
	{
		// rows 0-7 are 20 pixels wide, rows 8-19 are 8 pixels wide
		Name:   "l_shape",
		Path:   polygon(pt(0, 0), pt(20, 0), pt(20, 8), pt(8, 8), pt(8, 20), pt(0, 20)),
		Seed:   image.Pt(2, 2),
		Pixels: 8*20 + 12*8,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// diamond builds a square rotated by 45 degrees, with corners at distance
// r from the centre.  Filled, it covers 2*r*r pixels.
func diamond(cx, cy, r float64) path.Path {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}

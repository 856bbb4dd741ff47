package pixelart

import (
	"image"
	"image/color"
)

// ReduceColors replaces every pixel's RGB with the nearest palette
// entry by squared Euclidean distance, writing the image in place.
// Alpha is never touched. Ties go to the first minimal entry in palette
// order, and an empty palette paints every pixel black. Pixels are
// independent, so the work is spread over disjoint row bands.
func ReduceColors(img *image.RGBA, palette Palette) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	parallelFor(h, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			off := img.PixOffset(b.Min.X, b.Min.Y+y)
			row := img.Pix[off : off+w*4]
			for x := range w {
				p := row[x*4 : x*4+4 : x*4+4]
				c := nearest(palette, color.RGBA{R: p[0], G: p[1], B: p[2]})
				p[0], p[1], p[2] = c.R, c.G, c.B
			}
		}
	})
}

// nearest scans the palette in stored order and returns the first entry
// with minimal distance to c, or black for an empty palette.
func nearest(palette Palette, c color.RGBA) color.RGBA {
	best := color.RGBA{A: opaque}
	bestDist := -1
	for _, candidate := range palette {
		d := SquaredDistance(c, candidate)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	return best
}

// SquaredDistance is the squared Euclidean RGB distance between two
// colors. Alpha is ignored. Channel differences are widened to int
// before squaring so unsigned subtraction cannot wrap, and the square
// root is skipped since only relative ordering matters.
func SquaredDistance(a, b color.RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

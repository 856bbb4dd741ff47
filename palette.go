package pixelart

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
)

// Palette is an ordered set of candidate colors for quantization. The
// order carries no meaning beyond the deterministic tie-break in
// ReduceColors, but it is stable for a given input. Duplicate entries
// can appear after bit-depth reduction and are kept as-is.
type Palette []color.RGBA

// ExtractPalette derives at most k representative colors from the
// samples: k-means centroids converted back to 8-bit sRGB and reduced
// to 5 significant bits per channel for the pixel-art look. It never
// fails; with no samples or k <= 0 the palette is empty. When k exceeds
// the number of distinct sample values, the palette holds one entry per
// distinct value instead.
func ExtractPalette(samples clusters.Observations, k int) Palette {
	cc := runKMeans(samples, k, paletteSeed)
	out := make(Palette, 0, len(cc))
	for _, c := range cc {
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}
		r, g, b := col.Clamped().RGB255()
		out = append(out, ReduceDepth(color.RGBA{R: r, G: g, B: b, A: opaque}))
	}
	return out
}

// ReduceDepth zeroes the low 3 bits of every channel, collapsing the
// color into the 15-bit (5 bits per channel) space. Applying it to an
// already-reduced color is a no-op.
func ReduceDepth(c color.RGBA) color.RGBA {
	c.R &^= 0x07
	c.G &^= 0x07
	c.B &^= 0x07
	return c
}

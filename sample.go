package pixelart

import (
	"image"

	"github.com/muesli/clusters"
)

// opaque is the fully-opaque alpha value on 8-bit buffers.
const opaque = 0xff

// ExtractSamples collects the clustering observations for palette
// discovery: one normalized RGB coordinate in [0,1] per retained pixel,
// in row-major order. When includeTransparent is false, pixels whose
// alpha is not fully opaque are skipped. Alpha itself is never sampled;
// clustering operates in RGB space only.
func ExtractSamples(img *image.RGBA, includeTransparent bool) clusters.Observations {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	// One slot per pixel so workers write disjoint ranges; nil slots
	// left by filtered pixels are compacted afterwards, keeping the
	// output order independent of the worker count.
	slots := make([]clusters.Observation, w*h)
	parallelFor(h, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			off := img.PixOffset(b.Min.X, b.Min.Y+y)
			row := img.Pix[off : off+w*4]
			for x := range w {
				p := row[x*4 : x*4+4 : x*4+4]
				if !includeTransparent && p[3] != opaque {
					continue
				}
				slots[y*w+x] = clusters.Coordinates{
					float64(p[0]) / 255.0,
					float64(p[1]) / 255.0,
					float64(p[2]) / 255.0,
				}
			}
		}
	})

	out := make(clusters.Observations, 0, w*h)
	for _, s := range slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

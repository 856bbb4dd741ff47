package pixelart

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// SizeError reports a pixelation factor that cannot produce a valid
// intermediate image.
type SizeError struct {
	Width, Height int
	Factor        int
}

func (e *SizeError) Error() string {
	if e.Factor < 1 {
		return fmt.Sprintf("pixelate: factor must be >= 1, got %d", e.Factor)
	}
	return fmt.Sprintf("pixelate: factor %d reduces %dx%d below one pixel", e.Factor, e.Width, e.Height)
}

// Pixelate downscales img by factor using nearest-neighbor sampling and
// scales the result back up, producing hard-edged color blocks.
// Interpolating filters would average colors across block boundaries
// and soften the effect, so only point sampling is used.
//
// The intermediate size is (width/factor, height/factor) with integer
// truncation; a factor below 1 or one that truncates either dimension
// to zero yields a *SizeError. Output dimensions follow targetWidth and
// targetHeight, where zero means unset: with only one set, the other is
// derived by aspect-ratio-preserving rounding, and with neither set the
// output keeps the input size. A factor of 1 with no targets returns a
// pixel-identical copy. The input is never mutated.
func Pixelate(img *image.RGBA, factor, targetWidth, targetHeight int) (*image.RGBA, error) {
	b := img.Bounds()
	origW, origH := b.Dx(), b.Dy()

	if factor < 1 {
		return nil, &SizeError{Width: origW, Height: origH, Factor: factor}
	}
	smallW, smallH := origW/factor, origH/factor
	if smallW == 0 || smallH == 0 {
		return nil, &SizeError{Width: origW, Height: origH, Factor: factor}
	}

	finalW, finalH := targetWidth, targetHeight
	switch {
	case finalW > 0 && finalH > 0:
	case finalW > 0:
		finalH = int(math.Round(float64(origH) * float64(finalW) / float64(origW)))
	case finalH > 0:
		finalW = int(math.Round(float64(origW) * float64(finalH) / float64(origH)))
	default:
		finalW, finalH = origW, origH
	}

	small := image.NewRGBA(image.Rect(0, 0, smallW, smallH))
	draw.NearestNeighbor.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	out := image.NewRGBA(image.Rect(0, 0, finalW, finalH))
	draw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Src, nil)
	return out, nil
}

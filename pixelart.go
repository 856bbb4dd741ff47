// Package pixelart converts a full-color raster image into a stylized
// low-color rendition: nearest-neighbor block resampling, palette
// discovery via k-means clustering in normalized RGB space, and
// nearest-color quantization of every pixel against the derived
// palette.
package pixelart

import "image"

type Options struct {
	// Downscale ratio applied before upscaling back. Larger values
	// produce bigger color blocks. Must be >= 1.
	PixelationFactor int
	// Requested palette size. The derived palette never exceeds it.
	NumColors int
	// Include non-opaque pixels when sampling colors for the palette.
	// Quantization recolors every pixel regardless of this setting.
	IncludeTransparent bool
	// Explicit output dimensions. Zero means unset: with only one set,
	// the other is derived to preserve the aspect ratio; with neither,
	// the output keeps the input size.
	TargetWidth  int
	TargetHeight int
}

func DefaultOptions() Options {
	return Options{
		PixelationFactor: 4,
		NumColors:        56,
	}
}

// Transform runs the full pipeline: pixelate the image, derive a
// palette from the pixelated result, and requantize every pixel
// against that palette. The input image is never mutated. On error no
// output image is produced.
func Transform(img *image.RGBA, opt Options) (*image.RGBA, error) {
	out, err := Pixelate(img, opt.PixelationFactor, opt.TargetWidth, opt.TargetHeight)
	if err != nil {
		return nil, err
	}
	samples := ExtractSamples(out, opt.IncludeTransparent)
	palette := ExtractPalette(samples, opt.NumColors)
	ReduceColors(out, palette)
	return out, nil
}

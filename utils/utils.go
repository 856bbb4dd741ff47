// Package utils holds the I/O collaborators around the pixelart core:
// image decode/encode, palette swatch rendering, and method-based
// palette extraction.
package utils

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	pixelart "github.com/0x6b/gbc-image-transform"
)

type PaletteMethod int

const (
	// PaletteMethodKMeans clusters pixel samples; deterministic for a
	// given image and color count.
	PaletteMethodKMeans PaletteMethod = iota
	// PaletteMethodDominantColor ranks candidate colors by their weight
	// in the image.
	PaletteMethodDominantColor
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodDominantColor:
		return "dominantcolor"
	default:
		return "kmeans"
	}
}

// ParsePaletteMethod maps a method name to its PaletteMethod value.
func ParsePaletteMethod(name string) (PaletteMethod, error) {
	switch name {
	case "kmeans":
		return PaletteMethodKMeans, nil
	case "dominantcolor":
		return PaletteMethodDominantColor, nil
	default:
		return 0, fmt.Errorf("unknown palette method %q (want kmeans or dominantcolor)", name)
	}
}

// ExtractPalette derives a palette of at most k colors from img using
// the given method. Every method reduces its result to 5 bits per
// channel. When includeTransparent is false, the kmeans method samples
// only fully opaque pixels.
func ExtractPalette(img *image.RGBA, k int, includeTransparent bool, method PaletteMethod) pixelart.Palette {
	switch method {
	case PaletteMethodDominantColor:
		return extractDominantPalette(img, k)
	default:
		samples := pixelart.ExtractSamples(img, includeTransparent)
		return pixelart.ExtractPalette(samples, k)
	}
}

func extractDominantPalette(img image.Image, k int) pixelart.Palette {
	if k <= 0 {
		return pixelart.Palette{}
	}
	out := make(pixelart.Palette, 0, k)
	for _, c := range dominantcolor.FindWeight(img, k) {
		if len(out) == k {
			break
		}
		out = append(out, pixelart.ReduceDepth(color.RGBA{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B, A: 0xff}))
	}
	return out
}

// SortPaletteByBrightness orders colors from darkest to brightest,
// which makes swatch output easier to read.
func SortPaletteByBrightness(palette pixelart.Palette) {
	slices.SortFunc(palette, func(a, b color.RGBA) int {
		ca, _ := colorful.MakeColor(a)
		cb, _ := colorful.MakeColor(b)
		ri, gi, bi := ca.LinearRgb()
		rj, gj, bj := cb.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		return cmp.Compare(yi, yj)
	})
}

// ReadImage decodes the image at path into a zero-origin RGBA buffer.
func ReadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any decoded image to a zero-origin *image.RGBA. An
// image already in that shape is returned as-is.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min.X == 0 && b.Min.Y == 0 {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(out, image.Point{}, img, b, draw.Src, nil)
	return out
}

// SaveImage encodes img to filename. The format follows the file
// extension: .jpg/.jpeg for JPEG, anything else PNG.
func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}

// SavePalette renders the palette as a horizontal strip of colored
// tiles and writes it to filename.
func SavePalette(palette pixelart.Palette, tileSize int, filename string) error {
	if len(palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(palette)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, c := range palette {
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := range h {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}

	return SaveImage(img, filename)
}

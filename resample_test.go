package pixelart

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// newTestImage builds a w×h RGBA image with a deterministic per-pixel
// pattern so resampling mistakes show up as pixel differences.
func newTestImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 50),
				G: uint8(y * 50),
				B: uint8((x + y) * 25),
				A: 255,
			})
		}
	}
	return img
}

func newSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPixelateFactorOneIsIdentity(t *testing.T) {
	img := newTestImage(5, 3)
	out, err := Pixelate(img, 1, 0, 0)
	if err != nil {
		t.Fatalf("Pixelate: %v", err)
	}
	if !out.Bounds().Eq(img.Bounds()) {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), img.Bounds())
	}
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Error("factor 1 with no targets should be pixel-identical to the input")
	}
}

func TestPixelateInvalidFactor(t *testing.T) {
	img := newTestImage(4, 4)
	for _, factor := range []int{0, -1} {
		out, err := Pixelate(img, factor, 0, 0)
		if out != nil {
			t.Errorf("factor %d: got image, want nil", factor)
		}
		var sizeErr *SizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("factor %d: err = %v, want *SizeError", factor, err)
		}
	}
}

func TestPixelateFactorLargerThanImage(t *testing.T) {
	img := newTestImage(4, 4)
	_, err := Pixelate(img, 5, 0, 0)
	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want *SizeError", err)
	}
	if sizeErr.Factor != 5 || sizeErr.Width != 4 || sizeErr.Height != 4 {
		t.Errorf("SizeError = %+v, want factor 5 on 4x4", sizeErr)
	}
}

func TestPixelateTargetDimensions(t *testing.T) {
	tests := []struct {
		name         string
		origW, origH int
		targetW      int
		targetH      int
		wantW, wantH int
	}{
		{"both given", 4, 2, 10, 3, 10, 3},
		{"width only derives height", 4, 2, 8, 0, 8, 4},
		{"height only derives width", 4, 2, 0, 6, 12, 6},
		{"neither keeps original size", 4, 2, 0, 0, 4, 2},
		{"width only with rounding", 3, 2, 4, 0, 4, 3}, // round(2*4/3) = 3
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newTestImage(tt.origW, tt.origH)
			out, err := Pixelate(img, 1, tt.targetW, tt.targetH)
			if err != nil {
				t.Fatalf("Pixelate: %v", err)
			}
			b := out.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("output = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPixelateProducesUniformBlocks(t *testing.T) {
	// Four uniform 2x2 quadrants: downsample then upsample at factor 2
	// must keep each quadrant uniform with its own color.
	quadrants := [2][2]color.RGBA{
		{{R: 255, A: 255}, {G: 255, A: 255}},
		{{B: 255, A: 255}, {R: 255, G: 255, A: 255}},
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetRGBA(x, y, quadrants[y/2][x/2])
		}
	}

	out, err := Pixelate(img, 2, 0, 0)
	if err != nil {
		t.Fatalf("Pixelate: %v", err)
	}
	for y := range 4 {
		for x := range 4 {
			want := quadrants[y/2][x/2]
			if got := out.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixelateDoesNotMutateInput(t *testing.T) {
	img := newTestImage(6, 6)
	before := bytes.Clone(img.Pix)
	if _, err := Pixelate(img, 3, 2, 2); err != nil {
		t.Fatalf("Pixelate: %v", err)
	}
	if !bytes.Equal(img.Pix, before) {
		t.Error("input image was mutated")
	}
}

// Package imageio provides image loading and patch manipulation for the
// capture pipeline.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"hashi-capture/pkg/geometry"
)

// Load reads and decodes an image file.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Crop returns a copy of the rectangle's pixels as an RGBA image. The
// rectangle is clamped to the image bounds first; a rectangle entirely
// outside them is an error.
func Crop(img image.Image, r geometry.RectInt) (*image.RGBA, error) {
	b := img.Bounds()
	c := r.Clamp(b.Dx(), b.Dy())
	if c.Empty() {
		return nil, fmt.Errorf("region (%d,%d %dx%d) lies outside the %dx%d image",
			r.X, r.Y, r.Width, r.Height, b.Dx(), b.Dy())
	}

	out := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	xdraw.Draw(out, out.Bounds(), img, image.Pt(b.Min.X+c.X, b.Min.Y+c.Y), xdraw.Src)
	return out, nil
}

// Upscale returns the image scaled so its short side is at least
// minSide pixels, using Catmull-Rom interpolation. Images already that
// large are returned unchanged. Small OCR patches recognize noticeably
// better after smooth upscaling than at native size.
func Upscale(img image.Image, minSide int) image.Image {
	b := img.Bounds()
	short := b.Dx()
	if b.Dy() < short {
		short = b.Dy()
	}
	if short >= minSide || short == 0 {
		return img
	}

	scale := float64(minSide) / float64(short)
	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}

// EncodePNG encodes an image to PNG bytes, the interchange format the
// OCR engine accepts.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".tiff", ".tif", ".png", ".jpg", ".jpeg"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

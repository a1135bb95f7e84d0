package detect

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"
)

// paperWithSquares draws filled dark squares on a white background.
func paperWithSquares(w, h int, squares []image.Rectangle) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	ink := image.NewUniform(color.RGBA{R: 20, G: 20, B: 20, A: 255})
	for _, sq := range squares {
		draw.Draw(img, sq, ink, image.Point{}, draw.Src)
	}
	return img
}

func TestDetectRegionsFindsInkBlobs(t *testing.T) {
	squares := []image.Rectangle{
		image.Rect(30, 30, 50, 50),
		image.Rect(120, 120, 140, 140),
	}
	img := paperWithSquares(200, 200, squares)

	d := NewDetector(DefaultDetectParams())
	rects, err := d.DetectRegions(img)
	require.NoError(t, err)
	require.Len(t, rects, 2)

	for _, sq := range squares {
		found := false
		for _, r := range rects {
			c := r.Center()
			if image.Pt(c.X, c.Y).In(sq) {
				found = true
				// Blur and closing may grow the box by a few pixels.
				require.InDelta(t, sq.Dx(), r.Width, 8)
				require.InDelta(t, sq.Dy(), r.Height, 8)
			}
		}
		require.True(t, found, "no detected region covers square at %v", sq.Min)
	}
}

func TestDetectRegionsBlankPaper(t *testing.T) {
	img := paperWithSquares(100, 100, nil)

	d := NewDetector(DefaultDetectParams())
	rects, err := d.DetectRegions(img)
	require.NoError(t, err)
	require.Empty(t, rects)
}

func TestDetectRegionsEmptyImage(t *testing.T) {
	d := NewDetector(DefaultDetectParams())
	_, err := d.DetectRegions(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.Error(t, err)
}

func TestNewDetectorFillsDefaults(t *testing.T) {
	d := NewDetector(DetectParams{})
	require.Equal(t, DefaultDetectParams(), d.params)
}

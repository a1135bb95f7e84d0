// Package render draws detection results over a puzzle photograph for
// visual inspection.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"hashi-capture/internal/region"
	"hashi-capture/pkg/geometry"
)

// Stage colors. Raw boxes are drawn first so candidate verdicts stay
// visible on top of them.
var (
	RawColor      = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	DroppedColor  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	AcceptedColor = color.RGBA{R: 40, G: 200, B: 80, A: 255}
	LatticeColor  = color.RGBA{R: 70, G: 120, B: 230, A: 255}
)

// Options configures overlay rendering.
type Options struct {
	RawOutlineWidth      int // Outline width for raw detector boxes
	AcceptedOutlineWidth int // Outline width for surviving candidates
}

// DefaultOptions returns default overlay options.
func DefaultOptions() Options {
	return Options{
		RawOutlineWidth:      1,
		AcceptedOutlineWidth: 2,
	}
}

// Overlay copies the source photograph and outlines every detection
// stage on it: raw detector boxes in gray, candidates dropped as
// duplicates in red, accepted islands in green.
func Overlay(src image.Image, raw []geometry.RectInt, candidates, accepted []region.Candidate, opts Options) *image.RGBA {
	bounds := src.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)

	for _, r := range raw {
		outlineRect(img, r, opts.RawOutlineWidth, RawColor)
	}

	acceptedByIndex := make(map[int]bool, len(accepted))
	for _, c := range accepted {
		acceptedByIndex[c.Index] = true
	}
	for _, c := range candidates {
		if acceptedByIndex[c.Index] {
			outlineRect(img, c.Rect, opts.AcceptedOutlineWidth, AcceptedColor)
		} else {
			outlineRect(img, c.Rect, opts.AcceptedOutlineWidth, DroppedColor)
		}
	}
	return img
}

// DrawLattice draws the inferred grid lines through the given axis
// positions across the full image.
func DrawLattice(img *image.RGBA, xPositions, yPositions []int, c color.RGBA) {
	bounds := img.Bounds()
	for _, x := range xPositions {
		if x < bounds.Min.X || x >= bounds.Max.X {
			continue
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			img.Set(x, y, c)
		}
	}
	for _, y := range yPositions {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// outlineRect draws concentric rectangle outlines, growing inward.
func outlineRect(img *image.RGBA, r geometry.RectInt, width int, c color.RGBA) {
	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.Width, r.Y+r.Height
	for w := 0; w < width; w++ {
		drawRect(img, x1+w, y1+w, x2-w, y2-w, c)
	}
}

// drawRect draws a rectangle outline clipped to the image.
func drawRect(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	bounds := img.Bounds()

	for x := x1; x <= x2; x++ {
		if x >= bounds.Min.X && x < bounds.Max.X {
			if y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
				img.Set(x, y1, c)
			}
			if y2 >= bounds.Min.Y && y2 < bounds.Max.Y {
				img.Set(x, y2, c)
			}
		}
	}

	for y := y1; y <= y2; y++ {
		if y >= bounds.Min.Y && y < bounds.Max.Y {
			if x1 >= bounds.Min.X && x1 < bounds.Max.X {
				img.Set(x1, y, c)
			}
			if x2 >= bounds.Min.X && x2 < bounds.Max.X {
				img.Set(x2, y, c)
			}
		}
	}
}

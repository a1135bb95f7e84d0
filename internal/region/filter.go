package region

import (
	"hashi-capture/pkg/geometry"
)

// Filter returns the candidates plausible as island markers, in their
// original detection order. rows and cols are the source image height
// and width in pixels. Rejected rectangles are dropped silently; the
// surviving candidates keep their index into the input slice.
func Filter(rects []geometry.RectInt, rows, cols int, params FilterParams) []Candidate {
	imageArea := rows * cols

	var kept []Candidate
	for i, r := range rects {
		if r.Width <= params.MinWidth || r.Height <= params.MinHeight {
			continue
		}
		area := r.Area()
		if area <= params.MinArea {
			continue
		}
		// area < imageArea/divisor, kept in integer arithmetic.
		if area*params.MaxAreaDivisor >= imageArea {
			continue
		}
		kept = append(kept, Candidate{Rect: r, Index: i})
	}
	return kept
}

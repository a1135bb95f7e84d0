// Package region filters and deduplicates candidate island regions
// detected in a puzzle photograph.
package region

import (
	"hashi-capture/pkg/geometry"
)

// Candidate is a detected rectangle tagged with its position in the
// detector's output order. The index stays stable through filtering so
// later stages can report which detection a region came from.
type Candidate struct {
	Rect  geometry.RectInt `json:"rect"`
	Index int              `json:"index"`
}

// FilterParams holds thresholds for rejecting implausible island regions.
// See params.go for defaults.
type FilterParams struct {
	// Size floors in pixels (exclusive). Regions at or below these are
	// detector specks, not island markers.
	MinWidth  int
	MinHeight int
	MinArea   int

	// A region is rejected once its area reaches 1/MaxAreaDivisor of the
	// image area. Rejects the board outline and other page-scale blobs.
	MaxAreaDivisor int
}

// Package capture turns a photograph of a bridges puzzle into
// solver-ready grid text.
//
// The pipeline runs in fixed stages: detect candidate regions, filter
// implausible ones, resolve overlapping duplicates, recognize each
// surviving island's clue, then reconstruct the dense grid from the
// island positions. Detection, recognition, and solving are
// capabilities supplied by the caller; the pipeline itself holds no
// state between runs.
package capture

import (
	"errors"
	"fmt"
	"image"

	"hashi-capture/internal/grid"
	"hashi-capture/internal/region"
	"hashi-capture/pkg/geometry"
)

var (
	// ErrNoRegions is returned when detection produces no usable
	// candidates. There is nothing to reconstruct from, so the run
	// terminates instead of guessing.
	ErrNoRegions = errors.New("no candidate regions detected")

	// ErrRecognition is returned when any OCR invocation fails. A
	// missing island would corrupt axis inference for every other cell,
	// so the whole run aborts rather than substituting a placeholder.
	ErrRecognition = errors.New("digit recognition failed")
)

// RegionDetector finds candidate island rectangles in an image.
// Implementations must return rectangles in a stable order; the
// pipeline's duplicate resolution is defined in terms of it.
type RegionDetector interface {
	DetectRegions(img image.Image) ([]geometry.RectInt, error)
}

// DigitRecognizer recognizes the clue digit in a cropped island patch.
// The returned text is best effort and may be empty or non-numeric.
type DigitRecognizer interface {
	RecognizeDigit(patch image.Image) (string, error)
}

// Solver consumes grid text and produces a rendered solution. Supplied
// by the caller; the capture pipeline never invokes it itself.
type Solver interface {
	Solve(gridText string) (string, error)
}

// Run executes the full pipeline on one image and returns the
// reconstructed clue grid. Each call recomputes everything from the
// image; nothing is retained between calls.
func Run(img image.Image, detector RegionDetector, recognizer DigitRecognizer, params region.FilterParams) (*grid.Grid, error) {
	bounds := img.Bounds()

	rects, err := detector.DetectRegions(img)
	if err != nil {
		return nil, fmt.Errorf("failed to detect regions: %w", err)
	}
	if len(rects) == 0 {
		return nil, ErrNoRegions
	}

	candidates := region.Filter(rects, bounds.Dy(), bounds.Dx(), params)
	survivors := region.ResolveOverlaps(candidates)
	if len(survivors) == 0 {
		return nil, fmt.Errorf("%w: all %d raw regions filtered out", ErrNoRegions, len(rects))
	}

	islands, err := extractValues(img, survivors, recognizer)
	if err != nil {
		return nil, err
	}

	g, err := grid.Reconstruct(islands)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct grid: %w", err)
	}
	return g, nil
}

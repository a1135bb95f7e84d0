package capture

import (
	"fmt"
	"image"

	"hashi-capture/internal/grid"
	"hashi-capture/internal/imageio"
	"hashi-capture/internal/region"
)

// extractValues crops each surviving rectangle and recognizes its clue.
// Recognition runs one region at a time, each result awaited before the
// next crop, and any failure aborts the run: reconstruction needs the
// complete set of island positions.
func extractValues(img image.Image, survivors []region.Candidate, recognizer DigitRecognizer) ([]grid.Island, error) {
	islands := make([]grid.Island, 0, len(survivors))
	for _, c := range survivors {
		patch, err := imageio.Crop(img, c.Rect)
		if err != nil {
			return nil, fmt.Errorf("failed to crop region %d: %w", c.Index, err)
		}

		text, err := recognizer.RecognizeDigit(patch)
		if err != nil {
			return nil, fmt.Errorf("%w: region %d at (%d,%d): %w",
				ErrRecognition, c.Index, c.Rect.X, c.Rect.Y, err)
		}

		pos := c.Rect.TopLeft()
		islands = append(islands, grid.Island{
			X:     pos.X,
			Y:     pos.Y,
			Value: DigitOf(text),
		})
	}
	return islands, nil
}

// DigitOf extracts the clue character from raw OCR text: the first
// decimal digit that appears, or the unknown sentinel when there is
// none. A zero is outside the clue alphabet and counts as unrecognized.
func DigitOf(text string) byte {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '1' && c <= '9' {
			return c
		}
		if c == '0' {
			return grid.Unknown
		}
	}
	return grid.Unknown
}

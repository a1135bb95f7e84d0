package grid

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// AxisQuality summarizes how well the detected positions fit the
// inferred cell pitch.
type AxisQuality struct {
	Unit          float64 // pitch the fit used, in pixels
	MeanSpacing   float64 // mean consecutive spacing in pixels
	SpacingStdDev float64 // spread of consecutive spacings
	MaxResidual   float64 // worst rounding error across spacings, in cell units
	Spans         int     // lattice steps between first and last position
}

// Quality computes fit statistics for the axis. A residual near 0.5
// means some spacing sat halfway between two pitch multiples: the
// minimum-spacing heuristic probably latched onto a fraction of the
// true cell size, typically from perspective skew or a split detection.
func (a Axis) Quality() AxisQuality {
	if len(a.Positions) < 2 {
		return AxisQuality{Unit: a.Unit}
	}

	spacings := make([]float64, 0, len(a.Positions)-1)
	for i := 1; i < len(a.Positions); i++ {
		spacings = append(spacings, float64(a.Positions[i]-a.Positions[i-1]))
	}

	q := AxisQuality{
		Unit:        a.Unit,
		MeanSpacing: stat.Mean(spacings, nil),
		Spans:       a.Size - 1,
	}
	if len(spacings) > 1 {
		q.SpacingStdDev = stat.StdDev(spacings, nil)
	}
	for _, s := range spacings {
		exact := s / a.Unit
		if r := math.Abs(exact - math.Round(exact)); r > q.MaxResidual {
			q.MaxResidual = r
		}
	}
	return q
}

// Suspect reports whether any spacing rounded badly enough that the
// reconstruction deserves a manual look.
func (q AxisQuality) Suspect() bool {
	return q.MaxResidual > 0.25
}

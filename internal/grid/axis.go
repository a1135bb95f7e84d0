// Package grid reconstructs a dense clue grid from scattered island positions.
//
// Islands sit on an implicit regular lattice, but a photograph only
// samples the lattice points that contain an island: empty rows and
// columns are invisible in pixel space and have to be inferred from
// spacing ratios. The minimum spacing between two detected neighbours
// is the one spacing guaranteed to span exactly one lattice step, so it
// serves as the cell pitch; wider spacings round to whole multiples of
// it and the surplus steps become empty grid slots.
package grid

import (
	"errors"
	"math"
	"sort"
)

// ErrZeroUnit reports a zero cell pitch. Distinct sorted positions can
// only produce a zero minimum spacing when duplicates survived overlap
// resolution, so this is an internal consistency failure rather than a
// property of the input image.
var ErrZeroUnit = errors.New("zero cell pitch on axis")

// Axis is the reconstructed coordinate mapping for one dimension.
// Size counts every grid index including inferred gaps; Index maps each
// real pixel position to its grid index. Gap slots have no entry.
type Axis struct {
	Positions []int       // distinct detected positions, ascending
	Unit      float64     // cell pitch in pixels
	Size      int         // grid length including gap slots
	Index     map[int]int // pixel position -> grid index
}

// BuildAxis reconstructs the mapping for one dimension from the pixel
// positions of detected islands. Duplicate positions are collapsed
// before spacing analysis. Zero or one distinct position yields a
// degenerate axis of length 1.
func BuildAxis(positions []int) (Axis, error) {
	distinct := distinctSorted(positions)

	if len(distinct) <= 1 {
		axis := Axis{Positions: distinct, Size: 1, Index: make(map[int]int, 1)}
		if len(distinct) == 1 {
			axis.Index[distinct[0]] = 0
		}
		return axis, nil
	}

	unit := math.MaxFloat64
	for i := 1; i < len(distinct); i++ {
		if d := float64(distinct[i] - distinct[i-1]); d < unit {
			unit = d
		}
	}
	if unit <= 0 {
		return Axis{}, ErrZeroUnit
	}

	index := make(map[int]int, len(distinct))
	index[distinct[0]] = 0
	idx := 0
	for i := 1; i < len(distinct); i++ {
		steps := int(math.Round(float64(distinct[i]-distinct[i-1]) / unit))
		if steps < 1 {
			steps = 1
		}
		idx += steps
		index[distinct[i]] = idx
	}

	return Axis{
		Positions: distinct,
		Unit:      unit,
		Size:      idx + 1,
		Index:     index,
	}, nil
}

// distinctSorted returns the sorted unique values of positions without
// mutating the input.
func distinctSorted(positions []int) []int {
	if len(positions) == 0 {
		return nil
	}
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Ints(sorted)

	distinct := sorted[:1]
	for _, p := range sorted[1:] {
		if p != distinct[len(distinct)-1] {
			distinct = append(distinct, p)
		}
	}
	return distinct
}

package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildAxisContiguous(t *testing.T) {
	axis, err := BuildAxis([]int{0, 20, 40, 60})
	require.NoError(t, err)

	require.Equal(t, 20.0, axis.Unit)
	require.Equal(t, 4, axis.Size)
	require.Equal(t, map[int]int{0: 0, 20: 1, 40: 2, 60: 3}, axis.Index)
}

func TestBuildAxisInsertsGapSlots(t *testing.T) {
	// The 40px spacing is two lattice steps, so one empty slot sits
	// between the islands at 20 and 60.
	axis, err := BuildAxis([]int{0, 20, 60})
	require.NoError(t, err)

	require.Equal(t, 20.0, axis.Unit)
	require.Equal(t, 4, axis.Size)
	require.Equal(t, map[int]int{0: 0, 20: 1, 60: 3}, axis.Index)
}

func TestBuildAxisMultipleOfUnitYieldsKMinusOneGaps(t *testing.T) {
	// unit = 10; spans of k*unit must open exactly k-1 gap slots.
	axis, err := BuildAxis([]int{0, 10, 50})
	require.NoError(t, err)

	require.Equal(t, 10.0, axis.Unit)
	require.Equal(t, 6, axis.Size)
	require.Equal(t, map[int]int{0: 0, 10: 1, 50: 5}, axis.Index)
}

func TestBuildAxisOrderIndependent(t *testing.T) {
	a, err := BuildAxis([]int{0, 20, 60})
	require.NoError(t, err)
	b, err := BuildAxis([]int{60, 0, 20})
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestBuildAxisCollapsesDuplicates(t *testing.T) {
	// Islands in one column report the same coordinate on this axis.
	axis, err := BuildAxis([]int{30, 30, 60, 30, 60})
	require.NoError(t, err)

	require.Equal(t, []int{30, 60}, axis.Positions)
	require.Equal(t, 2, axis.Size)
}

func TestBuildAxisToleratesUnevenSpacing(t *testing.T) {
	// Real captures jitter by a few pixels; spacings of 18 and 22 are
	// both one step of an 18px pitch after rounding.
	axis, err := BuildAxis([]int{0, 18, 40, 62})
	require.NoError(t, err)

	require.Equal(t, 18.0, axis.Unit)
	require.Equal(t, 4, axis.Size)
	require.Equal(t, map[int]int{0: 0, 18: 1, 40: 2, 62: 3}, axis.Index)
}

func TestBuildAxisDegenerate(t *testing.T) {
	single, err := BuildAxis([]int{120})
	require.NoError(t, err)
	require.Equal(t, 1, single.Size)
	require.Equal(t, map[int]int{120: 0}, single.Index)

	empty, err := BuildAxis(nil)
	require.NoError(t, err)
	require.Equal(t, 1, empty.Size)
	require.Empty(t, empty.Index)
}

func TestAxisQualityUniform(t *testing.T) {
	axis, err := BuildAxis([]int{0, 20, 40})
	require.NoError(t, err)

	q := axis.Quality()
	require.Equal(t, 20.0, q.Unit)
	require.Equal(t, 20.0, q.MeanSpacing)
	require.Equal(t, 0.0, q.SpacingStdDev)
	require.Equal(t, 0.0, q.MaxResidual)
	require.Equal(t, 2, q.Spans)
	require.False(t, q.Suspect())
}

func TestAxisQualityFlagsBadFit(t *testing.T) {
	// 25/15 lands a third of a cell away from the nearest multiple.
	axis, err := BuildAxis([]int{0, 15, 40})
	require.NoError(t, err)

	q := axis.Quality()
	require.InDelta(t, 1.0/3.0, q.MaxResidual, 1e-9)
	require.True(t, q.Suspect())
}

package grid

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Blank marks a grid cell with no island.
	Blank = ' '
	// Unknown marks an island whose clue could not be recognized.
	Unknown = '?'
)

// ErrNoIslands reports an empty extraction set: with no positions there
// is no lattice to reconstruct.
var ErrNoIslands = errors.New("no islands to place")

// Island is one extracted clue: the top-left pixel position of its
// detected rectangle and the recognized character.
type Island struct {
	X     int
	Y     int
	Value byte
}

// Grid is the reconstructed rectangular clue grid.
type Grid struct {
	Cells [][]byte // Rows()xCols(), row-major, top to bottom
	XAxis Axis
	YAxis Axis
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int {
	return g.YAxis.Size
}

// Cols returns the number of grid columns.
func (g *Grid) Cols() int {
	return g.XAxis.Size
}

// Reconstruct builds the dense clue grid from extracted islands.
// Both axes are derived independently; every island lands on exactly
// one cell and untouched cells keep the blank marker.
func Reconstruct(islands []Island) (*Grid, error) {
	if len(islands) == 0 {
		return nil, ErrNoIslands
	}

	xs := make([]int, len(islands))
	ys := make([]int, len(islands))
	for i, isl := range islands {
		xs[i] = isl.X
		ys[i] = isl.Y
	}

	xAxis, err := BuildAxis(xs)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	yAxis, err := BuildAxis(ys)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	cells := make([][]byte, yAxis.Size)
	for y := range cells {
		row := make([]byte, xAxis.Size)
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}

	for _, isl := range islands {
		xi, ok := xAxis.Index[isl.X]
		if !ok {
			return nil, fmt.Errorf("no column index for x=%d", isl.X)
		}
		yi, ok := yAxis.Index[isl.Y]
		if !ok {
			return nil, fmt.Errorf("no row index for y=%d", isl.Y)
		}
		cells[yi][xi] = isl.Value
	}

	return &Grid{Cells: cells, XAxis: xAxis, YAxis: yAxis}, nil
}

// String serializes the grid as solver input: one line per row, cells
// concatenated without separators, trailing blanks kept so every line
// has exactly Cols() characters.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols() + 1))
	for y, row := range g.Cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}
	return b.String()
}

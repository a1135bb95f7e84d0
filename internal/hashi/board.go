// Package hashi solves bridge puzzles from their clue grid.
//
// A board is a text grid: digits 1-9 are islands, spaces are water.
// Islands in the same row or column can carry up to two bridges
// between them; bridges may not cross each other or pass through
// other islands. A solution connects every island with exactly as
// many bridges as its clue, forming a single connected component.
package hashi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnresolvedClue marks a board whose text still contains a '?'
// placeholder where a clue could not be read.
var ErrUnresolvedClue = errors.New("board contains an unresolved clue")

type cell struct {
	x, y int
}

type node struct {
	clue int
	x, y int
}

// edge is a potential bridge span between two islands. For horizontal
// edges fixed is the row and lo/hi the column range; for vertical
// edges fixed is the column and lo/hi the row range. Ranges are
// inclusive of both island cells.
type edge struct {
	horizontal bool
	fixed      int
	lo, hi     int
}

func strictlyInside(v, lo, hi int) bool {
	return v > lo && v < hi
}

// intersects reports whether two spans would collide if both carried
// bridges. Endpoints do not collide: spans meeting at an island are
// fine.
func (e edge) intersects(o edge) bool {
	if e.horizontal == o.horizontal {
		return e.fixed == o.fixed &&
			(strictlyInside(e.lo, o.lo, o.hi) || strictlyInside(e.hi, o.lo, o.hi))
	}
	h, v := e, o
	if !h.horizontal {
		h, v = o, e
	}
	return strictlyInside(v.fixed, h.lo, h.hi) && strictlyInside(h.fixed, v.lo, v.hi)
}

func (e edge) endpoints() (cell, cell) {
	if e.horizontal {
		return cell{e.lo, e.fixed}, cell{e.hi, e.fixed}
	}
	return cell{e.fixed, e.lo}, cell{e.fixed, e.hi}
}

func (e edge) cells() []cell {
	out := make([]cell, 0, e.hi-e.lo+1)
	for v := e.lo; v <= e.hi; v++ {
		if e.horizontal {
			out = append(out, cell{v, e.fixed})
		} else {
			out = append(out, cell{e.fixed, v})
		}
	}
	return out
}

func (e edge) glyph(count byte) rune {
	switch {
	case count == 0:
		return ' '
	case e.horizontal && count == 1:
		return '-'
	case e.horizontal:
		return '='
	case count == 1:
		return '|'
	default:
		return '‖'
	}
}

// Board is a parsed puzzle: its islands, the spans bridges could
// occupy, and which spans would cross each other.
type Board struct {
	nodes         []node
	edges         []edge
	intersections [][]int
}

// Parse reads a clue grid. Digits 1-9 become islands at their
// character position; spaces are water. Any other character is an
// error, and '?' gets a dedicated one so callers can tell an
// unreadable capture from a malformed board.
func Parse(s string) (*Board, error) {
	var nodes []node
	for y, line := range strings.Split(s, "\n") {
		for x, r := range []rune(line) {
			switch {
			case r >= '1' && r <= '9':
				nodes = append(nodes, node{clue: int(r - '0'), x: x, y: y})
			case r == ' ' || r == '\r':
			case r == '?':
				return nil, fmt.Errorf("%w at column %d, row %d", ErrUnresolvedClue, x, y)
			default:
				return nil, fmt.Errorf("unexpected character %q at column %d, row %d", r, x, y)
			}
		}
	}
	return newBoard(nodes), nil
}

func newBoard(nodes []node) *Board {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].x < nodes[j].x })

	var edges []edge
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[j].y != nodes[i].y {
				continue
			}
			// The nearest neighbor decides the span. Adjacent islands
			// leave no room for a bridge, and a span may not run
			// through another island.
			if nodes[j].x-nodes[i].x > 1 {
				edges = append(edges, edge{horizontal: true, fixed: nodes[i].y, lo: nodes[i].x, hi: nodes[j].x})
			}
			break
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].y < nodes[j].y })

	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[j].x != nodes[i].x {
				continue
			}
			if nodes[j].y-nodes[i].y > 1 {
				edges = append(edges, edge{horizontal: false, fixed: nodes[i].x, lo: nodes[i].y, hi: nodes[j].y})
			}
			break
		}
	}

	intersections := make([][]int, len(edges))
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].intersects(edges[j]) {
				intersections[i] = append(intersections[i], j)
				intersections[j] = append(intersections[j], i)
			}
		}
	}

	return &Board{nodes: nodes, edges: edges, intersections: intersections}
}

// NodeCount returns the number of islands.
func (b *Board) NodeCount() int {
	return len(b.nodes)
}

// Render draws the board with the given bridge assignment. The
// argument lists edge indices; an index appearing twice makes that
// span a double bridge. Rows above the last island that hold nothing
// are emitted as bare newlines.
func (b *Board) Render(bridges []int) string {
	counts := make([]byte, len(b.edges))
	for _, idx := range bridges {
		counts[idx]++
	}

	maxX, maxY := 1, 1
	for _, n := range b.nodes {
		if n.x+1 > maxX {
			maxX = n.x + 1
		}
		if n.y+1 > maxY {
			maxY = n.y + 1
		}
	}

	rows := make([][]rune, maxY)
	for y := range rows {
		rows[y] = make([]rune, maxX)
		for x := range rows[y] {
			rows[y][x] = ' '
		}
	}

	for idx, e := range b.edges {
		if counts[idx] == 0 {
			continue
		}
		g := e.glyph(counts[idx])
		for _, c := range e.cells() {
			if rows[c.y][c.x] == ' ' || rows[c.y][c.x] == g {
				rows[c.y][c.x] = g
			} else {
				rows[c.y][c.x] = '+'
			}
		}
	}

	for _, n := range b.nodes {
		rows[n.y][n.x] = rune('0' + n.clue)
	}

	var sb strings.Builder
	for y := 0; y < maxY; y++ {
		blank := true
		for x := 0; x < maxX; x++ {
			if rows[y][x] != ' ' {
				blank = false
				break
			}
		}
		if !blank {
			for x := 0; x < maxX; x++ {
				sb.WriteRune(rows[y][x])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

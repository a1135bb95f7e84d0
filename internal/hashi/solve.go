package hashi

import (
	"errors"
	"fmt"
	"io"
)

// Search failures. Depth and budget overruns may succeed with larger
// limits; ErrNoSolution means the bounded space is exhausted.
var (
	ErrDepthExceeded  = errors.New("max depth exceeded")
	ErrBudgetExceeded = errors.New("max visited state count exceeded")
	ErrNoSolution     = errors.New("searched all options")
)

// Prune reasons inside the search.
var (
	errDeadNode = errors.New("node cannot be completed")
	errIsolated = errors.New("isolated connected component exists")
)

const (
	reasonOnlyOption = "only possible bridge"
	reasonFillAll    = "clue fills every open slot"
	reasonOnePerPair = "clue forces one bridge per open pair"
	reasonGuess      = "speculative"
)

// Step records one bridge placement and why it was made.
type Step struct {
	Edge   int
	Reason string
}

// StepEdges lists the edge index of each step, preserving multiplicity.
func StepEdges(steps []Step) []int {
	out := make([]int, len(steps))
	for i, st := range steps {
		out[i] = st.Edge
	}
	return out
}

// SolveState is a backtracking search over bridge assignments. Forced
// placements are applied eagerly and cost no depth; speculation only
// happens when nothing is forced, bounded by a depth limit and a
// visited-state budget.
type SolveState struct {
	board       *Board
	steps       []Step
	depth       int
	edgeCounts  []byte
	nodeCounts  []int
	nodeAt      map[cell]int
	edgesAtNode [][]int
	visited     map[string]struct{}
	trace       io.Writer
}

// NewSolveState prepares a search over an empty assignment.
func NewSolveState(b *Board) *SolveState {
	nodeAt := make(map[cell]int, len(b.nodes))
	for idx, n := range b.nodes {
		nodeAt[cell{n.x, n.y}] = idx
	}

	edgesAtNode := make([][]int, len(b.nodes))
	for idx, e := range b.edges {
		p1, p2 := e.endpoints()
		edgesAtNode[nodeAt[p1]] = append(edgesAtNode[nodeAt[p1]], idx)
		edgesAtNode[nodeAt[p2]] = append(edgesAtNode[nodeAt[p2]], idx)
	}

	return &SolveState{
		board:       b,
		edgeCounts:  make([]byte, len(b.edges)),
		nodeCounts:  make([]int, len(b.nodes)),
		nodeAt:      nodeAt,
		edgesAtNode: edgesAtNode,
		visited:     make(map[string]struct{}),
	}
}

// SetTrace directs search progress to w. Pass nil to disable.
func (s *SolveState) SetTrace(w io.Writer) {
	s.trace = w
}

func (s *SolveState) endpointNodes(edge int) (int, int) {
	p1, p2 := s.board.edges[edge].endpoints()
	return s.nodeAt[p1], s.nodeAt[p2]
}

func (s *SolveState) remaining(idx int) int {
	return s.board.nodes[idx].clue - s.nodeCounts[idx]
}

func (s *SolveState) addEdge(edge int, reason string) {
	s.steps = append(s.steps, Step{Edge: edge, Reason: reason})
	s.edgeCounts[edge]++
	n1, n2 := s.endpointNodes(edge)
	s.nodeCounts[n1]++
	s.nodeCounts[n2]++
}

func (s *SolveState) removeEdge(edge int) {
	for i := len(s.steps) - 1; i >= 0; i-- {
		if s.steps[i].Edge == edge {
			s.steps = append(s.steps[:i], s.steps[i+1:]...)
			break
		}
	}
	s.edgeCounts[edge]--
	n1, n2 := s.endpointNodes(edge)
	s.nodeCounts[n1]--
	s.nodeCounts[n2]--
}

// alreadyVisited reports whether adding one bridge on edge reproduces
// an assignment the search has seen before.
func (s *SolveState) alreadyVisited(edge int) bool {
	s.edgeCounts[edge]++
	_, seen := s.visited[string(s.edgeCounts)]
	s.edgeCounts[edge]--
	return seen
}

type availableEdge struct {
	edge  int
	slots int
}

// availableEdges reports the edges at a node that can still take a
// bridge and how many more bridges each can carry, capped by the
// demand remaining at both endpoints.
func (s *SolveState) availableEdges(idx int) []availableEdge {
	var out []availableEdge
	for _, edgeIdx := range s.edgesAtNode[idx] {
		free := 2 - int(s.edgeCounts[edgeIdx])
		if free <= 0 {
			continue
		}

		n1, n2 := s.endpointNodes(edgeIdx)
		slots := free
		if r := s.remaining(n1); r < slots {
			slots = r
		}
		if r := s.remaining(n2); r < slots {
			slots = r
		}
		if slots <= 0 {
			continue
		}

		// A bridge between two 1-clues, or a second bridge between
		// two 2-clues, would complete both islands as an island pair
		// cut off from the rest of the board.
		c1, c2 := s.board.nodes[n1].clue, s.board.nodes[n2].clue
		if c1 == c2 && (c1 == 1 || (c1 == 2 && s.edgeCounts[edgeIdx] == 1)) {
			continue
		}

		blocked := false
		for _, crossing := range s.board.intersections[edgeIdx] {
			if s.edgeCounts[crossing] != 0 {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		out = append(out, availableEdge{edge: edgeIdx, slots: slots})
	}
	return out
}

func (s *SolveState) hasAvailableEdge(idx int) bool {
	return len(s.availableEdges(idx)) > 0
}

func (s *SolveState) assignedEdges(idx int) []int {
	var out []int
	for _, edgeIdx := range s.edgesAtNode[idx] {
		if s.edgeCounts[edgeIdx] != 0 {
			out = append(out, edgeIdx)
		}
	}
	return out
}

// findNextEdges collects every edge some unfinished node could still
// use, in node order, deduplicated.
func (s *SolveState) findNextEdges() []int {
	var viable []int
	seen := make(map[int]bool)
	for idx := range s.board.nodes {
		if s.remaining(idx) == 0 {
			continue
		}
		for _, ae := range s.availableEdges(idx) {
			if !seen[ae.edge] {
				viable = append(viable, ae.edge)
				seen[ae.edge] = true
			}
		}
	}
	return viable
}

// checkSolvable prunes assignments that cannot lead to a solution: an
// unfinished node with no usable edge, or a finished component walled
// off from the rest of the board.
func (s *SolveState) checkSolvable() error {
	for idx := range s.board.nodes {
		if s.remaining(idx) != 0 && !s.hasAvailableEdge(idx) {
			return errDeadNode
		}
	}

	component := make([]int, len(s.board.nodes))
	for i := range component {
		component[i] = -1
	}
	for idx := range s.board.nodes {
		if component[idx] >= 0 {
			continue
		}

		hasFree := false
		stack := []int{idx}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component[n] = idx

			for _, edgeIdx := range s.assignedEdges(n) {
				n1, n2 := s.endpointNodes(edgeIdx)
				if n1 == n && component[n2] < 0 {
					stack = append(stack, n2)
				}
				if n2 == n && component[n1] < 0 {
					stack = append(stack, n1)
				}
			}

			if s.hasAvailableEdge(n) {
				hasFree = true
			}
		}

		if !hasFree && !allZero(component) {
			return errIsolated
		}
	}
	return nil
}

// isSolved reports whether every clue is satisfied and all islands
// form one connected component.
func (s *SolveState) isSolved() bool {
	for idx := range s.board.nodes {
		if s.remaining(idx) != 0 {
			return false
		}
	}

	parent := make([]int, len(s.board.nodes))
	for i := range parent {
		parent[i] = i
	}
	for edgeIdx, count := range s.edgeCounts {
		if count == 0 {
			continue
		}
		n1, n2 := s.endpointNodes(edgeIdx)
		a, b := parent[n1], parent[n2]
		if a == b {
			continue
		}
		lo, hi := min(a, b), max(a, b)
		for i, v := range parent {
			if v == hi {
				parent[i] = lo
			}
		}
	}
	return allZero(parent)
}

func allZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// forcedMove looks for a node whose remaining demand pins down a
// specific bridge, classified by (remaining, edges with one open
// slot, untouched edges with two open slots).
func (s *SolveState) forcedMove() (int, string, bool) {
	for idx := range s.board.nodes {
		remaining := s.remaining(idx)
		if remaining == 0 {
			continue
		}

		var oneSlots, twoSlots []int
		for _, ae := range s.availableEdges(idx) {
			switch ae.slots {
			case 1:
				oneSlots = append(oneSlots, ae.edge)
			case 2:
				twoSlots = append(twoSlots, ae.edge)
			}
		}

		edge := -1
		var reason string
		switch [3]int{remaining, len(oneSlots), len(twoSlots)} {
		case [3]int{1, 1, 0}:
			edge, reason = oneSlots[0], reasonOnlyOption
		case [3]int{1, 0, 1}:
			edge, reason = twoSlots[0], reasonOnlyOption
		case [3]int{2, 0, 1}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{2, 1, 1}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{2, 2, 0}:
			edge, reason = oneSlots[0], reasonFillAll
		case [3]int{3, 0, 2}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{3, 1, 1}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{3, 2, 1}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{3, 3, 0}:
			edge, reason = oneSlots[0], reasonFillAll
		case [3]int{4, 0, 2}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{4, 1, 2}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{4, 2, 1}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{4, 3, 1}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{5, 0, 3}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{5, 1, 2}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{5, 2, 2}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{5, 3, 1}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{6, 0, 3}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{6, 2, 2}:
			edge, reason = twoSlots[0], reasonFillAll
		case [3]int{7, 0, 4}:
			edge, reason = twoSlots[0], reasonOnePerPair
		case [3]int{7, 1, 3}:
			edge, reason = oneSlots[0], reasonFillAll
		case [3]int{8, 0, 4}:
			edge, reason = twoSlots[0], reasonFillAll
		}
		if edge >= 0 {
			return edge, reason, true
		}
	}
	return 0, "", false
}

// Solve runs the search. maxDepth bounds speculative nesting and
// maxVisited bounds how many distinct assignments the search may
// record before giving up.
func (s *SolveState) Solve(maxDepth, maxVisited int) ([]Step, error) {
	if s.isSolved() {
		return append([]Step(nil), s.steps...), nil
	}
	if s.depth > maxDepth {
		return nil, ErrDepthExceeded
	}
	if err := s.checkSolvable(); err != nil {
		return nil, err
	}

	if edge, reason, ok := s.forcedMove(); ok {
		s.addEdge(edge, reason)
		steps, err := s.Solve(maxDepth, maxVisited)
		if err == nil {
			return steps, nil
		}
		s.removeEdge(edge)
	}

	s.visited[string(s.edgeCounts)] = struct{}{}
	if len(s.visited) > maxVisited {
		return nil, ErrBudgetExceeded
	}

	for _, edge := range s.findNextEdges() {
		if s.alreadyVisited(edge) {
			continue
		}

		s.addEdge(edge, reasonGuess)
		s.depth++
		s.tracef("adding speculative bridge %d at depth %d\n%s", edge, s.depth, s.board.Render(StepEdges(s.steps)))
		steps, err := s.Solve(maxDepth, maxVisited)
		if err == nil {
			return steps, nil
		}
		s.removeEdge(edge)
		s.tracef("removing bridge %d: %v\n%s", edge, err, s.board.Render(StepEdges(s.steps)))
		s.depth--
	}

	return nil, ErrNoSolution
}

func (s *SolveState) tracef(format string, args ...any) {
	if s.trace == nil {
		return
	}
	fmt.Fprintf(s.trace, format+"\n", args...)
}

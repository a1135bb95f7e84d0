package hashi

import (
	"fmt"
	"io"
)

// Options bounds the search.
type Options struct {
	MaxDepth   int       // Speculative nesting allowed before giving up
	MaxVisited int       // Distinct assignments to record before giving up
	Trace      io.Writer // Optional search log; nil disables tracing
}

// DefaultOptions returns search limits that handle typical published
// puzzles.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   3,
		MaxVisited: 10000,
	}
}

// Solver parses clue grids and searches for bridge layouts.
type Solver struct {
	opts Options
}

// NewSolver creates a solver, filling in defaults for unset limits.
func NewSolver(opts Options) *Solver {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions().MaxDepth
	}
	if opts.MaxVisited <= 0 {
		opts.MaxVisited = DefaultOptions().MaxVisited
	}
	return &Solver{opts: opts}
}

// Solve parses gridText and returns the rendered solved board.
func (s *Solver) Solve(gridText string) (string, error) {
	board, steps, err := s.SolveSteps(gridText)
	if err != nil {
		return "", err
	}
	return board.Render(StepEdges(steps)), nil
}

// SolveSteps parses gridText and returns the board together with the
// ordered bridge placements that solve it, for callers that replay
// the solution step by step.
func (s *Solver) SolveSteps(gridText string) (*Board, []Step, error) {
	board, err := Parse(gridText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse board: %w", err)
	}

	state := NewSolveState(board)
	state.SetTrace(s.opts.Trace)
	steps, err := state.Solve(s.opts.MaxDepth, s.opts.MaxVisited)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to solve board: %w", err)
	}
	return board, steps, nil
}

package solver

import (
	"context"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/sweepkit/sweepkit/internal/board"
)

var Log = logrus.New()

type Config struct {
	// ExactThreshold is the largest component (in unknown cells) that
	// is enumerated exhaustively; bigger ones are sampled.
	ExactThreshold int `schema:"exact_threshold"`
	// SampleBudget is the number of accepted samples per oversized
	// component.
	SampleBudget int `schema:"sample_budget"`
	// Workers caps how many components are solved concurrently.
	Workers int `schema:"-"`
	// Seed fixes the sampling rng; zero picks a fresh seed per solve.
	Seed uint64 `schema:"seed"`
}

func DefaultConfig() Config {
	return Config{
		ExactThreshold: 18,
		SampleBudget:   3000,
		Workers:        runtime.NumCPU(),
	}
}

// withDefaults fills unset tunables so a zero Config behaves sanely.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.ExactThreshold <= 0 {
		cfg.ExactThreshold = def.ExactThreshold
	}
	if cfg.SampleBudget <= 0 {
		cfg.SampleBudget = def.SampleBudget
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	return cfg
}

/*
Solver runs the phases in order: basic deduction and constraint
subset analysis iterated to a combined fixpoint, then, only when asked
through [Solver.Solve] or [Solver.Step], the probability phase. It
holds no mutable state between calls — every call is pure given its
snapshot, so one Solver may serve concurrent solves of equal-sized
boards.
*/
type Solver struct {
	cfg Config
	idx *board.NeighborIndex
}

func New(idx *board.NeighborIndex, cfg Config) *Solver {
	return &Solver{cfg: cfg.withDefaults(), idx: idx}
}

/*
Deduce runs basic deduction and constraint satisfaction to their
combined fixpoint and reports every newly certain cell. The snapshot
is never written to; applying the findings is the caller's job. Running
Deduce again on a snapshot with the findings applied yields nothing
new.
*/
func (s *Solver) Deduce(snap *board.Snapshot) (*Result, error) {
	k, err := s.deduce(snap)
	if err != nil {
		return nil, err
	}
	return k.result(), nil
}

/*
Solve is Deduce plus the probability phase: every cell still uncertain
gets a mine probability, and the least risky of them becomes the best
guess. totalMines is the game's full mine count, needed to place the
cells no constraint touches. A cancelled ctx stops the work between
components and returns the partial result with Cancelled set rather
than an error.
*/
func (s *Solver) Solve(
	ctx context.Context, snap *board.Snapshot, totalMines int,
) (*Result, error) {
	k, err := s.deduce(snap)
	if err != nil {
		return nil, err
	}
	out, err := k.probabilities(ctx, totalMines, s.cfg)
	if err != nil {
		return nil, err
	}

	res := k.result()
	res.Cancelled = out.cancelled
	if len(out.probs) == 0 {
		return res, nil
	}
	res.Probabilities = make(map[board.Cell]float64, len(out.probs))
	var (
		indexes = make([]int, 0, len(out.probs))
		best    = -1
	)
	for i := range out.probs {
		indexes = append(indexes, i)
	}
	// ascending index order makes the lowest row/col win ties
	slices.Sort(indexes)
	for _, i := range indexes {
		res.Probabilities[snap.CellAt(i)] = out.probs[i]
		if best == -1 || out.probs[i] < out.probs[best] {
			best = i
		}
	}
	guess := snap.CellAt(best)
	res.BestGuess = &guess
	return res, nil
}

/*
Step returns the single next recommended move, for callers that drive
a board one action at a time (auto-solve loops, hint buttons). Certain
moves come first — a safe open, then a flag — and only when nothing is
certain does it fall back to the best guess. Returns nil when the
board offers nothing to do. The caller owns pacing; Step never blocks
or sleeps.
*/
func (s *Solver) Step(
	ctx context.Context, snap *board.Snapshot, totalMines int,
) (*Move, error) {
	res, err := s.Solve(ctx, snap, totalMines)
	if err != nil {
		return nil, err
	}
	switch {
	case len(res.Safe) > 0:
		return &Move{Cell: res.Safe[0], Confidence: 1}, nil
	case len(res.Mines) > 0:
		return &Move{Cell: res.Mines[0], Flag: true, Confidence: 1}, nil
	case res.BestGuess != nil:
		p := res.Probabilities[*res.BestGuess]
		return &Move{Cell: *res.BestGuess, Confidence: 1 - p}, nil
	}
	return nil, nil
}

func (s *Solver) deduce(snap *board.Snapshot) (*knowledge, error) {
	if err := s.idx.Fits(snap); err != nil {
		return nil, err
	}
	k := newKnowledge(snap, s.idx)
	if err := k.deduceAll(); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *knowledge) result() *Result {
	res := &Result{}
	for _, i := range sortedCopy(k.mines) {
		res.Mines = append(res.Mines, k.snap.CellAt(i))
	}
	for _, i := range sortedCopy(k.safe) {
		res.Safe = append(res.Safe, k.snap.CellAt(i))
	}
	return res
}

func sortedCopy(a []int) []int {
	b := slices.Clone(a)
	slices.Sort(b)
	return b
}

package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepkit/sweepkit/internal/board"
)

func TestPartitionSplitsIndependentGroups(t *testing.T) {
	comps := buildComponents([]constraint{
		{cells: []int{0, 1}, mines: 1},
		{cells: []int{1, 2}, mines: 1},
		{cells: []int{10, 11}, mines: 1},
	})
	require.Len(t, comps, 2)
	assert.Equal(t, []int{0, 1, 2}, comps[0].cells)
	assert.Len(t, comps[0].rules, 2)
	assert.Equal(t, []int{10, 11}, comps[1].cells)
	assert.Len(t, comps[1].rules, 1)
}

func TestEnumerateSingleRule(t *testing.T) {
	// one mine among three cells: 3 assignments, 1/3 each
	tal := enumerate(component{
		cells: []int{0, 1, 2},
		rules: []rule{{cells: []int{0, 1, 2}, mines: 1}},
	})
	assert.Equal(t, 3, tal.solutions)
	for li := range 3 {
		assert.InDelta(t, 1.0/3, tal.probability(li), 1e-9)
	}
	assert.InDelta(t, 1, tal.expectedMines(), 1e-9)
}

func TestEnumerateOverlappingRules(t *testing.T) {
	// one mine among {0,1} and one among {0,1,2}: cell 2 never holds
	// a mine
	tal := enumerate(component{
		cells: []int{0, 1, 2},
		rules: []rule{
			{cells: []int{0, 1}, mines: 1},
			{cells: []int{0, 1, 2}, mines: 1},
		},
	})
	assert.Equal(t, 2, tal.solutions)
	assert.InDelta(t, 0.5, tal.probability(0), 1e-9)
	assert.InDelta(t, 0.5, tal.probability(1), 1e-9)
	assert.InDelta(t, 0, tal.probability(2), 1e-9)
}

func TestEnumerateUnsatisfiable(t *testing.T) {
	tal := enumerate(component{
		cells: []int{0},
		rules: []rule{
			{cells: []int{0}, mines: 1},
			{cells: []int{0}, mines: 0},
		},
	})
	assert.Equal(t, 0, tal.solutions)
}

func TestSolveEnumeratesComponentExactly(t *testing.T) {
	// a 1 with three unknown neighbors: every neighbor at 1/3, guess
	// is the first of them in row-major order
	snap := mustParse(t, `
		1 .
		. .
	`)
	res, err := newTestSolver(snap).Solve(context.Background(), snap, 1)
	require.NoError(t, err)
	require.Len(t, res.Probabilities, 3)
	for _, p := range res.Probabilities {
		assert.InDelta(t, 1.0/3, p, 1e-9)
	}
	require.NotNil(t, res.BestGuess)
	assert.Equal(t, board.Cell{Row: 0, Col: 1}, *res.BestGuess)
	assert.False(t, res.Cancelled)
}

func TestProbabilitySumMatchesMineCount(t *testing.T) {
	// probabilities of an exactly enumerated component must add up to
	// its expected mine count
	snap := mustParse(t, `
		1 . 1
		1 . 1
	`)
	res, err := newTestSolver(snap).Solve(context.Background(), snap, 1)
	require.NoError(t, err)
	sum := 0.0
	for _, p := range res.Probabilities {
		sum += p
	}
	assert.InDelta(t, 1, sum, 1e-9)
}

func TestGlobalFallbackProbability(t *testing.T) {
	// no constraints at all: total mines spread evenly over every
	// unknown cell
	snap := mustParse(t, `
		. . .
		. . .
		. . .
	`)
	res, err := newTestSolver(snap).Solve(context.Background(), snap, 3)
	require.NoError(t, err)
	require.Len(t, res.Probabilities, 9)
	for _, p := range res.Probabilities {
		assert.InDelta(t, 3.0/9, p, 1e-9)
	}
	require.NotNil(t, res.BestGuess)
	assert.Equal(t, board.Cell{Row: 0, Col: 0}, *res.BestGuess)
}

func TestFallbackAccountsForConstrainedMines(t *testing.T) {
	// component holds one expected mine; the remaining mine spreads
	// over the cells no constraint touches
	snap := mustParse(t, `
		1 . .
		. . .
	`)
	// (0,0)=1 touches (0,1),(1,0),(1,1); (0,2),(1,2) are unconstrained
	res, err := newTestSolver(snap).Solve(context.Background(), snap, 2)
	require.NoError(t, err)
	require.Len(t, res.Probabilities, 5)
	assert.InDelta(t, 1.0/3, res.Probabilities[board.Cell{Row: 0, Col: 1}], 1e-9)
	assert.InDelta(t, 1.0/3, res.Probabilities[board.Cell{Row: 1, Col: 0}], 1e-9)
	assert.InDelta(t, 1.0/3, res.Probabilities[board.Cell{Row: 1, Col: 1}], 1e-9)
	// (2 total - 1 expected) / 2 unconstrained
	assert.InDelta(t, 0.5, res.Probabilities[board.Cell{Row: 0, Col: 2}], 1e-9)
	assert.InDelta(t, 0.5, res.Probabilities[board.Cell{Row: 1, Col: 2}], 1e-9)
}

func TestBestGuessTieBreakIsDeterministic(t *testing.T) {
	// both middle cells sit at 0.5; the lower row/col must win every
	// time
	snap := mustParse(t, `
		1 . 1
		1 . 1
	`)
	s := newTestSolver(snap)
	for range 5 {
		res, err := s.Solve(context.Background(), snap, 1)
		require.NoError(t, err)
		require.NotNil(t, res.BestGuess)
		assert.Equal(t, board.Cell{Row: 0, Col: 1}, *res.BestGuess)
	}
}

func TestSampledMatchesExactAcrossThreshold(t *testing.T) {
	// center 2 with eight unknown neighbors: exact answer is 2/8 per
	// cell; force the sampling path and compare within epsilon
	snap := mustParse(t, `
		. . .
		. 2 .
		. . .
	`)
	ix := board.NewNeighborIndex(3, 3)

	exact, err := New(ix, Config{ExactThreshold: 8, Seed: 1}).
		Solve(context.Background(), snap, 2)
	require.NoError(t, err)

	sampled, err := New(ix, Config{ExactThreshold: 4, SampleBudget: 4000, Seed: 1}).
		Solve(context.Background(), snap, 2)
	require.NoError(t, err)

	require.Len(t, sampled.Probabilities, len(exact.Probabilities))
	for cell, p := range exact.Probabilities {
		assert.InDelta(t, p, sampled.Probabilities[cell], 0.05, "cell %s", cell)
	}
}

func TestSolveConflictOnUnsatisfiableComponent(t *testing.T) {
	// a 2 and a 0 disagree about the same lone cell before any rule
	// can fire... the basic rules catch it as a conflict either way
	snap := mustParse(t, `2 . 0`)
	_, err := newTestSolver(snap).Solve(context.Background(), snap, 2)
	require.Error(t, err)
}

func TestCancelledSolveReturnsPartialResult(t *testing.T) {
	snap := mustParse(t, `
		. . .
		. 2 .
		. . .
	`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(board.NewNeighborIndex(3, 3), Config{ExactThreshold: 4, Seed: 1})
	res, err := s.Solve(ctx, snap, 2)
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.Empty(t, res.Probabilities)
	assert.Nil(t, res.BestGuess)
}

func TestStepPrefersCertainSafeMove(t *testing.T) {
	snap := mustParse(t, `
		* 1 0
		1 1 0
		0 0 .
	`)
	move, err := newTestSolver(snap).Step(context.Background(), snap, 1)
	require.NoError(t, err)
	require.NotNil(t, move)
	assert.Equal(t, board.Cell{Row: 2, Col: 2}, move.Cell)
	assert.False(t, move.Flag)
	assert.Equal(t, 1.0, move.Confidence)
}

func TestStepFlagsCertainMine(t *testing.T) {
	snap := mustParse(t, `
		. .
		3 .
	`)
	move, err := newTestSolver(snap).Step(context.Background(), snap, 3)
	require.NoError(t, err)
	require.NotNil(t, move)
	assert.True(t, move.Flag)
	assert.Equal(t, board.Cell{Row: 0, Col: 0}, move.Cell)
}

func TestStepGuessesWhenNothingIsCertain(t *testing.T) {
	snap := mustParse(t, `
		1 . 1
		1 . 1
	`)
	move, err := newTestSolver(snap).Step(context.Background(), snap, 1)
	require.NoError(t, err)
	require.NotNil(t, move)
	assert.Equal(t, board.Cell{Row: 0, Col: 1}, move.Cell)
	assert.False(t, move.Flag)
	assert.InDelta(t, 0.5, move.Confidence, 1e-9)
}

func TestStepNothingLeftToDo(t *testing.T) {
	snap := mustParse(t, `0`)
	move, err := newTestSolver(snap).Step(context.Background(), snap, 0)
	require.NoError(t, err)
	assert.Nil(t, move)
}

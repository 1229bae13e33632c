package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepkit/sweepkit/internal/board"
)

// blankKnowledge builds solve state over an all-unknown board, handy
// for driving the subset pass with hand-made constraints.
func blankKnowledge(t *testing.T, rows, cols int) *knowledge {
	t.Helper()
	cells := make([]board.CellState, rows*cols)
	for i := range cells {
		cells[i] = board.Unknown
	}
	snap, err := board.NewSnapshot(rows, cols, cells)
	require.NoError(t, err)
	return newKnowledge(snap, board.NewNeighborIndex(rows, cols))
}

func TestBuildConstraints(t *testing.T) {
	snap := mustParse(t, `
		1 . .
		* 2 .
	`)
	k := newKnowledge(snap, board.NewNeighborIndex(2, 3))
	cons, err := k.buildConstraints()
	require.NoError(t, err)
	// the 1 is satisfied by the flag and contributes nothing
	require.Len(t, cons, 1)
	assert.Equal(t, []int{1, 2, 5}, cons[0].cells)
	assert.Equal(t, 1, cons[0].mines)
}

func TestSubsetDeduction(t *testing.T) {
	// A={0,1} with 1 mine inside B={0,1,2} with 1 mine: the
	// difference cell must be clear
	k := blankKnowledge(t, 1, 3)
	err := k.subsetPass([]constraint{
		{cells: []int{0, 1}, mines: 1},
		{cells: []int{0, 1, 2}, mines: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, k.safe)
	assert.Empty(t, k.mines)
}

func TestSubsetDeductionMines(t *testing.T) {
	// two extra mines over exactly two extra cells
	k := blankKnowledge(t, 1, 4)
	err := k.subsetPass([]constraint{
		{cells: []int{0, 1}, mines: 0},
		{cells: []int{0, 1, 2, 3}, mines: 2},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 3}, k.mines)
	assert.Empty(t, k.safe)
}

func TestSubsetPassOrderIndependent(t *testing.T) {
	a := constraint{cells: []int{0, 1}, mines: 1}
	b := constraint{cells: []int{0, 1, 2}, mines: 1}

	k1 := blankKnowledge(t, 1, 3)
	require.NoError(t, k1.subsetPass([]constraint{a, b}))
	k2 := blankKnowledge(t, 1, 3)
	require.NoError(t, k2.subsetPass([]constraint{b, a}))

	assert.Equal(t, k1.safe, k2.safe)
	assert.Equal(t, k1.mines, k2.mines)
}

func TestConflictingConstraintsOnSameCells(t *testing.T) {
	k := blankKnowledge(t, 1, 1)
	err := k.subsetPass([]constraint{
		{cells: []int{0}, mines: 1},
		{cells: []int{0}, mines: 0},
	})
	var conflict ConstraintConflictError
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflict))
}

func TestSubsetConflictOnImpossibleDifference(t *testing.T) {
	// B\A would need 2 mines in a single cell
	k := blankKnowledge(t, 1, 3)
	err := k.subsetPass([]constraint{
		{cells: []int{0, 1}, mines: 0},
		{cells: []int{0, 1, 2}, mines: 2},
	})
	var conflict ConstraintConflictError
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflict))
}

func TestSubsetFeedsBackIntoBasicDeduction(t *testing.T) {
	// 2x3 layout building exactly the A⊂B pair above from numbers:
	// once the right column cell is proven clear, nothing further is
	// certain, but the certainty must survive a full combined fixpoint
	snap := mustParse(t, `
		. . .
		1 1 .
	`)
	res, err := newTestSolver(snap).Deduce(snap)
	require.NoError(t, err)
	assert.Empty(t, res.Mines)
	assert.Equal(t, []board.Cell{
		{Row: 0, Col: 2}, {Row: 1, Col: 2},
	}, res.Safe)
}

func TestSortedSliceHelpers(t *testing.T) {
	assert.True(t, containsAll([]int{1, 2, 3, 5}, []int{2, 5}))
	assert.False(t, containsAll([]int{1, 2, 3}, []int{2, 4}))
	assert.Equal(t, []int{1, 3}, difference([]int{1, 2, 3}, []int{2}))
	assert.Nil(t, difference([]int{1, 2}, []int{1, 2}))
	assert.True(t, equalCells([]int{1, 2}, []int{1, 2}))
	assert.False(t, equalCells([]int{1, 2}, []int{1, 3}))
}

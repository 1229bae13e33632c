package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		cols  int
		cells []CellState
	}{
		{
			name: "zero dimensions",
			rows: 0, cols: 5,
			cells: nil,
		},
		{
			name: "cell count mismatch",
			rows: 2, cols: 2,
			cells: []CellState{Unknown, Unknown, Unknown},
		},
		{
			name: "count out of range",
			rows: 1, cols: 2,
			cells: []CellState{Unknown, 9},
		},
		{
			name: "negative state",
			rows: 1, cols: 2,
			cells: []CellState{-3, Unknown},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewSnapshot(test.rows, test.cols, test.cells)
			var invalid InvalidBoardError
			require.Error(t, err)
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	text := `
		1 * .
		0 2 .
	`
	snap, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Rows())
	assert.Equal(t, 3, snap.Cols())
	assert.Equal(t, Revealed(1), snap.At(0, 0))
	assert.Equal(t, Flagged, snap.At(0, 1))
	assert.Equal(t, Unknown, snap.At(0, 2))
	assert.Equal(t, "1 * . \n0 2 . \n", snap.String())
}

func TestParseRejectsRaggedRows(t *testing.T) {
	_, err := Parse("1 2\n3")
	require.Error(t, err)
}

func TestCellStateHelpers(t *testing.T) {
	assert.True(t, Revealed(3).IsRevealed())
	assert.Equal(t, 3, Revealed(3).Count())
	assert.False(t, Unknown.IsRevealed())
	assert.False(t, Flagged.IsRevealed())
	assert.False(t, CellState(9).Valid())
	assert.Equal(t, "*", Flagged.String())
	assert.Equal(t, ".", Unknown.String())
}

func TestNeighborIndexOrdering(t *testing.T) {
	ix := NewNeighborIndex(3, 3)

	center := 1*3 + 1
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, ix.Neighbors(center))

	corner := 0
	assert.Equal(t, []int{1, 3, 4}, ix.Neighbors(corner))

	edge := 1
	assert.Equal(t, []int{0, 2, 3, 4, 5}, ix.Neighbors(edge))
}

func TestNeighborIndexFits(t *testing.T) {
	ix := NewNeighborIndex(3, 3)

	snap, err := Parse(". . .\n. . .\n. . .")
	require.NoError(t, err)
	assert.NoError(t, ix.Fits(snap))

	small, err := Parse(". .\n. .")
	require.NoError(t, err)
	err = ix.Fits(small)
	var invalid InvalidBoardError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalid))
}

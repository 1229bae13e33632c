package main

import (
	"math/rand/v2"

	"github.com/sweepkit/sweepkit/internal/board"
)

/*
game is the minimal minesweeper the benchmark plays against. Board
generation and rule enforcement live here, on the driving side of the
solver boundary — the engine itself only ever sees snapshots.
*/
type game struct {
	rows, cols, mines int
	ix                *board.NeighborIndex
	mined             []bool
	state             []board.CellState // player knowledge
	opened            int
}

func newGame(rows, cols, mines, firstMove int, rng *rand.Rand) *game {
	g := &game{
		rows:  rows,
		cols:  cols,
		mines: mines,
		ix:    board.NewNeighborIndex(rows, cols),
		mined: make([]bool, rows*cols),
		state: make([]board.CellState, rows*cols),
	}
	for i := range g.state {
		g.state[i] = board.Unknown
	}
	for planted := 0; planted < mines; {
		i := rng.IntN(rows * cols)
		if i != firstMove && !g.mined[i] {
			g.mined[i] = true
			planted++
		}
	}
	g.open(firstMove)
	return g
}

func (g *game) mineCount(i int) (count int) {
	for _, j := range g.ix.Neighbors(i) {
		if g.mined[j] {
			count++
		}
	}
	return
}

// open reveals a cell and cascades through zero-count areas; reports
// whether a mine went off.
func (g *game) open(i int) (exploded bool) {
	if g.mined[i] {
		return true
	}
	if g.state[i] != board.Unknown {
		return false
	}
	n := g.mineCount(i)
	g.state[i] = board.Revealed(n)
	g.opened++
	if n == 0 {
		for _, j := range g.ix.Neighbors(i) {
			g.open(j)
		}
	}
	return false
}

func (g *game) flag(i int) {
	if g.state[i] == board.Unknown {
		g.state[i] = board.Flagged
	}
}

func (g *game) won() bool {
	return g.opened == g.rows*g.cols-g.mines
}

func (g *game) snapshot() (*board.Snapshot, error) {
	cells := make([]board.CellState, len(g.state))
	copy(cells, g.state)
	return board.NewSnapshot(g.rows, g.cols, cells)
}

package solver

import "github.com/sweepkit/sweepkit/internal/board"

/*
Result is the aggregated outcome of one solve call. It is freshly
constructed per call and shares no state with the engine, so results
from concurrent solves never interfere.
*/
type Result struct {
	// Mines and Safe hold newly certain cells, in row-major order.
	// Cells already flagged in the snapshot are not repeated here.
	Mines []board.Cell
	Safe  []board.Cell

	// Probabilities maps cells that are still uncertain to their mine
	// probability. Nil unless the probability phase ran.
	Probabilities map[board.Cell]float64

	// BestGuess is the uncertain cell with the lowest mine
	// probability, ties broken by lowest row then lowest column.
	BestGuess *board.Cell

	// Cancelled is set when the solve was interrupted and the result
	// holds whatever had been computed up to that point.
	Cancelled bool
}

// Certain reports whether the deduction phases produced any new
// certain cell.
func (r Result) Certain() bool {
	return len(r.Mines) > 0 || len(r.Safe) > 0
}

// Move is a single recommended action for callers driving a board one
// step at a time.
type Move struct {
	Cell board.Cell `json:"cell"`
	// Flag means plant a flag on the cell instead of opening it.
	Flag bool `json:"flag"`
	// Confidence is 1 for logically certain moves and 1-p for a guess
	// with mine probability p.
	Confidence float64 `json:"confidence"`
}

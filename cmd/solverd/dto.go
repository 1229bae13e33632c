package main

import (
	"github.com/sweepkit/sweepkit/internal/board"
	"github.com/sweepkit/sweepkit/internal/solver"
)

/*
boardDTO is the wire form of a board snapshot: cells row-major, using
the solver's own encoding (-2 unknown, -1 flagged, 0-8 revealed
counts).
*/
type boardDTO struct {
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	TotalMines int    `json:"total_mines"`
	Cells      []int8 `json:"cells"`
}

func (dto boardDTO) snapshot() (*board.Snapshot, error) {
	cells := make([]board.CellState, len(dto.Cells))
	for i, c := range dto.Cells {
		cells[i] = board.CellState(c)
	}
	return board.NewSnapshot(dto.Rows, dto.Cols, cells)
}

type solveResultDTO struct {
	Mines         []board.Cell       `json:"mines"`
	Safe          []board.Cell       `json:"safe"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	BestGuess     *board.Cell        `json:"best_guess,omitempty"`
	Cancelled     bool               `json:"cancelled,omitempty"`
}

func toResultDTO(res *solver.Result) solveResultDTO {
	dto := solveResultDTO{
		Mines:     res.Mines,
		Safe:      res.Safe,
		BestGuess: res.BestGuess,
		Cancelled: res.Cancelled,
	}
	if len(res.Probabilities) > 0 {
		dto.Probabilities = make(map[string]float64, len(res.Probabilities))
		for cell, p := range res.Probabilities {
			dto.Probabilities[cell.String()] = p
		}
	}
	return dto
}

type moveDTO struct {
	Move *solver.Move `json:"move"` // null when nothing is left to do
}

package board

import (
	"fmt"
	"strconv"
)

type CellState int8

const (
	Unknown CellState = -2
	Flagged CellState = -1
	/*
	 * Values 0 to 8 mean the cell is revealed and carries its
	 * adjacent mine count. Nothing else is visible to the solver:
	 * exploded or crossed-out mines are a presentation concern and
	 * must be folded into one of the states above before a snapshot
	 * is built.
	 */
)

// Revealed returns the state of an open cell with the given adjacent
// mine count.
func Revealed(count int) CellState {
	return CellState(count)
}

func (s CellState) IsRevealed() bool {
	return s >= 0
}

// Count returns the adjacent mine count of a revealed cell. It is only
// meaningful when IsRevealed reports true.
func (s CellState) Count() int {
	return int(s)
}

func (s CellState) Valid() bool {
	return s >= Unknown && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Cell is a 0-indexed board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

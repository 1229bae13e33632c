package board

import (
	"fmt"
	"strings"
)

type InvalidBoardError struct {
	message string
}

// [InvalidBoardError] implements [error]
func (e InvalidBoardError) Error() string {
	return e.message
}

// Snapshot is an immutable view of player knowledge about a board. The
// solver never mutates it; deductions are reported back to the caller.
type Snapshot struct {
	rows, cols int
	cells      []CellState
}

func NewSnapshot(rows, cols int, cells []CellState) (*Snapshot, error) {
	if rows <= 0 || cols <= 0 {
		return nil, InvalidBoardError{
			fmt.Sprintf("bad dimensions %dx%d", rows, cols),
		}
	}
	if len(cells) != rows*cols {
		return nil, InvalidBoardError{fmt.Sprintf(
			"got %d cells, want %d for a %dx%d board",
			len(cells), rows*cols, rows, cols,
		)}
	}
	for i, s := range cells {
		if !s.Valid() {
			return nil, InvalidBoardError{fmt.Sprintf(
				"bad cell state %d at %d:%d", s, i/cols, i%cols,
			)}
		}
	}
	snap := &Snapshot{rows: rows, cols: cols, cells: cells}
	return snap, nil
}

func (s Snapshot) Rows() int { return s.rows }

func (s Snapshot) Cols() int { return s.cols }

func (s Snapshot) Len() int { return len(s.cells) }

func (s Snapshot) At(row, col int) CellState {
	return s.cells[row*s.cols+col]
}

func (s Snapshot) StateAt(i int) CellState {
	return s.cells[i]
}

func (s Snapshot) Index(row, col int) int {
	return row*s.cols + col
}

func (s Snapshot) CellAt(i int) Cell {
	return Cell{Row: i / s.cols, Col: i % s.cols}
}

func (s Snapshot) String() string {
	var b strings.Builder
	for y := range s.rows {
		for x := range s.cols {
			fmt.Fprint(&b, s.cells[y*s.cols+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

/*
Parse builds a snapshot from a whitespace-separated grid, one row per
line: "." for unknown, "*" for flagged, "0"-"8" for revealed counts.
The inverse of [Snapshot.String], handy in tests and tooling.
*/
func Parse(text string) (*Snapshot, error) {
	var (
		cells []CellState
		cols  = -1
		rows  = 0
	)
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, InvalidBoardError{fmt.Sprintf(
				"row %d has %d cells, want %d", rows, len(fields), cols,
			)}
		}
		for _, f := range fields {
			switch f {
			case ".":
				cells = append(cells, Unknown)
			case "*":
				cells = append(cells, Flagged)
			default:
				if len(f) != 1 || f[0] < '0' || f[0] > '8' {
					return nil, InvalidBoardError{"bad cell token " + f}
				}
				cells = append(cells, CellState(f[0]-'0'))
			}
		}
		rows++
	}
	return NewSnapshot(rows, cols, cells)
}

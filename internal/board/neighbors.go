package board

import "fmt"

/*
NeighborIndex is a precomputed 8-connectivity adjacency table for one
board shape. Building it costs O(rows*cols) once; lookups are O(1).
It is immutable after construction and safe to share between
concurrent solves of boards with the same dimensions. An index built
for different dimensions than the snapshot it is used with is a caller
error and is rejected up front.
*/
type NeighborIndex struct {
	rows, cols int
	neighbors  [][]int
}

func NewNeighborIndex(rows, cols int) *NeighborIndex {
	ix := &NeighborIndex{
		rows:      rows,
		cols:      cols,
		neighbors: make([][]int, rows*cols),
	}
	for y := range rows {
		for x := range cols {
			i := y*cols + x
			// row-major relative order keeps lookups deterministic
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					yy, xx := y+dy, x+dx
					if xx < 0 || xx >= cols || yy < 0 || yy >= rows {
						continue
					}
					ix.neighbors[i] = append(ix.neighbors[i], yy*cols+xx)
				}
			}
		}
	}
	return ix
}

func (ix NeighborIndex) Rows() int { return ix.rows }

func (ix NeighborIndex) Cols() int { return ix.cols }

// Neighbors returns the in-bounds neighbors of cell i in row-major
// order. The returned slice is shared and must not be modified.
func (ix NeighborIndex) Neighbors(i int) []int {
	return ix.neighbors[i]
}

// Fits reports an error when snap has different dimensions than the
// ones this index was built for.
func (ix NeighborIndex) Fits(snap *Snapshot) error {
	if snap.Rows() != ix.rows || snap.Cols() != ix.cols {
		return InvalidBoardError{fmt.Sprintf(
			"neighbor index built for %dx%d used with %dx%d board",
			ix.rows, ix.cols, snap.Rows(), snap.Cols(),
		)}
	}
	return nil
}

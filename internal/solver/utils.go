package solver

import (
	"strings"

	"github.com/sweepkit/sweepkit/internal/board"
)

// containsAll reports whether sorted slice a contains every element of
// sorted slice b.
func containsAll(a, b []int) bool {
	i := 0
	for _, v := range b {
		for i < len(a) && a[i] < v {
			i++
		}
		if i == len(a) || a[i] != v {
			return false
		}
		i++
	}
	return true
}

// difference returns the elements of sorted slice a not present in
// sorted slice b.
func difference(a, b []int) (result []int) {
	i := 0
	for _, v := range a {
		for i < len(b) && b[i] < v {
			i++
		}
		if i < len(b) && b[i] == v {
			i++
			continue
		}
		result = append(result, v)
	}
	return
}

func equalCells(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cellList(snap *board.Snapshot, indexes []int) string {
	var parts []string
	for _, i := range indexes {
		parts = append(parts, snap.CellAt(i).String())
	}
	return strings.Join(parts, " ")
}

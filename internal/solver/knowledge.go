package solver

import (
	"github.com/gammazero/deque"

	"github.com/sweepkit/sweepkit/internal/board"
)

type cellMark int8

const (
	markNone cellMark = iota // whatever the snapshot says
	markSafe                 // deduced clear, count not known yet
	markMine                 // deduced mine
)

/*
knowledge is the scratch state of one solve call: the immutable input
snapshot plus every certainty deduced so far. Marks only ever move
from markNone to markSafe or markMine, which is what guarantees the
deduction fixpoint terminates. Discarded at the end of the call.
*/
type knowledge struct {
	snap  *board.Snapshot
	idx   *board.NeighborIndex
	marks []cellMark
	todo  deque.Deque[int] // revealed cells waiting for re-inspection

	mines []int // newly certain mine indexes, discovery order
	safe  []int // newly certain safe indexes, discovery order
}

func newKnowledge(snap *board.Snapshot, idx *board.NeighborIndex) *knowledge {
	k := &knowledge{
		snap:  snap,
		idx:   idx,
		marks: make([]cellMark, snap.Len()),
	}
	for i := range snap.Len() {
		if snap.StateAt(i).IsRevealed() {
			k.todo.PushBack(i)
		}
	}
	return k
}

func (k *knowledge) isMine(i int) bool {
	return k.snap.StateAt(i) == board.Flagged || k.marks[i] == markMine
}

func (k *knowledge) isUnknown(i int) bool {
	return k.snap.StateAt(i) == board.Unknown && k.marks[i] == markNone
}

// reinspect queues every revealed cell around i; a fresh certainty can
// satisfy a neighboring number and cascade.
func (k *knowledge) reinspect(i int) {
	for _, j := range k.idx.Neighbors(i) {
		if k.snap.StateAt(j).IsRevealed() {
			k.todo.PushBack(j)
		}
	}
}

func (k *knowledge) markCellMine(i int) error {
	switch k.marks[i] {
	case markMine:
		return nil
	case markSafe:
		return conflictf("cell %s deduced both safe and mined", k.snap.CellAt(i))
	}
	k.marks[i] = markMine
	k.mines = append(k.mines, i)
	k.reinspect(i)
	return nil
}

func (k *knowledge) markCellSafe(i int) error {
	switch k.marks[i] {
	case markSafe:
		return nil
	case markMine:
		return conflictf("cell %s deduced both safe and mined", k.snap.CellAt(i))
	}
	k.marks[i] = markSafe
	k.safe = append(k.safe, i)
	k.reinspect(i)
	return nil
}

// certainties returns how many cells have been resolved so far; phases
// compare it before and after a pass to detect progress.
func (k *knowledge) certainties() int {
	return len(k.mines) + len(k.safe)
}

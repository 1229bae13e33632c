package solver

/*
runBasic drains the inspection worklist, applying the two counting
rules to every queued numbered cell:

  - if the flagged and deduced mines around a cell already account for
    its count, the remaining unknown neighbors are all safe;
  - if the unknown neighbors are exactly as many as the mines still
    missing, they are all mines.

Marking a cell queues its revealed neighbors again, so deductions
cascade until a full fixpoint. Each mark shrinks the unknown set, which
bounds the total work.
*/
func (k *knowledge) runBasic() error {
	for k.todo.Len() != 0 {
		var (
			i  = k.todo.PopFront()
			st = k.snap.StateAt(i)
		)
		if !st.IsRevealed() {
			continue
		}
		var (
			unknown []int
			mines   int
		)
		for _, j := range k.idx.Neighbors(i) {
			switch {
			case k.isMine(j):
				mines++
			case k.isUnknown(j):
				unknown = append(unknown, j)
			}
		}
		n := st.Count()
		if mines > n || n > mines+len(unknown) {
			return conflictf(
				"cell %s reads %d but has %d mines and %d unknowns around it",
				k.snap.CellAt(i), n, mines, len(unknown),
			)
		}
		if len(unknown) == 0 {
			continue
		}
		switch {
		case mines == n:
			for _, j := range unknown {
				if err := k.markCellSafe(j); err != nil {
					return err
				}
			}
		case mines+len(unknown) == n:
			for _, j := range unknown {
				if err := k.markCellMine(j); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

/*
deduceAll iterates basic deduction and constraint subset analysis
together until neither produces a new certain cell. Subset findings are
fed back through the worklist, so constraints are rebuilt from scratch
on every round against the shrunken unknown set.
*/
func (k *knowledge) deduceAll() error {
	for {
		if err := k.runBasic(); err != nil {
			return err
		}
		cons, err := k.buildConstraints()
		if err != nil {
			return err
		}
		before := k.certainties()
		if err := k.subsetPass(cons); err != nil {
			return err
		}
		if k.certainties() == before {
			return nil
		}
	}
}

package solver

/*
A constraint states that exactly `mines` of `cells` hold mines. One is
built per numbered cell that still touches at least one unknown cell;
a number fully satisfied by flags contributes nothing (the basic rules
resolve it directly). Constraints are derived fresh per round and never
persist beyond the solve call.
*/
type constraint struct {
	cells []int // unknown cell indexes, ascending
	mines int
}

func (k *knowledge) buildConstraints() ([]constraint, error) {
	var cons []constraint
	for i := range k.snap.Len() {
		st := k.snap.StateAt(i)
		if !st.IsRevealed() {
			continue
		}
		var (
			cells []int
			mines int
		)
		// neighbor order is ascending, so cells comes out sorted
		for _, j := range k.idx.Neighbors(i) {
			switch {
			case k.isMine(j):
				mines++
			case k.isUnknown(j):
				cells = append(cells, j)
			}
		}
		if len(cells) == 0 {
			continue
		}
		left := st.Count() - mines
		if left < 0 || left > len(cells) {
			return nil, conflictf(
				"cell %s needs %d mines among %d cells",
				k.snap.CellAt(i), left, len(cells),
			)
		}
		if left == 0 {
			// fully satisfied by known mines; the basic rules resolve
			// its remaining neighbors directly
			continue
		}
		cons = append(cons, constraint{cells: cells, mines: left})
	}
	return cons, nil
}

/*
subsetPass compares every unordered pair of constraints. When one cell
set strictly contains the other, the difference must hold exactly the
difference of the two mine counts: zero resolves every difference cell
safe, a full house resolves them all mined. Outcomes are symmetric in
pair order, so a single pass over unordered pairs is enough.
*/
func (k *knowledge) subsetPass(cons []constraint) error {
	for a := 0; a < len(cons); a++ {
		for b := a + 1; b < len(cons); b++ {
			var small, big constraint
			switch {
			case len(cons[a].cells) < len(cons[b].cells):
				small, big = cons[a], cons[b]
			case len(cons[b].cells) < len(cons[a].cells):
				small, big = cons[b], cons[a]
			default:
				if cons[a].mines != cons[b].mines && equalCells(cons[a].cells, cons[b].cells) {
					return conflictf(
						"cells %s constrained to both %d and %d mines",
						cellList(k.snap, cons[a].cells), cons[a].mines, cons[b].mines,
					)
				}
				continue
			}
			if !containsAll(big.cells, small.cells) {
				continue
			}
			var (
				diff   = difference(big.cells, small.cells)
				dMines = big.mines - small.mines
			)
			switch {
			case dMines < 0 || dMines > len(diff):
				return conflictf(
					"cells %s must hold %d mines among %d cells",
					cellList(k.snap, diff), dMines, len(diff),
				)
			case dMines == 0:
				for _, i := range diff {
					if err := k.markCellSafe(i); err != nil {
						return err
					}
				}
			case dMines == len(diff):
				for _, i := range diff {
					if err := k.markCellMine(i); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

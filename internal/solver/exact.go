package solver

/*
tally accumulates valid mine assignments for one component: how many
assignments exist (or were sampled) and, per cell, in how many of them
the cell held a mine. Every valid assignment weighs the same, since
all of them satisfy the same hard constraints and nothing else
distinguishes them.
*/
type tally struct {
	counts    []int // per local cell: assignments with a mine there
	solutions int
	mineTotal int // mines summed over all counted assignments
}

func (t tally) probability(li int) float64 {
	return float64(t.counts[li]) / float64(t.solutions)
}

// expectedMines is the average mine count of the component across all
// counted assignments.
func (t tally) expectedMines() float64 {
	return float64(t.mineTotal) / float64(t.solutions)
}

/*
enumerate backtracks over every mine/safe assignment of the
component's cells and tallies the valid ones. Two prunes keep the
search honest: a rule may never exceed its mine count, and a rule may
never be left with fewer unassigned cells than mines it still needs.
Together they guarantee every completed branch satisfies every rule
exactly, so no leaf-level re-check is needed.
*/
func enumerate(comp component) tally {
	var (
		n         = len(comp.cells)
		touching  = comp.touchMap()
		ruleMines = make([]int, len(comp.rules)) // mines assigned so far
		ruleCells = make([]int, len(comp.rules)) // cells not assigned yet
		assigned  = make([]bool, n)
		t         = tally{counts: make([]int, n)}
	)
	for ri, r := range comp.rules {
		ruleCells[ri] = len(r.cells)
	}

	var walk func(li, mines int)
	walk = func(li, mines int) {
		if li == n {
			t.solutions++
			t.mineTotal += mines
			for j, mined := range assigned {
				if mined {
					t.counts[j]++
				}
			}
			return
		}

		// branch: cell li is a mine
		ok := true
		for _, ri := range touching[li] {
			if ruleMines[ri]+1 > comp.rules[ri].mines {
				ok = false
				break
			}
		}
		if ok {
			for _, ri := range touching[li] {
				ruleMines[ri]++
				ruleCells[ri]--
			}
			assigned[li] = true
			walk(li+1, mines+1)
			assigned[li] = false
			for _, ri := range touching[li] {
				ruleMines[ri]--
				ruleCells[ri]++
			}
		}

		// branch: cell li is safe
		ok = true
		for _, ri := range touching[li] {
			if comp.rules[ri].mines-ruleMines[ri] > ruleCells[ri]-1 {
				ok = false
				break
			}
		}
		if ok {
			for _, ri := range touching[li] {
				ruleCells[ri]--
			}
			walk(li+1, mines)
			for _, ri := range touching[li] {
				ruleCells[ri]++
			}
		}
	}
	walk(0, 0)
	return t
}

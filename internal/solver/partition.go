package solver

import "slices"

/*
A component is a maximal group of constraints transitively connected
through shared unknown cells, together with those cells. Components
share nothing, so each one can be enumerated or sampled independently
— this is what keeps worst-case work bounded instead of exponential in
the whole board's unknown count.
*/
type component struct {
	cells []int  // global cell indexes, ascending
	rules []rule // constraints rewritten against local cell indexes
}

type rule struct {
	cells []int // local indexes into component.cells
	mines int
}

func buildComponents(cons []constraint) []component {
	var (
		byCell  = make(map[int][]int) // cell -> constraint ids
		visited = make([]bool, len(cons))
		comps   []component
	)
	for ci, c := range cons {
		for _, cell := range c.cells {
			byCell[cell] = append(byCell[cell], ci)
		}
	}
	for start := range cons {
		if visited[start] {
			continue
		}
		// BFS over constraints that share at least one cell
		var (
			group = []int{start}
			queue = []int{start}
		)
		visited[start] = true
		for len(queue) > 0 {
			ci := queue[0]
			queue = queue[1:]
			for _, cell := range cons[ci].cells {
				for _, next := range byCell[cell] {
					if !visited[next] {
						visited[next] = true
						group = append(group, next)
						queue = append(queue, next)
					}
				}
			}
		}

		var comp component
		for _, ci := range group {
			comp.cells = append(comp.cells, cons[ci].cells...)
		}
		slices.Sort(comp.cells)
		comp.cells = slices.Compact(comp.cells)

		local := make(map[int]int, len(comp.cells))
		for li, cell := range comp.cells {
			local[cell] = li
		}
		slices.Sort(group) // keep rule order deterministic
		for _, ci := range group {
			r := rule{mines: cons[ci].mines}
			for _, cell := range cons[ci].cells {
				r.cells = append(r.cells, local[cell])
			}
			comp.rules = append(comp.rules, r)
		}
		comps = append(comps, comp)
	}
	// components come out ordered by their first constraint already,
	// but sort by lowest cell to be explicit about determinism
	slices.SortFunc(comps, func(a, b component) int {
		return a.cells[0] - b.cells[0]
	})
	return comps
}

// touchMap returns, for each local cell, the ids of the rules that
// mention it.
func (c component) touchMap() [][]int {
	touching := make([][]int, len(c.cells))
	for ri, r := range c.rules {
		for _, li := range r.cells {
			touching[li] = append(touching[li], ri)
		}
	}
	return touching
}

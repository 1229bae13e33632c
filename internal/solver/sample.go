package solver

import (
	"context"
	"math/rand/v2"
)

// sampleRejectFactor bounds the attempts per accepted sample, so a
// pathological component cannot stall the solve.
const sampleRejectFactor = 10

// cancelCheckEvery is how many attempts pass between context checks.
const cancelCheckEvery = 256

/*
sampleComponent estimates per-cell tallies for a component too large
to enumerate. Each attempt builds a candidate assignment cell by cell
in random order: cells forced by a rule (all remaining cells needed as
mines, or no mines left to place) are assigned accordingly, the rest
flip a coin biased by the tightest touching rule. Candidates violating
any rule are rejected; accepted ones weigh equally. The estimate
converges to the exact distribution as the budget grows, and the
attempt cap keeps the phase bounded either way.
*/
func sampleComponent(
	ctx context.Context, comp component, budget int, rng *rand.Rand,
) (t tally, cancelled bool) {
	var (
		n         = len(comp.cells)
		touching  = comp.touchMap()
		ruleMines = make([]int, len(comp.rules))
		ruleCells = make([]int, len(comp.rules))
		assigned  = make([]bool, n)
	)
	t = tally{counts: make([]int, n)}

	attempts := budget * sampleRejectFactor
	for attempt := 0; attempt < attempts && t.solutions < budget; attempt++ {
		if attempt%cancelCheckEvery == 0 && ctx.Err() != nil {
			return t, true
		}

		for ri, r := range comp.rules {
			ruleMines[ri] = 0
			ruleCells[ri] = len(r.cells)
		}

		valid := true
		mines := 0
		for _, li := range rng.Perm(n) {
			var (
				need       float64
				forcedMine bool
				forcedSafe bool
			)
			for _, ri := range touching[li] {
				left := comp.rules[ri].mines - ruleMines[ri]
				switch {
				case left <= 0:
					forcedSafe = true
				case left >= ruleCells[ri]:
					forcedMine = true
				}
				if f := float64(left) / float64(ruleCells[ri]); f > need {
					need = f
				}
			}
			if forcedMine && forcedSafe {
				valid = false
				break
			}
			mine := forcedMine || (!forcedSafe && rng.Float64() < need)
			assigned[li] = mine
			if mine {
				mines++
			}
			for _, ri := range touching[li] {
				ruleCells[ri]--
				if mine {
					ruleMines[ri]++
				}
			}
		}
		if valid {
			// rules spanning several forced choices can still end up
			// short; reject those candidates outright
			for ri, r := range comp.rules {
				if ruleMines[ri] != r.mines {
					valid = false
					break
				}
			}
		}
		if !valid {
			continue
		}

		t.solutions++
		t.mineTotal += mines
		for li, mined := range assigned {
			if mined {
				t.counts[li]++
			}
		}
	}
	return t, false
}

/*
densityEstimate is the last-resort estimate when not a single
candidate was accepted within the attempt budget: every cell gets the
average mine density of the rules that mention it. Sampling therefore
always produces an estimate; the probability phase has no failure mode
of its own.
*/
func densityEstimate(comp component) (probs []float64, expected float64) {
	touching := comp.touchMap()
	probs = make([]float64, len(comp.cells))
	for li := range comp.cells {
		density := 0.0
		for _, ri := range touching[li] {
			r := comp.rules[ri]
			density += float64(r.mines) / float64(len(r.cells))
		}
		if k := len(touching[li]); k > 0 {
			density /= float64(k)
		}
		probs[li] = min(density, 1)
		expected += probs[li]
	}
	return probs, expected
}

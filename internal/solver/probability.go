package solver

import (
	"context"
	"hash/maphash"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

type probOutcome struct {
	probs     map[int]float64 // cell index -> mine probability
	cancelled bool
}

type compOutcome struct {
	probs     []float64 // per local cell
	expected  float64
	cancelled bool
	skipped   bool
}

/*
probabilities runs the probability phase on whatever is still unknown
after the deduction fixpoint. Constrained cells get per-component
results — exact for components at or under the enumeration threshold,
sampled above it. Cells touching no constraint share one global
fallback probability derived from the total mine count. Components are
independent by construction, so they run in parallel on an errgroup;
each gets its own deterministically derived rng, which keeps results
reproducible regardless of scheduling.
*/
func (k *knowledge) probabilities(
	ctx context.Context, totalMines int, cfg Config,
) (probOutcome, error) {
	cons, err := k.buildConstraints()
	if err != nil {
		return probOutcome{}, err
	}

	var (
		comps    = buildComponents(cons)
		outcomes = make([]compOutcome, len(comps))
		seed     = cfg.Seed
	)
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for ci, comp := range comps {
		g.Go(func() error {
			if gCtx.Err() != nil {
				outcomes[ci].skipped = true
				return nil
			}
			if len(comp.cells) <= cfg.ExactThreshold {
				t := enumerate(comp)
				if t.solutions == 0 {
					return conflictf(
						"no valid mine placement for %d linked cells around %s",
						len(comp.cells), k.snap.CellAt(comp.cells[0]),
					)
				}
				outcomes[ci] = tallyOutcome(comp, t)
				return nil
			}
			rng := rand.New(rand.NewPCG(seed, uint64(ci)))
			t, cancelled := sampleComponent(gCtx, comp, cfg.SampleBudget, rng)
			if cancelled {
				outcomes[ci].cancelled = true
				return nil
			}
			if t.solutions == 0 {
				Log.WithField("cells", len(comp.cells)).
					Warn("no sample accepted, falling back to rule density")
				probs, expected := densityEstimate(comp)
				outcomes[ci] = compOutcome{probs: probs, expected: expected}
				return nil
			}
			outcomes[ci] = tallyOutcome(comp, t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return probOutcome{}, err
	}

	out := probOutcome{probs: make(map[int]float64)}
	expected := 0.0
	for ci, comp := range comps {
		o := outcomes[ci]
		if o.cancelled || o.skipped {
			out.cancelled = true
			continue
		}
		for li, cell := range comp.cells {
			out.probs[cell] = o.probs[li]
		}
		expected += o.expected
	}

	if out.cancelled {
		// partial result: the fallback below needs every component's
		// expected mine count, so leave unconstrained cells out
		return out, nil
	}

	k.fallbackProbabilities(&out, totalMines, expected)
	return out, nil
}

func tallyOutcome(comp component, t tally) compOutcome {
	o := compOutcome{
		probs:    make([]float64, len(comp.cells)),
		expected: t.expectedMines(),
	}
	for li := range comp.cells {
		o.probs[li] = t.probability(li)
	}
	return o
}

/*
fallbackProbabilities spreads the mines not yet accounted for evenly
over the unknown cells that no constraint touches. With no such cells
there is nothing to do; the quotient is clamped to [0,1] since flags
placed by the player are trusted, not verified.
*/
func (k *knowledge) fallbackProbabilities(
	out *probOutcome, totalMines int, expected float64,
) {
	var (
		unconstrained []int
		accounted     = 0
	)
	for i := range k.snap.Len() {
		if k.isMine(i) {
			accounted++
			continue
		}
		if !k.isUnknown(i) {
			continue
		}
		if _, ok := out.probs[i]; !ok {
			unconstrained = append(unconstrained, i)
		}
	}
	if len(unconstrained) == 0 {
		return
	}
	p := (float64(totalMines) - float64(accounted) - expected) /
		float64(len(unconstrained))
	p = min(max(p, 0), 1)
	for _, i := range unconstrained {
		out.probs[i] = p
	}
}

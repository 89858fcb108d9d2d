package tabu

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metatsp/matrix"
	"github.com/katalvlaran/metatsp/tsp"
)

// Run performs tabu search from a random initial solution.
//
// Each iteration enumerates every swap (i, j), i < j, of the current tour in
// row-major order, discards neighbours held in the tabu memory, and moves to
// the shortest remaining one (the first enumerated on ties), even when it is
// worse than the current tour. The chosen tour enters the memory and replaces
// the best solution only on strict improvement. There is no aspiration
// criterion: a tabu neighbour is never taken, however good. When every
// neighbour is tabu the search stops early with Result.Exhausted set.
//
// Every candidate is evaluated in full so tie-breaking is exact.
//
// Cancellation is checked between iterations; on ctx.Done the best result so
// far is returned with the wrapped context error.
//
// Complexity: O(N·n³) time, O(n² + M·n) space.
func Run(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	d, err := tsp.NewDistances(dist)
	if err != nil {
		return Result{}, fmt.Errorf("tabu: %w", err)
	}

	var (
		n   = d.N()
		rng = opts.Rand
	)
	if rng == nil {
		rng = tsp.NewRand(opts.Seed)
	}
	cur, err := tsp.RandomTour(n, rng)
	if err != nil {
		return Result{}, fmt.Errorf("tabu: %w", err)
	}

	var (
		mem      = NewMemory(opts.TabuSize)
		res      = Result{Tour: tsp.CopyTour(cur), Length: d.Length(cur)}
		it, i, j int
		cand     []int
		candLen  float64
		pick     []int
		pickLen  float64
	)
	for it = 0; it < opts.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("tabu: iteration %d: %w", it, err)
		}

		pick = nil
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				cand = tsp.SwapPositions(cur, i, j)
				if mem.Contains(cand) {
					continue
				}
				candLen = d.Length(cand)
				if pick == nil || candLen < pickLen {
					pick, pickLen = cand, candLen
				}
			}
		}
		if pick == nil {
			res.Exhausted = true
			break
		}

		mem.Add(pick)
		cur = pick
		res.Iterations = it + 1
		improved := pickLen < res.Length
		if improved {
			res.Tour, res.Length = tsp.CopyTour(pick), pickLen
		}

		if opts.Observer != nil {
			err = opts.Observer(Progress{
				Iteration:  it + 1,
				Tour:       tsp.CopyTour(pick),
				Length:     pickLen,
				BestLength: res.Length,
			})
			if err != nil {
				return res, fmt.Errorf("tabu: observer at iteration %d: %w", it+1, err)
			}
		} else if improved && opts.Logger != nil {
			opts.Logger.Debug().
				Int("iteration", it+1).
				Float64("best", res.Length).
				Int("tabu", mem.Len()).
				Msg("tabu: improved")
		}
	}

	return res, nil
}

package genetic

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metatsp/matrix"
	"github.com/katalvlaran/metatsp/tsp"
)

// Run evolves a population of tours over dist and returns the best tour of
// the final population.
//
// Stages:
//  1. Validate options, then the matrix (tsp.ValidateDistances).
//  2. Draw P random permutations; InitialLength is the shortest of them.
//  3. For each of G generations: evaluate, copy the elite (shortest, first on
//     ties) into the next population, record its length, then fill the
//     remaining P-1 slots with selected, recombined and mutated children.
//  4. Return the shortest tour of the final population.
//
// Cancellation is checked between generations; on ctx.Done the best result
// seen so far is returned together with the wrapped context error. An
// Observer error aborts the run the same way.
//
// Complexity: O(G·P·n) time, O(P·n) space (plus O(P log P) per generation for Rank).
func Run(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	d, err := tsp.NewDistances(dist)
	if err != nil {
		return Result{}, fmt.Errorf("genetic: %w", err)
	}

	var (
		n       = d.N()
		p       = opts.PopulationSize
		rng     = opts.Rand
		cross   = crossoverFunc(opts.Crossover)
		pop     = make([][]int, p)
		lengths = make([]float64, p)
		fits    = make([]float64, p)
		i, g    int
	)
	if rng == nil {
		rng = tsp.NewRand(opts.Seed)
	}
	for i = 0; i < p; i++ {
		if pop[i], err = tsp.RandomTour(n, rng); err != nil {
			return Result{}, fmt.Errorf("genetic: %w", err)
		}
	}

	res := Result{History: make([]float64, 0, opts.Generations)}
	if err = evaluate(d, pop, lengths, fits); err != nil {
		return Result{}, err
	}
	elite := shortest(lengths)
	res.InitialLength = lengths[elite]
	res.Tour, res.Length = tsp.CopyTour(pop[elite]), lengths[elite]

	for g = 0; g < opts.Generations; g++ {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("genetic: generation %d: %w", g, err)
		}
		if g > 0 {
			if err = evaluate(d, pop, lengths, fits); err != nil {
				return res, err
			}
			elite = shortest(lengths)
		}
		res.History = append(res.History, lengths[elite])

		next := make([][]int, p)
		next[0] = tsp.CopyTour(pop[elite])
		pick := selector(opts.Selection, fits)

		var p1, p2, child []int
		for i = 1; i < p; i++ {
			p1 = pop[pick(rng)]
			p2 = pop[pick(rng)]
			if rng.Float64() < opts.CrossoverRate {
				child = cross(p1, p2, rng)
			} else {
				child = tsp.CopyTour(p1)
			}
			if rng.Float64() < opts.MutationRate {
				child = SwapMutation(child, rng)
			}
			next[i] = child
		}
		pop = next
		res.Tour, res.Length = next[0], res.History[g]
		res.Generations = g + 1

		if err = report(opts, g, next[0], res.History); err != nil {
			return res, err
		}
	}

	if err = evaluate(d, pop, lengths, fits); err != nil {
		return res, err
	}
	elite = shortest(lengths)
	res.Tour, res.Length = tsp.CopyTour(pop[elite]), lengths[elite]

	return res, nil
}

// evaluate fills lengths and fits for every member. A zero-length tour has no
// finite fitness, which breaks proportional selection.
func evaluate(d *tsp.Distances, pop [][]int, lengths, fits []float64) error {
	var (
		i   int
		err error
	)
	for i = range pop {
		if lengths[i], fits[i], err = d.Fitness(pop[i]); err != nil {
			return fmt.Errorf("genetic: %w", err)
		}
	}

	return nil
}

// shortest returns the index of the minimum length, first on ties.
func shortest(lengths []float64) int {
	var best, i int
	for i = 1; i < len(lengths); i++ {
		if lengths[i] < lengths[best] {
			best = i
		}
	}

	return best
}

// report forwards progress to the observer, or logs it when there is none.
func report(opts Options, g int, elite []int, history []float64) error {
	var length = history[len(history)-1]
	if opts.Observer != nil {
		err := opts.Observer(Progress{
			Generation: g,
			Tour:       tsp.CopyTour(elite),
			Length:     length,
			History:    history[:len(history):len(history)],
		})
		if err != nil {
			return fmt.Errorf("genetic: observer at generation %d: %w", g, err)
		}

		return nil
	}
	if opts.Logger != nil {
		opts.Logger.Debug().
			Int("generation", g+1).
			Int("generations", opts.Generations).
			Float64("best", length).
			Msg("genetic: generation done")
	}

	return nil
}

package annealing

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/metatsp/matrix"
	"github.com/katalvlaran/metatsp/tsp"
)

// Run anneals a random starting tour over dist with a geometric schedule.
//
// Each temperature level performs K inner iterations. An iteration swaps two
// distinct positions of the current tour; the neighbour is accepted when it
// is shorter, or otherwise with probability exp(-Δ/T). Best is updated on
// strict improvement only. After K iterations T *= Alpha; the run stops once
// T ≤ Tf.
//
// Cancellation is checked between levels; on ctx.Done the best result so far
// is returned with the wrapped context error.
//
// Complexity: O(L·K·n) time where L = Options.Levels(), O(n + L·K) space.
func Run(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	d, err := tsp.NewDistances(dist)
	if err != nil {
		return Result{}, fmt.Errorf("annealing: %w", err)
	}

	var (
		n   = d.N()
		k   = opts.IterationsPerTemperature
		rng = opts.Rand
	)
	if rng == nil {
		rng = tsp.NewRand(opts.Seed)
	}
	cur, err := tsp.RandomTour(n, rng)
	if err != nil {
		return Result{}, fmt.Errorf("annealing: %w", err)
	}
	curLen := d.Length(cur)

	res := Result{
		Tour:             tsp.CopyTour(cur),
		Length:           curLen,
		InitialLength:    curLen,
		History:          make([]float64, 0, opts.Levels()*k),
		FinalTemperature: opts.InitialTemperature,
	}

	var (
		temp      = opts.InitialTemperature
		iter      int
		i, a, b   int
		next      []int
		nextLen   float64
		delta     float64
		accepted  int
		levelBest float64
	)
	for temp > opts.FinalTemperature {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("annealing: level %d: %w", res.Levels, err)
		}
		accepted = 0
		levelBest = res.Length
		for i = 0; i < k; i++ {
			a, b = tsp.DistinctPair(n, rng)
			next = tsp.SwapPositions(cur, a, b)
			nextLen = d.Length(next)
			delta = nextLen - curLen

			if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
				cur, curLen = next, nextLen
				accepted++
				if curLen < res.Length {
					res.Tour, res.Length = tsp.CopyTour(cur), curLen
				}
			}

			if opts.History == Current {
				res.History = append(res.History, curLen)
			} else {
				res.History = append(res.History, res.Length)
			}
			iter++

			if opts.Observer != nil {
				err = opts.Observer(Progress{
					Iteration:   iter,
					Level:       res.Levels,
					Temperature: temp,
					Tour:        tsp.CopyTour(cur),
					Length:      curLen,
					BestLength:  res.Length,
					History:     res.History[:len(res.History):len(res.History)],
				})
				if err != nil {
					return res, fmt.Errorf("annealing: observer at iteration %d: %w", iter, err)
				}
			}
		}

		if opts.Observer == nil && opts.Logger != nil {
			opts.Logger.Debug().
				Int("level", res.Levels).
				Float64("temperature", temp).
				Int("accepted", accepted).
				Float64("current", curLen).
				Float64("best", res.Length).
				Bool("improved", res.Length < levelBest).
				Msg("annealing: level done")
		}

		temp *= opts.Alpha
		res.Levels++
		res.FinalTemperature = temp
	}

	return res, nil
}

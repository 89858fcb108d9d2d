// Package compare runs several optimizer variants on one instance and ranks
// them by the shortest tour each found.
//
// Every (variant, repeat) pair is an independent run with its own RNG stream
// derived from Options.Seed, so a comparison is reproducible regardless of
// Options.Jobs or goroutine scheduling.
package compare

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metatsp/annealing"
	"github.com/katalvlaran/metatsp/genetic"
	"github.com/katalvlaran/metatsp/internal/config"
	"github.com/katalvlaran/metatsp/internal/metrics"
	"github.com/katalvlaran/metatsp/matrix"
	"github.com/katalvlaran/metatsp/tabu"
	"github.com/katalvlaran/metatsp/tsp"
)

// Algorithm names used in outcomes and metric labels.
const (
	AlgoGenetic   = "genetic"
	AlgoAnnealing = "annealing"
	AlgoTabu      = "tabu"
)

// Variant is one configured optimizer.
type Variant struct {
	Name      string // stable key, e.g. "ga/rank/uniform"
	Label     string // human-readable row title
	Algorithm string

	Genetic   genetic.Options
	Annealing annealing.Options
	Tabu      tabu.Options
}

// Outcome is the result of a single run.
type Outcome struct {
	Variant       string
	Repeat        int
	Seed          int64
	Tour          []int
	Length        float64
	InitialLength float64   // 0 for tabu, which does not report it
	History       []float64 // GA: per generation; SA: per iteration; tabu: best per iteration
	Duration      time.Duration
}

// Entry is one row of the ranking.
type Entry struct {
	Rank    int
	Variant Variant
	Best    Outcome   // shortest run of this variant
	Lengths []float64 // final length of every repeat, in repeat order
}

// Options controls a comparison.
//
// Repeats – runs per variant, ≥ 1.
// Jobs    – maximum concurrent runs, ≥ 1.
// Seed    – parent seed; each run uses tsp.DeriveSeed(Seed, stream).
// Metrics – optional recorder fed by every run.
// Logger  – optional; logs one line per finished run.
type Options struct {
	Repeats int
	Jobs    int
	Seed    int64
	Metrics *metrics.Recorder
	Logger  *zerolog.Logger
}

// Variants builds the standard line-up from a preset: the six GA
// selection × crossover combinations, simulated annealing and tabu search.
func Variants(p *config.Preset) ([]Variant, error) {
	base, err := p.GeneticOptions()
	if err != nil {
		return nil, err
	}
	sa, err := p.AnnealingOptions()
	if err != nil {
		return nil, err
	}
	ts, err := p.TabuOptions()
	if err != nil {
		return nil, err
	}

	var (
		sels = []genetic.Selection{genetic.Roulette, genetic.Rank}
		cxs  = []genetic.Crossover{genetic.OnePoint, genetic.TwoPoint, genetic.Uniform}
		out  = make([]Variant, 0, len(sels)*len(cxs)+2)
	)
	for _, s := range sels {
		for _, c := range cxs {
			o := base
			o.Selection, o.Crossover = s, c
			out = append(out, Variant{
				Name:      fmt.Sprintf("ga/%s/%s", s, c),
				Label:     fmt.Sprintf("GA %s + %s", s, c),
				Algorithm: AlgoGenetic,
				Genetic:   o,
			})
		}
	}
	out = append(out,
		Variant{Name: "sa", Label: "Simulated annealing", Algorithm: AlgoAnnealing, Annealing: sa},
		Variant{Name: "tabu", Label: "Tabu search", Algorithm: AlgoTabu, Tabu: ts},
	)

	return out, nil
}

// Run executes every variant opts.Repeats times and returns the ranking,
// shortest best length first. Ties keep the variant order.
//
// The first failing run cancels the rest and its error is returned.
func Run(ctx context.Context, dist matrix.Matrix, variants []Variant, opts Options) ([]Entry, error) {
	if opts.Repeats < 1 || opts.Jobs < 1 {
		return nil, fmt.Errorf("compare: repeats %d, jobs %d: %w", opts.Repeats, opts.Jobs, tsp.ErrInvalidConfig)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("compare: no variants: %w", tsp.ErrInvalidConfig)
	}
	// Validated once for all runs.
	if _, err := tsp.ValidateDistances(dist); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	outcomes := make([][]Outcome, len(variants))
	for i := range outcomes {
		outcomes[i] = make([]Outcome, opts.Repeats)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for vi := range variants {
		for r := 0; r < opts.Repeats; r++ {
			v := variants[vi]
			stream := uint64(vi*opts.Repeats + r)
			seed := tsp.DeriveSeed(opts.Seed, stream)
			g.Go(func() error {
				o, err := runOnce(gctx, dist, v, seed, opts.Metrics)
				o.Repeat = r
				if opts.Metrics != nil {
					opts.Metrics.ObserveRun(v.Algorithm, v.Name, o.Length, o.Duration, err)
				}
				if err != nil {
					return fmt.Errorf("compare: %s repeat %d: %w", v.Name, r, err)
				}
				if opts.Logger != nil {
					opts.Logger.Info().
						Str("variant", v.Name).
						Int("repeat", r).
						Int64("seed", seed).
						Float64("length", o.Length).
						Dur("duration", o.Duration).
						Msg("compare: run done")
				}
				outcomes[vi][r] = o

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rank(variants, outcomes), nil
}

// runOnce dispatches to the variant's optimizer with a fresh seed.
func runOnce(ctx context.Context, dist matrix.Matrix, v Variant, seed int64, rec *metrics.Recorder) (Outcome, error) {
	var (
		out   = Outcome{Variant: v.Name, Seed: seed}
		start = time.Now()
		err   error
	)

	switch v.Algorithm {
	case AlgoGenetic:
		o := v.Genetic
		o.Rand, o.Seed, o.Logger = nil, seed, nil
		if rec != nil {
			o.Observer = rec.Genetic(v.Name, o.Observer)
		}
		var res genetic.Result
		res, err = genetic.Run(ctx, dist, o)
		out.Tour, out.Length, out.InitialLength, out.History = res.Tour, res.Length, res.InitialLength, res.History

	case AlgoAnnealing:
		o := v.Annealing
		o.Rand, o.Seed, o.Logger = nil, seed, nil
		if rec != nil {
			o.Observer = rec.Annealing(v.Name, o.Observer)
		}
		var res annealing.Result
		res, err = annealing.Run(ctx, dist, o)
		out.Tour, out.Length, out.InitialLength, out.History = res.Tour, res.Length, res.InitialLength, res.History

	case AlgoTabu:
		o := v.Tabu
		o.Rand, o.Seed, o.Logger = nil, seed, nil
		// Tabu reports no history; sample it from the observer.
		hist := make([]float64, 0, o.Iterations)
		next := o.Observer
		o.Observer = func(p tabu.Progress) error {
			hist = append(hist, p.BestLength)
			if next != nil {
				return next(p)
			}
			return nil
		}
		if rec != nil {
			o.Observer = rec.Tabu(v.Name, o.Observer)
		}
		var res tabu.Result
		res, err = tabu.Run(ctx, dist, o)
		out.Tour, out.Length, out.History = res.Tour, res.Length, hist

	default:
		err = fmt.Errorf("unknown algorithm %q: %w", v.Algorithm, tsp.ErrInvalidConfig)
	}
	out.Duration = time.Since(start)

	return out, err
}

// rank keeps each variant's shortest repeat and sorts variants by it.
func rank(variants []Variant, outcomes [][]Outcome) []Entry {
	entries := make([]Entry, len(variants))
	for vi, runs := range outcomes {
		e := Entry{Variant: variants[vi], Best: runs[0], Lengths: make([]float64, len(runs))}
		for r, o := range runs {
			e.Lengths[r] = o.Length
			if o.Length < e.Best.Length {
				e.Best = o
			}
		}
		entries[vi] = e
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Best.Length < entries[b].Best.Length
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

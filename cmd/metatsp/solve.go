package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metatsp/annealing"
	"github.com/katalvlaran/metatsp/genetic"
	"github.com/katalvlaran/metatsp/instance"
	"github.com/katalvlaran/metatsp/internal/compare"
	"github.com/katalvlaran/metatsp/internal/config"
	"github.com/katalvlaran/metatsp/internal/report"
	"github.com/katalvlaran/metatsp/tabu"
	"github.com/katalvlaran/metatsp/tsp"
)

// solved is the algorithm-independent view of one run.
type solved struct {
	algorithm string
	variant   string
	tour      []int
	length    float64
	initial   float64
	history   []float64
}

func newSolveCmd(a *app, name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd.Context(), cmd.OutOrStdout(), name)
		},
	}

	f := cmd.Flags()
	f.Bool(keyPolish, false, "finish with 2-opt local search (symmetric instances only)")
	f.Int(keyProgress, 0, "log every N-th progress event; 0 disables")
	switch name {
	case "ga":
		f.String(keySelection, "", "selection override: roulette or rank")
		f.String(keyCrossover, "", "crossover override: one-point, two-point or uniform")
	case "sa":
		f.String(keyHistory, "", "history override: best or current")
	}

	return cmd
}

func (a *app) solve(ctx context.Context, w io.Writer, name string) error {
	p, err := a.loadPreset()
	if err != nil {
		return err
	}
	if s := a.v.GetString(keySelection); s != "" {
		p.Genetic.Selection = s
	}
	if c := a.v.GetString(keyCrossover); c != "" {
		p.Genetic.Crossover = c
	}
	if h := a.v.GetString(keyHistory); h != "" {
		p.Annealing.History = h
	}
	in, err := a.loadInstance()
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("algorithm", name).
		Str("instance", in.Name).
		Int("cities", in.N()).
		Int64("seed", p.Run.Seed).
		Msg("run start")

	start := time.Now()
	out, err := a.dispatch(ctx, name, p, in)
	elapsed := time.Since(start)
	if a.rec != nil {
		a.rec.ObserveRun(out.algorithm, out.variant, out.length, elapsed, err)
	}
	if err != nil {
		// A cancelled run still carries its best tour; report it before failing.
		if out.tour != nil {
			a.logger.Warn().Err(err).Float64("length", out.length).Msg("run interrupted")
		}
		return errors.Join(err, a.flushMetrics())
	}

	if a.v.GetBool(keyPolish) {
		if err = a.polish(in, &out); err != nil {
			return err
		}
	}

	a.logger.Info().
		Str("algorithm", out.algorithm).
		Str("variant", out.variant).
		Float64("length", out.length).
		Float64("initial_length", out.initial).
		Dur("duration", elapsed).
		Msg("run done")

	if err = report.WriteRun(w, report.Run{
		Algorithm:     out.variant,
		Instance:      in.Name,
		Route:         in.Route(out.tour),
		Length:        out.length,
		InitialLength: out.initial,
		Duration:      elapsed,
	}); err != nil {
		return err
	}

	if path := a.v.GetString(keyPlot); path != "" {
		series := []report.Series{{Name: out.variant, Values: out.history, Dashed: name != "ga"}}
		if err = report.SaveConvergence(path, fmt.Sprintf("%s on %s", out.variant, in.Name), series); err != nil {
			return err
		}
	}

	return a.flushMetrics()
}

// dispatch runs the optimizer selected by name.
func (a *app) dispatch(ctx context.Context, name string, p *config.Preset, in *instance.Instance) (solved, error) {
	switch name {
	case "ga":
		o, err := p.GeneticOptions()
		if err != nil {
			return solved{}, err
		}
		out := solved{
			algorithm: compare.AlgoGenetic,
			variant:   fmt.Sprintf("ga/%s/%s", o.Selection, o.Crossover),
		}
		o.Logger = &a.logger
		var done func()
		o.Observer, done = streamProgress(a, func(e *zerolog.Event, pr genetic.Progress) int {
			e.Int("generation", pr.Generation).Float64("best", pr.Length)
			return pr.Generation
		})
		defer done()
		if a.rec != nil {
			o.Observer = a.rec.Genetic(out.variant, o.Observer)
		}
		res, err := genetic.Run(ctx, in.Dist, o)
		out.tour, out.length, out.initial, out.history = res.Tour, res.Length, res.InitialLength, res.History

		return out, err

	case "sa":
		o, err := p.AnnealingOptions()
		if err != nil {
			return solved{}, err
		}
		out := solved{algorithm: compare.AlgoAnnealing, variant: "sa"}
		o.Logger = &a.logger
		var done func()
		o.Observer, done = streamProgress(a, func(e *zerolog.Event, pr annealing.Progress) int {
			e.Int("iteration", pr.Iteration).
				Float64("temperature", pr.Temperature).
				Float64("length", pr.Length).
				Float64("best", pr.BestLength)
			return pr.Iteration
		})
		defer done()
		if a.rec != nil {
			o.Observer = a.rec.Annealing(out.variant, o.Observer)
		}
		res, err := annealing.Run(ctx, in.Dist, o)
		out.tour, out.length, out.initial, out.history = res.Tour, res.Length, res.InitialLength, res.History

		return out, err

	case "tabu":
		o, err := p.TabuOptions()
		if err != nil {
			return solved{}, err
		}
		out := solved{algorithm: compare.AlgoTabu, variant: "tabu"}
		o.Logger = &a.logger
		var done func()
		o.Observer, done = streamProgress(a, func(e *zerolog.Event, pr tabu.Progress) int {
			e.Int("iteration", pr.Iteration).Float64("length", pr.Length).Float64("best", pr.BestLength)
			return pr.Iteration
		})
		defer done()
		// History only exists through the observer, so collect it when a
		// chart is wanted.
		if a.v.GetString(keyPlot) != "" {
			out.history = make([]float64, 0, o.Iterations)
			next := o.Observer
			o.Observer = func(pr tabu.Progress) error {
				out.history = append(out.history, pr.BestLength)
				if next != nil {
					return next(pr)
				}
				return nil
			}
		}
		if a.rec != nil {
			o.Observer = a.rec.Tabu(out.variant, o.Observer)
		}
		res, err := tabu.Run(ctx, in.Dist, o)
		out.tour, out.length = res.Tour, res.Length
		if res.Exhausted {
			a.logger.Info().Int("iterations", res.Iterations).Msg("tabu: neighbourhood exhausted")
		}

		return out, err
	}

	return solved{}, fmt.Errorf("unknown algorithm %q: %w", name, tsp.ErrInvalidConfig)
}

// progressBuffer bounds the events queued for the progress logger; the
// optimizer drops events rather than wait for it.
const progressBuffer = 64

// streamProgress returns an observer that hands every N-th event (N from
// --progress) to a logging goroutine through tsp.DropChannel, and a done func
// that drains it. With --progress unset the observer is nil and done is a no-op.
func streamProgress[P any](a *app, fields func(*zerolog.Event, P) int) (func(P) error, func()) {
	every := a.v.GetInt(keyProgress)
	if every <= 0 {
		return nil, func() {}
	}

	observe, events, stop := tsp.DropChannel[P](progressBuffer)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for p := range events {
			e := a.logger.Info()
			if step := fields(e, p); step%every != 0 {
				e.Discard()
				continue
			}
			e.Msg("progress")
		}
	}()

	return observe, func() {
		stop()
		<-finished
	}
}

// polish applies 2-opt to out in place; asymmetric instances are left as is.
func (a *app) polish(in *instance.Instance, out *solved) error {
	tour, length, err := tsp.TwoOpt(in.Dist, out.tour, 0)
	if errors.Is(err, tsp.ErrAsymmetry) {
		a.logger.Warn().Msg("2-opt skipped: asymmetric instance")
		return nil
	}
	if err != nil {
		return fmt.Errorf("2-opt: %w", err)
	}
	a.logger.Info().
		Float64("before", out.length).
		Float64("after", length).
		Msg("2-opt polish")
	out.tour, out.length = tour, length

	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metatsp/internal/compare"
	"github.com/katalvlaran/metatsp/internal/report"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank six GA variants, simulated annealing and tabu search on one instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPreset()
			if err != nil {
				return err
			}
			if r := a.v.GetInt(keyRepeats); r > 0 {
				p.Run.Repeats = r
			}
			if j := a.v.GetInt(keyJobs); j > 0 {
				p.Run.Jobs = j
			}
			in, err := a.loadInstance()
			if err != nil {
				return err
			}
			variants, err := compare.Variants(p)
			if err != nil {
				return err
			}

			a.logger.Info().
				Str("instance", in.Name).
				Int("cities", in.N()).
				Int("variants", len(variants)).
				Int("repeats", p.Run.Repeats).
				Int("jobs", p.Run.Jobs).
				Int64("seed", p.Run.Seed).
				Msg("compare start")

			entries, err := compare.Run(cmd.Context(), in.Dist, variants, compare.Options{
				Repeats: p.Run.Repeats,
				Jobs:    p.Run.Jobs,
				Seed:    p.Run.Seed,
				Metrics: a.rec,
				Logger:  &a.logger,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			title := fmt.Sprintf("TSP comparison: %s (%d cities, %d repeats)", in.Name, in.N(), p.Run.Repeats)
			if err = report.WriteRanking(w, title, entries); err != nil {
				return err
			}
			best := entries[0]
			fmt.Fprintf(w, "\nbest route (%s): %s\n", best.Variant.Label, strings.Join(in.Route(best.Best.Tour), " → "))

			if path := a.v.GetString(keyPlot); path != "" {
				if err = report.SaveConvergence(path, "TSP comparison: "+in.Name, report.SeriesFrom(entries)); err != nil {
					return err
				}
			}

			return a.flushMetrics()
		},
	}

	f := cmd.Flags()
	f.Int(keyRepeats, 0, "runs per variant; 0 keeps the preset value")
	f.Int(keyJobs, 0, "concurrent runs; 0 keeps the preset value")

	return cmd
}

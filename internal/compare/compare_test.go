package compare_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metatsp/instance"
	"github.com/katalvlaran/metatsp/internal/compare"
	"github.com/katalvlaran/metatsp/internal/config"
	"github.com/katalvlaran/metatsp/internal/metrics"
	"github.com/katalvlaran/metatsp/matrix"
	"github.com/katalvlaran/metatsp/tsp"
)

// quickPreset keeps every optimizer cheap enough for unit tests.
func quickPreset() *config.Preset {
	p := config.Default()
	p.Genetic.PopulationSize = 20
	p.Genetic.Generations = 30
	p.Annealing.InitialTemperature = 100
	p.Annealing.Alpha = 0.8
	p.Annealing.IterationsPerTemperature = 20
	p.Tabu.Iterations = 40

	return p
}

func TestVariants_Lineup(t *testing.T) {
	vs, err := compare.Variants(config.Default())
	require.NoError(t, err)
	require.Len(t, vs, 8)

	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	assert.Equal(t, []string{
		"ga/roulette/one-point", "ga/roulette/two-point", "ga/roulette/uniform",
		"ga/rank/one-point", "ga/rank/two-point", "ga/rank/uniform",
		"sa", "tabu",
	}, names)
	assert.Equal(t, compare.AlgoAnnealing, vs[6].Algorithm)
	assert.Equal(t, 200, vs[0].Genetic.Generations)
}

func TestVariants_InvalidPreset(t *testing.T) {
	p := config.Default()
	p.Genetic.Selection = "tournament"
	_, err := compare.Variants(p)
	assert.ErrorIs(t, err, tsp.ErrInvalidConfig)
}

func TestRun_RankedAndComplete(t *testing.T) {
	vs, err := compare.Variants(quickPreset())
	require.NoError(t, err)
	ref := instance.Reference10()

	entries, err := compare.Run(context.Background(), ref.Dist, vs, compare.Options{Repeats: 2, Jobs: 3, Seed: 5})
	require.NoError(t, err)
	require.Len(t, entries, len(vs))

	assert.True(t, sort.SliceIsSorted(entries, func(a, b int) bool {
		return entries[a].Best.Length < entries[b].Best.Length
	}))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		require.Len(t, e.Lengths, 2)
		for _, l := range e.Lengths {
			assert.GreaterOrEqual(t, l, e.Best.Length)
		}
		got, err := tsp.TourLength(ref.Dist, e.Best.Tour)
		require.NoError(t, err)
		assert.InDelta(t, e.Best.Length, got, 1e-9, e.Variant.Name)
		assert.NotEmpty(t, e.Best.History, e.Variant.Name)
	}
}

func TestRun_ReproducibleAcrossJobs(t *testing.T) {
	vs, err := compare.Variants(quickPreset())
	require.NoError(t, err)
	dist := instance.Reference10().Dist

	serial, err := compare.Run(context.Background(), dist, vs, compare.Options{Repeats: 2, Jobs: 1, Seed: 11})
	require.NoError(t, err)
	parallel, err := compare.Run(context.Background(), dist, vs, compare.Options{Repeats: 2, Jobs: 8, Seed: 11})
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Variant.Name, parallel[i].Variant.Name)
		assert.Equal(t, serial[i].Lengths, parallel[i].Lengths)
		assert.Equal(t, serial[i].Best.Tour, parallel[i].Best.Tour)
		assert.Equal(t, serial[i].Best.Seed, parallel[i].Best.Seed)
	}
}

func TestRun_FeedsMetrics(t *testing.T) {
	vs, err := compare.Variants(quickPreset())
	require.NoError(t, err)
	rec := metrics.New()

	_, err = compare.Run(context.Background(), instance.Reference10().Dist, vs[6:],
		compare.Options{Repeats: 1, Jobs: 2, Seed: 1, Metrics: rec})
	require.NoError(t, err)

	mfs, err := rec.Registry().Gather()
	require.NoError(t, err)
	found := map[string]bool{}
	for _, mf := range mfs {
		found[mf.GetName()] = true
	}
	assert.True(t, found["metatsp_runs_total"])
	assert.True(t, found["metatsp_steps_total"])
}

func TestRun_Errors(t *testing.T) {
	vs, err := compare.Variants(quickPreset())
	require.NoError(t, err)
	dist := instance.Reference10().Dist

	_, err = compare.Run(context.Background(), dist, vs, compare.Options{Repeats: 0, Jobs: 1})
	assert.ErrorIs(t, err, tsp.ErrInvalidConfig)

	_, err = compare.Run(context.Background(), dist, nil, compare.Options{Repeats: 1, Jobs: 1})
	assert.ErrorIs(t, err, tsp.ErrInvalidConfig)

	pair, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	_, err = compare.Run(context.Background(), pair, vs, compare.Options{Repeats: 1, Jobs: 1})
	assert.ErrorIs(t, err, tsp.ErrDegenerateInput)

	bad := vs[0]
	bad.Algorithm = "ant-colony"
	_, err = compare.Run(context.Background(), dist, []compare.Variant{bad}, compare.Options{Repeats: 1, Jobs: 1})
	assert.ErrorIs(t, err, tsp.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = compare.Run(ctx, dist, vs, compare.Options{Repeats: 1, Jobs: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

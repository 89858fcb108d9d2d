package genetic_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metatsp/genetic"
	"github.com/katalvlaran/metatsp/matrix"
	"github.com/katalvlaran/metatsp/tsp"
)

func TestRun_UnitSquareReachesOptimum(t *testing.T) {
	opts := genetic.DefaultOptions(genetic.WithSeed(seedDet))
	opts.PopulationSize = 50
	opts.Generations = 200

	res, err := genetic.Run(context.Background(), unitSquare(t), opts)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Length, epsTiny)
	require.NoError(t, tsp.ValidatePermutation(res.Tour, 4))
	assert.Len(t, res.History, 200)
	assert.Equal(t, 200, res.Generations)
}

// TestRun_AllStrategies covers every selection × crossover pair on the
// reference instance and checks the elitism invariants.
func TestRun_AllStrategies(t *testing.T) {
	m := reference10(t)
	for _, sel := range []genetic.Selection{genetic.Roulette, genetic.Rank} {
		for _, cx := range []genetic.Crossover{genetic.OnePoint, genetic.TwoPoint, genetic.Uniform} {
			t.Run(sel.String()+"/"+cx.String(), func(t *testing.T) {
				opts := genetic.DefaultOptions(genetic.WithSeed(seedDet), genetic.WithStrategy(sel, cx))
				opts.Generations = 60

				res, err := genetic.Run(context.Background(), m, opts)
				require.NoError(t, err)
				require.NoError(t, tsp.ValidatePermutation(res.Tour, 10))
				require.Len(t, res.History, opts.Generations)

				var g int
				for g = 1; g < len(res.History); g++ {
					require.LessOrEqual(t, res.History[g], res.History[g-1], "history must not increase at %d", g)
				}
				assert.LessOrEqual(t, res.History[0], res.InitialLength)
				assert.LessOrEqual(t, res.Length, res.History[len(res.History)-1])

				got, err := tsp.TourLength(m, res.Tour)
				require.NoError(t, err)
				assert.InDelta(t, got, res.Length, epsTiny)
			})
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	m := reference10(t)
	opts := genetic.DefaultOptions(genetic.WithSeed(7))
	opts.Generations = 40

	a, err := genetic.Run(context.Background(), m, opts)
	require.NoError(t, err)
	b, err := genetic.Run(context.Background(), m, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Tour, b.Tour)
	assert.Equal(t, a.History, b.History)
	assert.Equal(t, a.InitialLength, b.InitialLength)
}

func TestRun_InvalidConfig(t *testing.T) {
	cases := map[string]func(*genetic.Options){
		"population":     func(o *genetic.Options) { o.PopulationSize = 2 },
		"generations":    func(o *genetic.Options) { o.Generations = 0 },
		"crossover rate": func(o *genetic.Options) { o.CrossoverRate = 1.5 },
		"mutation rate":  func(o *genetic.Options) { o.MutationRate = -0.1 },
		"selection":      func(o *genetic.Options) { o.Selection = genetic.Selection(9) },
		"crossover":      func(o *genetic.Options) { o.Crossover = genetic.Crossover(9) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := genetic.DefaultOptions()
			mutate(&opts)
			_, err := genetic.Run(context.Background(), unitSquare(t), opts)
			mustErrIs(t, err, tsp.ErrInvalidConfig)
		})
	}
}

func TestRun_DegenerateInput(t *testing.T) {
	for _, m := range []*matrix.Dense{
		mustDense(t, [][]float64{{0}}),
		mustDense(t, [][]float64{{0, 1}, {1, 0}}),
		mustDense(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}),
	} {
		_, err := genetic.Run(context.Background(), m, genetic.DefaultOptions())
		mustErrIs(t, err, tsp.ErrDegenerateInput)
	}

	_, err := genetic.Run(context.Background(), mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), genetic.DefaultOptions())
	mustErrIs(t, err, tsp.ErrNonSquare)
}

func TestRun_ObserverPerGeneration(t *testing.T) {
	var seen []genetic.Progress
	opts := genetic.DefaultOptions(genetic.WithSeed(seedDet), genetic.WithObserver(func(p genetic.Progress) error {
		seen = append(seen, p)
		return nil
	}))
	opts.Generations = 15

	res, err := genetic.Run(context.Background(), reference10(t), opts)
	require.NoError(t, err)
	require.Len(t, seen, 15)

	var i int
	for i = range seen {
		assert.Equal(t, i, seen[i].Generation)
		assert.Len(t, seen[i].History, i+1)
		assert.Equal(t, res.History[i], seen[i].Length)
		require.NoError(t, tsp.ValidatePermutation(seen[i].Tour, 10))
	}
}

func TestRun_ObserverErrorAborts(t *testing.T) {
	stop := errors.New("stop here")
	calls := 0
	opts := genetic.DefaultOptions(genetic.WithObserver(func(p genetic.Progress) error {
		calls++
		if p.Generation == 2 {
			return stop
		}
		return nil
	}))

	res, err := genetic.Run(context.Background(), reference10(t), opts)
	mustErrIs(t, err, stop)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, res.Generations)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := genetic.Run(ctx, reference10(t), genetic.DefaultOptions())
	mustErrIs(t, err, context.Canceled)
	assert.Zero(t, res.Generations)
	require.NoError(t, tsp.ValidatePermutation(res.Tour, 10), "best-so-far is still a valid tour")
}

func TestRun_LogsOnlyWithoutObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	opts := genetic.DefaultOptions(genetic.WithLogger(&logger))
	opts.Generations = 3
	_, err := genetic.Run(context.Background(), unitSquare(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), `"generation":1`)

	buf.Reset()
	opts.Observer = func(genetic.Progress) error { return nil }
	_, err = genetic.Run(context.Background(), unitSquare(t), opts)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}

func TestRun_AsymmetricInstance(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 9, 9},
		{9, 0, 1, 9},
		{9, 9, 0, 1},
		{1, 9, 9, 0},
	})
	res, err := genetic.Run(context.Background(), m, genetic.DefaultOptions(genetic.WithSeed(seedDet)))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Length, epsTiny)
}

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metatsp/internal/compare"
	"github.com/katalvlaran/metatsp/tsp"
)

func TestSummarize(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{7}, Summary{Runs: 1, Min: 7, Max: 7, Mean: 7}},
		{"pair", []float64{2, 4}, Summary{Runs: 2, Min: 2, Max: 4, Mean: 3, StdDev: 1.4142135623730951}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.in)
			assert.Equal(t, tc.want.Runs, got.Runs)
			assert.Equal(t, tc.want.Min, got.Min)
			assert.Equal(t, tc.want.Max, got.Max)
			assert.InDelta(t, tc.want.Mean, got.Mean, 1e-12)
			assert.InDelta(t, tc.want.StdDev, got.StdDev, 1e-12)
		})
	}
}

func sampleEntries() []compare.Entry {
	return []compare.Entry{
		{
			Rank:    1,
			Variant: compare.Variant{Name: "ga/rank/uniform", Label: "GA rank + uniform", Algorithm: compare.AlgoGenetic},
			Best:    compare.Outcome{Length: 120, InitialLength: 300, History: []float64{200, 150, 120, 120}},
			Lengths: []float64{120, 130},
		},
		{
			Rank:    2,
			Variant: compare.Variant{Name: "tabu", Label: "Tabu search", Algorithm: compare.AlgoTabu},
			Best:    compare.Outcome{Length: 125, History: []float64{250, 200, 180, 160, 150, 140, 130, 125}},
			Lengths: []float64{125},
		},
	}
}

func TestWriteRanking(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, "Comparison", sampleEntries()))
	out := buf.String()

	assert.Contains(t, out, "Comparison")
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "GA rank + uniform")
	assert.Contains(t, out, "125.00")
	assert.Contains(t, out, "300.00")
	assert.Less(t, strings.Index(out, "GA rank + uniform"), strings.Index(out, "Tabu search"))
}

func TestWriteRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRun(&buf, Run{
		Algorithm:     "annealing",
		Instance:      "square",
		Route:         []string{"A", "B", "C", "D"},
		Length:        4,
		InitialLength: 4.83,
		Duration:      3 * time.Millisecond,
	}))
	out := buf.String()
	assert.Contains(t, out, "annealing on square")
	assert.Contains(t, out, "A → B → C → D")
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "initial: 4.83")
}

func TestSpanAndPoints(t *testing.T) {
	series := SeriesFrom(sampleEntries())
	require.Len(t, series, 2)
	assert.False(t, series[0].Dashed)
	assert.True(t, series[1].Dashed)
	assert.Equal(t, 4, Span(series))
	assert.Equal(t, 8, Span(series[1:]))

	pts := points(series[1].Values, 4)
	require.Len(t, pts, 8)
	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, 3.5, pts[7].X)
	assert.Equal(t, 125.0, pts[7].Y)
}

func TestSaveConvergence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.png")
	require.NoError(t, SaveConvergence(path, "TSP", SeriesFrom(sampleEntries())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	err = SaveConvergence(path, "TSP", nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidConfig)
}

package annealing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metatsp/tsp"
)

// HistoryPolicy selects the value recorded after each inner iteration.
type HistoryPolicy int

const (
	// BestSoFar records the best length seen so far; the curve never increases.
	BestSoFar HistoryPolicy = iota
	// Current records the length of the current (possibly worse) tour.
	Current
)

// String implements fmt.Stringer.
func (h HistoryPolicy) String() string {
	switch h {
	case BestSoFar:
		return "best"
	case Current:
		return "current"
	default:
		return fmt.Sprintf("history(%d)", int(h))
	}
}

// Progress is reported to the Observer after every inner iteration.
type Progress struct {
	Iteration   int       // 1-based count of inner iterations so far
	Level       int       // 0-based temperature level
	Temperature float64   // temperature of the current level
	Tour        []int     // copy of the current tour
	Length      float64   // current length
	BestLength  float64   // best length so far
	History     []float64 // read-only view, valid during the call
}

// Observer receives per-iteration progress. A non-nil error aborts the run.
type Observer func(Progress) error

// Options configures an annealing run.
//
// InitialTemperature       – T0 > 0.
// FinalTemperature         – Tf > 0 and Tf < T0; the run stops once T ≤ Tf.
// Alpha                    – geometric cooling factor in (0,1).
// IterationsPerTemperature – K ≥ 1 inner iterations per level.
// History                  – BestSoFar (default) or Current.
type Options struct {
	InitialTemperature       float64
	FinalTemperature         float64
	Alpha                    float64
	IterationsPerTemperature int
	History                  HistoryPolicy

	Rand     *rand.Rand
	Seed     int64
	Observer Observer
	Logger   *zerolog.Logger
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithSeed sets a deterministic seed (ignored when Rand is set).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSchedule sets the cooling schedule.
func WithSchedule(t0, tf, alpha float64, k int) Option {
	return func(o *Options) {
		o.InitialTemperature = t0
		o.FinalTemperature = tf
		o.Alpha = alpha
		o.IterationsPerTemperature = k
	}
}

// WithHistory selects the history policy.
func WithHistory(h HistoryPolicy) Option {
	return func(o *Options) { o.History = h }
}

// WithObserver installs a per-iteration observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithLogger routes per-level debug lines to l when no observer is set.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns T0=1000, Tf=1, Alpha=0.95, K=100, History=BestSoFar,
// with opts applied on top.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		InitialTemperature:       1000,
		FinalTemperature:         1,
		Alpha:                    0.95,
		IterationsPerTemperature: 100,
		History:                  BestSoFar,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Validate reports the first out-of-range field as ErrInvalidConfig.
func (o Options) Validate() error {
	switch {
	case !(o.FinalTemperature > 0) || math.IsInf(o.FinalTemperature, 0):
		return fmt.Errorf("annealing: final temperature %g must be positive: %w", o.FinalTemperature, tsp.ErrInvalidConfig)
	case !(o.InitialTemperature > o.FinalTemperature) || math.IsInf(o.InitialTemperature, 0):
		return fmt.Errorf("annealing: initial temperature %g must exceed final %g: %w",
			o.InitialTemperature, o.FinalTemperature, tsp.ErrInvalidConfig)
	case !(o.Alpha > 0 && o.Alpha < 1):
		return fmt.Errorf("annealing: alpha %g outside (0,1): %w", o.Alpha, tsp.ErrInvalidConfig)
	case o.IterationsPerTemperature < 1:
		return fmt.Errorf("annealing: iterations per temperature %d < 1: %w", o.IterationsPerTemperature, tsp.ErrInvalidConfig)
	case o.History != BestSoFar && o.History != Current:
		return fmt.Errorf("annealing: %v: %w", o.History, tsp.ErrInvalidConfig)
	}

	return nil
}

// Result is the outcome of an annealing run.
type Result struct {
	Tour             []int     // best tour seen
	Length           float64   // its length
	InitialLength    float64   // length of the random starting tour
	History          []float64 // one entry per inner iteration, len == Levels*K
	Levels           int       // temperature levels completed
	FinalTemperature float64   // temperature at exit, ≤ Tf on normal completion
}

// Levels returns the number of temperature levels the schedule runs:
// the smallest L with T0·alpha^L ≤ Tf, counted by the same multiplication
// the optimizer performs.
func (o Options) Levels() int {
	var (
		t = o.InitialTemperature
		l int
	)
	for t > o.FinalTemperature {
		t *= o.Alpha
		l++
	}

	return l
}

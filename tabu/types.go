package tabu

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metatsp/tsp"
)

// Progress is reported to the Observer after every iteration.
type Progress struct {
	Iteration  int     // 1-based
	Tour       []int   // copy of the tour moved to
	Length     float64 // its length
	BestLength float64 // best length so far
}

// Observer receives per-iteration progress. A non-nil error aborts the run.
type Observer func(Progress) error

// Options configures a tabu run.
//
// Iterations – N ≥ 1, iteration budget.
// TabuSize   – M ≥ 1, number of recent solutions that may not be revisited.
type Options struct {
	Iterations int
	TabuSize   int

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

// WithBudget sets the iteration budget and memory size.
func WithBudget(iterations, tabuSize int) Option {
	return func(o *Options) {
		o.Iterations = iterations
		o.TabuSize = tabuSize
	}
}

// WithObserver installs a per-iteration observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithLogger logs improvements to l when no observer is set.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns Iterations=1000, TabuSize=10 with opts applied.
func DefaultOptions(opts ...Option) Options {
	o := Options{Iterations: 1000, TabuSize: 10}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Validate reports the first out-of-range field as ErrInvalidConfig.
func (o Options) Validate() error {
	if o.Iterations < 1 {
		return fmt.Errorf("tabu: iterations %d < 1: %w", o.Iterations, tsp.ErrInvalidConfig)
	}
	if o.TabuSize < 1 {
		return fmt.Errorf("tabu: tabu size %d < 1: %w", o.TabuSize, tsp.ErrInvalidConfig)
	}

	return nil
}

// Result is the outcome of a tabu run.
//
// Unlike the genetic and annealing results it carries neither the initial
// length nor a History: the search keeps only its best solution. Callers that
// want a convergence curve sample it through the Observer.
type Result struct {
	Tour       []int   // best tour seen, including the initial one
	Length     float64 // its length
	Iterations int     // iterations completed
	Exhausted  bool    // stopped early because every neighbour was tabu
}

package genetic

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metatsp/tsp"
)

// Selection chooses how parents are drawn from the current population.
type Selection int

const (
	// Roulette draws proportionally to fitness 1/length.
	Roulette Selection = iota
	// Rank draws proportionally to the ascending fitness rank 1..P.
	Rank
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case Roulette:
		return "roulette"
	case Rank:
		return "rank"
	default:
		return fmt.Sprintf("selection(%d)", int(s))
	}
}

// ParseSelection maps "roulette" or "rank" (case-insensitive) to a Selection.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roulette":
		return Roulette, nil
	case "rank":
		return Rank, nil
	}

	return 0, fmt.Errorf("genetic: unknown selection %q: %w", s, tsp.ErrInvalidConfig)
}

// Crossover chooses the recombination operator.
type Crossover int

const (
	// OnePoint keeps a prefix of the first parent.
	OnePoint Crossover = iota
	// TwoPoint keeps a segment of the first parent at its original position.
	TwoPoint
	// Uniform mixes positions by a random mask and repairs duplicates.
	Uniform
)

// String implements fmt.Stringer.
func (c Crossover) String() string {
	switch c {
	case OnePoint:
		return "one-point"
	case TwoPoint:
		return "two-point"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("crossover(%d)", int(c))
	}
}

// ParseCrossover accepts "one-point"/"1point", "two-point"/"2points" and "uniform".
func ParseCrossover(s string) (Crossover, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-point", "onepoint", "1point":
		return OnePoint, nil
	case "two-point", "twopoint", "2points", "2point":
		return TwoPoint, nil
	case "uniform":
		return Uniform, nil
	}

	return 0, fmt.Errorf("genetic: unknown crossover %q: %w", s, tsp.ErrInvalidConfig)
}

// Progress is reported to the Observer once per generation.
// Tour is an independent copy; History is a read-only view valid during the call.
type Progress struct {
	Generation int       // 0-based generation index
	Tour       []int     // elite of the generation
	Length     float64   // elite length
	History    []float64 // elite lengths so far, len == Generation+1
}

// Observer receives per-generation progress. A non-nil error aborts the run.
type Observer func(Progress) error

// Options configures a genetic run.
//
// PopulationSize – P, number of tours per generation (≥ 3).
// Generations    – G, number of generations (≥ 1).
// CrossoverRate  – pc ∈ [0,1], probability a child is recombined.
// MutationRate   – pm ∈ [0,1], probability a child receives one swap.
// Selection      – Roulette or Rank.
// Crossover      – OnePoint, TwoPoint or Uniform.
// Rand           – RNG for the run; nil ⇒ tsp.NewRand(Seed).
// Observer       – optional progress callback; disables logging when set.
// Logger         – optional; nil is silent.
type Options struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	Selection      Selection
	Crossover      Crossover

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

// WithObserver installs a per-generation observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithLogger routes per-generation debug lines to l when no observer is set.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStrategy selects the selection and crossover operators.
func WithStrategy(s Selection, c Crossover) Option {
	return func(o *Options) {
		o.Selection = s
		o.Crossover = c
	}
}

// DefaultOptions returns the classic configuration:
//
//   - PopulationSize: 50
//   - Generations:    200
//   - CrossoverRate:  0.8
//   - MutationRate:   0.05
//   - Selection:      Roulette
//   - Crossover:      TwoPoint
//
// Functional options are applied on top of the defaults.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		PopulationSize: 50,
		Generations:    200,
		CrossoverRate:  0.8,
		MutationRate:   0.05,
		Selection:      Roulette,
		Crossover:      TwoPoint,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Validate reports the first out-of-range field as ErrInvalidConfig.
func (o Options) Validate() error {
	switch {
	case o.PopulationSize < 3:
		return fmt.Errorf("genetic: population size %d < 3: %w", o.PopulationSize, tsp.ErrInvalidConfig)
	case o.Generations < 1:
		return fmt.Errorf("genetic: generations %d < 1: %w", o.Generations, tsp.ErrInvalidConfig)
	case !(o.CrossoverRate >= 0 && o.CrossoverRate <= 1):
		return fmt.Errorf("genetic: crossover rate %g outside [0,1]: %w", o.CrossoverRate, tsp.ErrInvalidConfig)
	case !(o.MutationRate >= 0 && o.MutationRate <= 1):
		return fmt.Errorf("genetic: mutation rate %g outside [0,1]: %w", o.MutationRate, tsp.ErrInvalidConfig)
	case o.Selection != Roulette && o.Selection != Rank:
		return fmt.Errorf("genetic: %v: %w", o.Selection, tsp.ErrInvalidConfig)
	case o.Crossover != OnePoint && o.Crossover != TwoPoint && o.Crossover != Uniform:
		return fmt.Errorf("genetic: %v: %w", o.Crossover, tsp.ErrInvalidConfig)
	}

	return nil
}

// Result is the outcome of a genetic run.
type Result struct {
	Tour          []int     // best tour of the final population
	Length        float64   // its length
	InitialLength float64   // best length of the random initial population
	History       []float64 // elite length per generation, len == Generations
	Generations   int       // generations completed
}

// Package config loads run presets from INI files.
//
// A preset holds one section per optimizer plus a [run] section for the
// harness. Keys are snake_case; any key left out keeps its default, which is
// the optimizer's DefaultOptions value:
//
//	[run]
//	seed    = 7
//	repeats = 5
//	jobs    = 4
//
//	[genetic]
//	population_size = 50
//	generations     = 200
//	crossover_rate  = 0.8
//	mutation_rate   = 0.05
//	selection       = roulette
//	crossover       = two-point
//
//	[annealing]
//	initial_temperature        = 1000
//	final_temperature          = 1
//	alpha                      = 0.95
//	iterations_per_temperature = 100
//	history                    = best
//
//	[tabu]
//	iterations = 1000
//	tabu_size  = 10
package config

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/katalvlaran/metatsp/annealing"
	"github.com/katalvlaran/metatsp/genetic"
	"github.com/katalvlaran/metatsp/tabu"
	"github.com/katalvlaran/metatsp/tsp"
)

// RunSection holds harness-level settings.
type RunSection struct {
	Seed    int64 `ini:"seed"`
	Repeats int   `ini:"repeats"`
	Jobs    int   `ini:"jobs"`
}

// GeneticSection mirrors genetic.Options.
type GeneticSection struct {
	PopulationSize int     `ini:"population_size"`
	Generations    int     `ini:"generations"`
	CrossoverRate  float64 `ini:"crossover_rate"`
	MutationRate   float64 `ini:"mutation_rate"`
	Selection      string  `ini:"selection"`
	Crossover      string  `ini:"crossover"`
}

// AnnealingSection mirrors annealing.Options.
type AnnealingSection struct {
	InitialTemperature       float64 `ini:"initial_temperature"`
	FinalTemperature         float64 `ini:"final_temperature"`
	Alpha                    float64 `ini:"alpha"`
	IterationsPerTemperature int     `ini:"iterations_per_temperature"`
	History                  string  `ini:"history"`
}

// TabuSection mirrors tabu.Options.
type TabuSection struct {
	Iterations int `ini:"iterations"`
	TabuSize   int `ini:"tabu_size"`
}

// Preset is a complete run configuration.
type Preset struct {
	Run       RunSection
	Genetic   GeneticSection
	Annealing AnnealingSection
	Tabu      TabuSection
}

// Default returns the preset equivalent to every optimizer's DefaultOptions.
func Default() *Preset {
	g := genetic.DefaultOptions()
	a := annealing.DefaultOptions()
	t := tabu.DefaultOptions()

	return &Preset{
		Run: RunSection{Seed: 1, Repeats: 1, Jobs: 1},
		Genetic: GeneticSection{
			PopulationSize: g.PopulationSize,
			Generations:    g.Generations,
			CrossoverRate:  g.CrossoverRate,
			MutationRate:   g.MutationRate,
			Selection:      g.Selection.String(),
			Crossover:      g.Crossover.String(),
		},
		Annealing: AnnealingSection{
			InitialTemperature:       a.InitialTemperature,
			FinalTemperature:         a.FinalTemperature,
			Alpha:                    a.Alpha,
			IterationsPerTemperature: a.IterationsPerTemperature,
			History:                  a.History.String(),
		},
		Tabu: TabuSection{Iterations: t.Iterations, TabuSize: t.TabuSize},
	}
}

// Load reads the INI file at path on top of Default().
func Load(path string) (*Preset, error) {
	return load(path)
}

// Parse reads INI data on top of Default().
func Parse(data []byte) (*Preset, error) {
	return load(data)
}

func load(source interface{}) (*Preset, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
		Insensitive:                 true,
	}, source)
	if err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}

	p := Default()
	sections := []struct {
		name string
		dst  interface{}
	}{
		{"run", &p.Run},
		{"genetic", &p.Genetic},
		{"annealing", &p.Annealing},
		{"tabu", &p.Tabu},
	}
	for _, s := range sections {
		if err = f.Section(s.name).StrictMapTo(s.dst); err != nil {
			return nil, fmt.Errorf("config: map [%s]: %w", s.name, err)
		}
	}

	p.Genetic.Selection = cleanIniString(p.Genetic.Selection)
	p.Genetic.Crossover = cleanIniString(p.Genetic.Crossover)
	p.Annealing.History = cleanIniString(p.Annealing.History)
	if p.Run.Repeats < 1 {
		return nil, fmt.Errorf("config: repeats %d < 1: %w", p.Run.Repeats, tsp.ErrInvalidConfig)
	}
	if p.Run.Jobs < 1 {
		return nil, fmt.Errorf("config: jobs %d < 1: %w", p.Run.Jobs, tsp.ErrInvalidConfig)
	}

	return p, nil
}

// cleanIniString strips surrounding whitespace and quotes.
func cleanIniString(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

// WriteTo renders the preset as an INI document.
func (p *Preset) WriteTo(w io.Writer) (int64, error) {
	f := ini.Empty()
	sections := []struct {
		name string
		src  interface{}
	}{
		{"run", &p.Run},
		{"genetic", &p.Genetic},
		{"annealing", &p.Annealing},
		{"tabu", &p.Tabu},
	}
	for _, s := range sections {
		if err := f.Section(s.name).ReflectFrom(s.src); err != nil {
			return 0, fmt.Errorf("config: reflect [%s]: %w", s.name, err)
		}
	}

	return f.WriteTo(w)
}

// GeneticOptions converts the [genetic] section; the seed comes from [run].
func (p *Preset) GeneticOptions() (genetic.Options, error) {
	sel, err := genetic.ParseSelection(p.Genetic.Selection)
	if err != nil {
		return genetic.Options{}, fmt.Errorf("config: [genetic]: %w", err)
	}
	cx, err := genetic.ParseCrossover(p.Genetic.Crossover)
	if err != nil {
		return genetic.Options{}, fmt.Errorf("config: [genetic]: %w", err)
	}
	o := genetic.DefaultOptions(genetic.WithSeed(p.Run.Seed), genetic.WithStrategy(sel, cx))
	o.PopulationSize = p.Genetic.PopulationSize
	o.Generations = p.Genetic.Generations
	o.CrossoverRate = p.Genetic.CrossoverRate
	o.MutationRate = p.Genetic.MutationRate

	if err = o.Validate(); err != nil {
		return genetic.Options{}, fmt.Errorf("config: [genetic]: %w", err)
	}

	return o, nil
}

// AnnealingOptions converts the [annealing] section.
func (p *Preset) AnnealingOptions() (annealing.Options, error) {
	var h annealing.HistoryPolicy
	switch strings.ToLower(p.Annealing.History) {
	case "", "best":
		h = annealing.BestSoFar
	case "current":
		h = annealing.Current
	default:
		return annealing.Options{}, fmt.Errorf("config: [annealing]: unknown history %q: %w",
			p.Annealing.History, tsp.ErrInvalidConfig)
	}
	o := annealing.DefaultOptions(
		annealing.WithSeed(p.Run.Seed),
		annealing.WithHistory(h),
		annealing.WithSchedule(p.Annealing.InitialTemperature, p.Annealing.FinalTemperature,
			p.Annealing.Alpha, p.Annealing.IterationsPerTemperature),
	)
	if err := o.Validate(); err != nil {
		return annealing.Options{}, fmt.Errorf("config: [annealing]: %w", err)
	}

	return o, nil
}

// TabuOptions converts the [tabu] section.
func (p *Preset) TabuOptions() (tabu.Options, error) {
	o := tabu.DefaultOptions(tabu.WithSeed(p.Run.Seed), tabu.WithBudget(p.Tabu.Iterations, p.Tabu.TabuSize))
	if err := o.Validate(); err != nil {
		return tabu.Options{}, fmt.Errorf("config: [tabu]: %w", err)
	}

	return o, nil
}

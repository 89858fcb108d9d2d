// Package metrics exposes optimizer runs as Prometheus collectors.
//
// A Recorder owns its registry; nothing is registered globally. Results are
// exported in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/metatsp/annealing"
	"github.com/katalvlaran/metatsp/genetic"
	"github.com/katalvlaran/metatsp/tabu"
)

const namespace = "metatsp"

// Recorder holds the collectors for one process.
type Recorder struct {
	reg *prometheus.Registry

	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	bestLength *prometheus.GaugeVec
	steps      *prometheus.CounterVec
	improves   *prometheus.CounterVec
}

// New creates a Recorder with a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		// runs counts finished runs.
		// Labels: algorithm, variant, status (ok, error)
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Optimizer runs by outcome",
		}, []string{"algorithm", "variant", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of optimizer runs",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60},
		}, []string{"algorithm", "variant"}),
		bestLength: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_length",
			Help:      "Best tour length reported so far",
		}, []string{"algorithm", "variant"}),
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Generations or iterations observed",
		}, []string{"algorithm", "variant"}),
		improves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "improvements_total",
			Help:      "Steps that lowered the best length",
		}, []string{"algorithm", "variant"}),
	}
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveRun records the outcome of a finished run.
func (r *Recorder) ObserveRun(algorithm, variant string, best float64, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.runs.WithLabelValues(algorithm, variant, status).Inc()
	r.duration.WithLabelValues(algorithm, variant).Observe(elapsed.Seconds())
	if err == nil {
		r.bestLength.WithLabelValues(algorithm, variant).Set(best)
	}
}

// step records one observed generation/iteration.
func (r *Recorder) step(algorithm, variant string, best float64, prev *float64) {
	r.steps.WithLabelValues(algorithm, variant).Inc()
	if *prev == 0 || best < *prev {
		if *prev != 0 {
			r.improves.WithLabelValues(algorithm, variant).Inc()
		}
		*prev = best
		r.bestLength.WithLabelValues(algorithm, variant).Set(best)
	}
}

// Genetic wraps next (which may be nil) so every generation is counted.
func (r *Recorder) Genetic(variant string, next genetic.Observer) genetic.Observer {
	var prev float64

	return func(p genetic.Progress) error {
		r.step("genetic", variant, p.Length, &prev)
		if next != nil {
			return next(p)
		}

		return nil
	}
}

// Annealing wraps next (which may be nil) so every iteration is counted.
func (r *Recorder) Annealing(variant string, next annealing.Observer) annealing.Observer {
	var prev float64

	return func(p annealing.Progress) error {
		r.step("annealing", variant, p.BestLength, &prev)
		if next != nil {
			return next(p)
		}

		return nil
	}
}

// Tabu wraps next (which may be nil) so every iteration is counted.
func (r *Recorder) Tabu(variant string, next tabu.Observer) tabu.Observer {
	var prev float64

	return func(p tabu.Progress) error {
		r.step("tabu", variant, p.BestLength, &prev)
		if next != nil {
			return next(p)
		}

		return nil
	}
}

// WriteTextfile atomically writes every collector to path in the text
// exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

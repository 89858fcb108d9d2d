// Command metatsp solves TSP instances with genetic, annealing and tabu
// metaheuristics and compares them.
//
//	metatsp ga --instance cities.yaml --seed 7 --plot ga.png
//	metatsp compare --repeats 5 --jobs 4 --plot compare.png
//
// Every flag can also be set through a METATSP_* environment variable,
// e.g. METATSP_SEED=7 or METATSP_METRICS_FILE=/var/lib/node_exporter/metatsp.prom.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("metatsp failed")
		stop()
		os.Exit(1)
	}
}

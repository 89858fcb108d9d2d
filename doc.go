// Package metatsp solves the travelling salesman problem with three
// metaheuristics and compares them.
//
// The library is organised as flat packages:
//
//	matrix/     dense distance matrices and the Euclidean converter
//	tsp/        tours, lengths, validation, seeded randomness, 2-opt
//	genetic/    genetic algorithm (roulette/rank selection; 1-point, 2-point, uniform crossover)
//	annealing/  simulated annealing with a geometric cooling schedule
//	tabu/       tabu search over the swap neighbourhood with FIFO memory
//	instance/   YAML instance files and the reference 10-city matrix
//
// Every optimizer exposes the same shape:
//
//	res, err := genetic.Run(ctx, dist, genetic.DefaultOptions(genetic.WithSeed(7)))
//
// Runs are deterministic for a given seed, never touch global math/rand
// state, and stop cooperatively when ctx is cancelled, returning the best
// tour found so far together with the context error.
//
// The metatsp command (cmd/metatsp) wraps the library: single runs, a ranked
// comparison of all variants, INI presets, convergence charts and
// Prometheus textfile metrics.
//
// Quick example, the unit square:
//
//	    A───B
//	    │   │
//	    D───C
//
//	tour [A B C D] has length 4; [A C B D] crosses itself and has length 2+2√2.
package metatsp

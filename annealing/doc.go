// Package annealing implements simulated annealing for the Traveling
// Salesman Problem with a geometric cooling schedule and Metropolis acceptance.
//
// Schedule: starting at T0, each level runs K swap moves, then T *= Alpha;
// the run stops as soon as T ≤ Tf. The number of levels is therefore the
// smallest L with T0·Alpha^L ≤ Tf (see Options.Levels).
//
// History records one value per inner iteration. By default it is the
// best-so-far length (non-increasing); HistoryPolicy Current records the
// instantaneous length instead, which shows the uphill moves the search takes.
//
// Determinism: all randomness comes from Options.Rand (or tsp.NewRand(Options.Seed)).
package annealing

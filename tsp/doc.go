// Package tsp provides the tour and distance primitives shared by the
// metaheuristic solvers in genetic, annealing and tabu.
//
// A tour is an open permutation of city indices 0..n-1; the closing edge from
// the last city back to the first is implicit and always counted.
//
//   - TourLength / Fitness: Σ d(t[i], t[(i+1) mod n]) and its reciprocal.
//     These are the checked public API: shape and permutation are validated
//     on every call.
//   - Distances: a validated, flattened snapshot of a matrix.Matrix. Its
//     Length and Fitness methods are the unchecked hot path the optimizers
//     use; it is immutable for the duration of a search.
//   - ValidateDistances: shape, diagonal, sign and degeneracy checks, done
//     eagerly by every optimizer before it allocates state.
//   - ValidatePermutation, CopyTour, ReverseTour, RotateTour, EqualTours,
//     SwapPositions, EncodeTour (the key used by tabu memory).
//   - NewRand / DeriveRand / DeriveSeed / RandomTour / DistinctPair: deterministic
//     randomness; no optimizer touches global math/rand state.
//   - TwoOpt: first-improvement 2-opt polish for symmetric instances.
//   - DropChannel: a bounded, never-blocking progress stream.
//
// Errors are the sentinels in types.go, wrapped with context.
package tsp

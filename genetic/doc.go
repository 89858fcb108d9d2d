// Package genetic implements a generational genetic algorithm for the
// Traveling Salesman Problem.
//
// A population of P random tours evolves for G generations. Each generation
// the shortest tour (the elite) is copied unchanged into the next population;
// the other P-1 members are children of two parents chosen by roulette or
// rank selection, recombined with probability pc and swap-mutated with
// probability pm. Because the elite always survives, the recorded History of
// elite lengths never increases.
//
// Operators:
//
//   - RouletteSelect / RankSelect: fitness-proportional and rank-proportional draws.
//   - OnePointCrossover, TwoPointCrossover, UniformCrossover: order-preserving
//     recombinations that always yield a valid permutation.
//   - SwapMutation: exchange two distinct positions.
//
// Determinism: all randomness comes from Options.Rand (or tsp.NewRand(Options.Seed));
// equal seeds give equal runs.
//
// Example:
//
//	res, err := genetic.Run(ctx, m, genetic.DefaultOptions(
//	    genetic.WithSeed(7),
//	    genetic.WithStrategy(genetic.Rank, genetic.Uniform),
//	))
package genetic

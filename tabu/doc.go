// Package tabu implements tabu search for the Traveling Salesman Problem
// over the full 2-exchange (swap) neighbourhood.
//
// The tabu memory stores whole solutions rather than move attributes: a
// neighbour is forbidden exactly when the same tour, in the same order, was
// visited within the last M moves. Memory is a bounded FIFO with map-backed
// membership.
//
// The search always moves to the best admissible neighbour, even uphill,
// which lets it walk out of local optima; the best solution ever seen is
// returned. Result has no History; attach an Observer to sample
// the trajectory.
package tabu

// SPDX-License-Identifier: MIT

// Package matrix provides the distance-matrix representation consumed by the
// metaheuristic TSP solvers.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by a flat slice.
//   - NewDenseFromRows, to wrap [][]float64 literals (ragged input is rejected).
//   - NewEuclidean, the coordinate-to-matrix converter: a symmetric matrix of
//     straight-line distances with an exact zero diagonal.
//   - Validators for shape, finiteness and symmetry.
//
// Solvers treat a Matrix as immutable for the duration of a search; they only
// call At. Use Clone when a caller needs to keep mutating its own copy.
package matrix

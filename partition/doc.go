// Package partition decides whether a candidate edge subset partitions the
// vertices of a reference graph into vertex-disjoint directed cycles, each
// of length at least 3, and extracts those cycles.
//
// A candidate is valid when
//
//  1. its vertex set equals the vertex set of the reference graph, and
//  2. starting from the smallest unvisited vertex, following the single
//     remaining out-edge of every vertex always closes back at the start,
//  3. and every closed cycle visits at least 3 distinct vertices.
//
// Edges of the candidate need not be edges of the reference; only the
// vertex sets are compared. Failure is never an error: IsValid and
// Decompose report every structural problem as a plain false. Decompose
// additionally returns the cycles closed before the failure, which is the
// only diagnostic offered.
//
// The start vertex is always the smallest remaining one, so the result and
// the order of the extracted cycles are reproducible.
//
// Complexity: O(E log V) time, O(E) space.
package partition

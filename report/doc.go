// Package report post-processes the samples returned by an annealer (or by
// qubo.ExactMinimum) for one encoded graph.
//
// A sampler run of numReads reads yields distinct states, each with its
// energy and occurrence count. Summarize keeps the lowest-energy states
// (degenerate within a tolerance), validates each against the reference
// graph with partition.Decompose and reports the fraction of reads that
// landed on a valid cycle partition:
//
//	frequency = Σ occurrences(valid lowest states) / numReads
//
// From that success probability p, RunsToSolution gives the number of
// independent runs needed to observe a solution with the requested
// confidence:
//
//	runs = log(1 − confidence) / log(1 − p)
//
// Aggregate merges repeated states first, so samplers that report one
// entry per read are handled the same way as grouped responses.
package report

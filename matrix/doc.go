// Package matrix provides a dense, integer-valued two-dimensional array used
// throughout the CVRP solver: the instance distance matrix D[n×n] and the
// per-route candidate matrices M_r produced by kneighbors both use it.
//
// Unlike a general-purpose linear-algebra package, this trimmed matrix only
// needs bounds-checked reads/writes over a flat row-major buffer of ints;
// there is no eigen-decomposition, no elementwise algebra, no incidence or
// adjacency conversion in the CVRP pipeline, so those concerns were dropped.
package matrix

// Package kneighbors builds per-route candidate-edge matrices: a global
// minimum spanning tree over the full distance graph, per-customer k-nearest
// neighbor lists derived from it (falling back to the raw distance matrix
// when the tree alone doesn't supply k), and per-route candidate matrices
// M_r recording which arcs remain legal for that route's vehicle in the PBO
// model. M_r reuses the same Dense int matrix type as the Instance's own
// distance matrix, with a negative sentinel marking forbidden arcs.
package kneighbors

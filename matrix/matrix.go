// Package matrix defines the core Matrix interface for bounds-checked integer
// two-dimensional arrays.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional
//	mutable arrays of int values so that instance.Instance (the n×n distance
//	matrix D) and kneighbors.CandidateMatrix (the per-route candidate matrix M_r)
//	can share one bounds-checked storage type without each reimplementing
//	flat-index arithmetic. This design ensures safety through bounds checking
//	and supports deep cloning for immutability guarantees in algorithm
//	pipelines.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of int values.
// Each method enforces bounds checking and returns a sentinel error on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (int, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v int) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

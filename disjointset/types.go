// Package disjointset defines the DisjointSet type and sentinel errors
// for the disjointset subpackage of github.com/katalvlaran/factorgraph.
package disjointset

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidSize indicates a negative element count was passed to New.
	ErrInvalidSize = errors.New("disjointset: element count must be non-negative")

	// ErrIndexOutOfRange indicates an element outside the universe [0, n).
	ErrIndexOutOfRange = errors.New("disjointset: element index out of range")

	// ErrDimensionMismatch indicates a caller-provided slice whose length
	// differs from the number of elements.
	ErrDimensionMismatch = errors.New("disjointset: output length must equal element count")
)

// DisjointSet tracks a partition of the elements 0..n-1 into disjoint sets.
//
// parent[i] is the parent of element i in its set's tree (parent[i] == i at a
// root); rank[i] is an upper bound on the height of the tree rooted at i.
// connected is a caller-owned memo (see SetConnected); the structure itself
// never computes it.
type DisjointSet struct {
	parent    []int
	rank      []int
	connected bool
}

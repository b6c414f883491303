// Package disjointset implements a disjoint-set (union-find) data structure
// over a fixed universe of integer elements 0..n-1, with full path compression
// and union by rank.
//
// What:
//
//   - New(n) allocates n singleton sets: parent[i] = i, rank[i] = 0.
//   - FindSet(x) returns the root of x's set, compressing the visited path.
//   - UnionSet(x, y) merges the sets of x and y; it reports true when x and y
//     were already joined, the signal callers use to detect a redundant link
//     (a cycle) without mutating the structure.
//   - UniqueLabeling / NumSets relabel elements with contiguous set labels.
//   - Connected / SetConnected hold a caller-owned memo; the structure never
//     derives connectivity on its own.
//
// Why:
//
//   - Graph topology analysis: incremental connectivity, cycle detection,
//     component labeling while edges stream in.
//   - The substrate beneath factorgraph.ConnectComponents.
//
// Complexity:
//
//   - FindSet / UnionSet / IsSameSet: O(α(n)) amortized (inverse Ackermann).
//   - UniqueLabeling / NumSets: O(n·α(n)). Memory: O(n).
//
// Errors:
//
//   - ErrInvalidSize: negative element count passed to New.
//   - ErrIndexOutOfRange: element outside [0, n).
//   - ErrDimensionMismatch: labeling output slice of the wrong length.
package disjointset

// Package factorgraph models a factor graph: discrete variables with fixed
// cardinalities and a collection of local energy functions (factors) over
// ordered subsets of those variables, together with the topology analysis
// needed to reason about the graph as a whole.
//
// What:
//
//   - FactorGraph owns the variable cardinalities, the factor list (insertion
//     order is significant for reproducible energy summation), and the shared
//     data-source list that keeps tied parameter tables alive.
//   - ConnectComponents rebuilds a disjoint set over the variables from the
//     current factor scopes and derives the edge count and cycle flag.
//   - IsAcyclicGraph, IsConnectedGraph, IsTreeGraph, and NumEdges read that
//     derived state; they fail with ErrStaleTopology until ConnectComponents
//     has run against the current factor set.
//   - ComputeEnergies asks every factor to materialize its table from its
//     data source; EvaluateEnergy sums per-factor energies for a full
//     assignment, in factor insertion order.
//   - Duplicate deep-copies cardinalities and factors, shares data sources,
//     and leaves topology for the caller to rebuild on the copy.
//
// Edge counting:
//
//	A factor with scope [v0, ..., vk-1] is treated as a star anchored at v0:
//	each union v0-vi that joins two previously disjoint sets contributes one
//	edge, while a redundant union sets the cycle flag and contributes none.
//	For k > 2 this undercounts full pairwise-clique edges; it is the
//	spanning-structure count the topology predicates are defined over.
//
// Why:
//
//   - The structured input beneath inference and learning algorithms (belief
//     propagation, structured prediction): those consumers need to know
//     whether a graph is a tree, a forest, or cyclic before choosing a
//     strategy. This package does not itself infer or learn.
//
// Complexity:
//
//   - ConnectComponents: O(S·α(n)) for total scope size S over n variables.
//   - EvaluateEnergy: O(S). Memory: O(n) for the rebuilt disjoint set.
//
// Concurrency:
//
//	Mutation is single-threaded by design. A fully built graph (after
//	ConnectComponents / ComputeEnergies) is safe for concurrent reads as long
//	as no goroutine mutates it concurrently.
//
// Errors:
//
//   - ErrNilFactor / ErrNilDataSource: nil argument to an append.
//   - ErrIndexOutOfRange: variable or assignment component out of bounds.
//   - ErrDimensionMismatch: assignment length differs from variable count.
//   - ErrStaleTopology: topology query before any ConnectComponents run.
package factorgraph

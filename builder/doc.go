// Package builder constructs the canned factor-graph topologies used across
// tests, benchmarks, and examples: chains, rings, grids, and complete graphs
// of pairwise factors.
//
// What:
//
//   - Chain(n): path topology 0—1—...—(n-1); the classic tree.
//   - Ring(n): the chain closed into a cycle.
//   - Grid(rows, cols): lattice of right/down pairwise factors.
//   - Complete(n): every variable pair shares a factor.
//
// Determinism:
//
//	Same constructor, options, and seed always produce identical graphs:
//	factors are emitted in a fixed scan order and random energy tables come
//	from a seeded generator (WithSeed).
//
// Options:
//
//   - WithCardinality(k): per-variable state count (default 2).
//   - WithSeed(s): fill energy tables with deterministic random values
//     instead of zeros.
//   - WithUnaries(): add one unary factor per variable.
//   - WithSharedSource(): back every pairwise factor with one shared
//     DataSource (tied parameters), registered on the graph.
//
// Errors:
//
//   - ErrTooFewVariables: n below the topology's minimum.
//   - ErrInvalidCardinality: cardinality below 1.
//   - ErrInvalidGrid: non-positive grid dimension.
package builder

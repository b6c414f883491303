// Package factor defines the local-function side of a factor graph: the
// Factor contract consumed by package factorgraph, a concrete table-backed
// implementation, and the shared DataSource that factors may draw their
// energy tables from.
//
// What:
//
//   - Factor is the boundary contract: an ordered scope of variable indices,
//     energy evaluation for a partial assignment in scope order, energy-table
//     materialization from the factor's own data source, and deep cloning.
//   - TableFactor implements Factor with an explicit energy table indexed by
//     the joint state of its scope.
//   - DataSource is an identity-bearing, shareable energy table; many factors
//     (across many graphs) may reference the same one, so tied parameters are
//     stored once.
//
// Joint-state indexing:
//
//	A TableFactor with scope [v0, ..., vk-1] and per-scope cardinalities
//	[c0, ..., ck-1] stores prod(ci) energies. The joint state
//	(s0, ..., sk-1) maps to index ((s0·c1 + s1)·c2 + s2)·..., i.e. the LAST
//	scope variable varies fastest: for cardinalities [2,2] the table order is
//	(0,0), (0,1), (1,0), (1,1).
//
// Errors:
//
//   - ErrEmptyScope: factor constructed with no scope variables.
//   - ErrDuplicateScopeVar: repeated variable index in a scope.
//   - ErrInvalidCardinality: scope cardinality below 1.
//   - ErrDimensionMismatch: table size or assignment length mismatch.
//   - ErrIndexOutOfRange: state component or joint index out of bounds.
//   - ErrNoDataSource: materialization requested without a data source.
package factor

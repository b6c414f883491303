// Package factorgraph is a toolkit for building and analyzing factor graphs:
// discrete variables, local energy functions over subsets of them, and the
// topology reasoning that structured-prediction algorithms are built on.
//
// 🚀 What is factorgraph?
//
//	A small, focused library that brings together:
//		• disjointset/  — union-find with path compression and union by rank
//		• factor/       — the Factor contract, table factors, shared data sources
//		• factorgraph/  — the graph aggregate: topology analysis & energy evaluation
//		• builder/      — canned topologies (chain, ring, grid, complete)
//		• codec/        — explicit, versioned YAML persistence
//		• dot/          — Graphviz DOT export of the bipartite topology
//		• cmd/fgctl     — CLI: inspect, evaluate, export
//
// ✨ Why choose factorgraph?
//
//   - Deterministic – fixed summation and emission orders, seeded randomness
//   - Fail-fast – sentinel errors on malformed data, never silent degradation
//   - Pure library core – the CLI is the only surface that touches I/O
//
// Quick ASCII example:
//
//	    x0 ──φ── x1 ──φ── x2
//
//	a three-variable chain: two pairwise factors, a tree.
//
// Inference and learning (belief propagation, structured SVMs) are external
// consumers of this structure, not part of it.
//
//	go get github.com/katalvlaran/factorgraph
package factorgraph

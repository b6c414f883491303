// Package dot renders a factor graph's bipartite topology as Graphviz DOT
// text: variables as ellipses labeled with their cardinality, factors as
// boxes labeled with their scope, and one edge from each factor to every
// variable in its scope.
//
// Output is deterministic: variables in index order, factors in insertion
// order, so renders diff cleanly and are safe to assert on in tests.
package dot

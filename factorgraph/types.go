// Package factorgraph defines the FactorGraph type, collaborator contracts,
// and sentinel errors for github.com/katalvlaran/factorgraph.
package factorgraph

import (
	"errors"

	"github.com/katalvlaran/factorgraph/disjointset"
	"github.com/katalvlaran/factorgraph/factor"
)

// Sentinel errors for factor-graph operations.
var (
	// ErrNilFactor indicates AddFactor was called with a nil factor.
	ErrNilFactor = errors.New("factorgraph: nil factor")

	// ErrNilDataSource indicates AddDataSource was called with nil.
	ErrNilDataSource = errors.New("factorgraph: nil data source")

	// ErrIndexOutOfRange indicates a variable index or assignment component
	// outside its valid bounds.
	ErrIndexOutOfRange = errors.New("factorgraph: index out of range")

	// ErrDimensionMismatch indicates an assignment whose length differs from
	// the number of variables.
	ErrDimensionMismatch = errors.New("factorgraph: assignment length must equal variable count")

	// ErrStaleTopology indicates a topology query (acyclic, connected, tree,
	// edge count, component labels) before ConnectComponents has been run
	// against the current graph.
	ErrStaleTopology = errors.New("factorgraph: topology not built, call ConnectComponents first")
)

// Observation supplies a full variable assignment from an external
// collaborator (e.g. a labeled training example).
type Observation interface {
	// Assignment returns one value per variable, in variable-index order.
	Assignment() []int
}

// StaticObservation is the trivial Observation: a fixed assignment vector.
type StaticObservation struct {
	state []int
}

// NewStaticObservation wraps a copy of the given assignment.
func NewStaticObservation(state []int) *StaticObservation {
	return &StaticObservation{state: append([]int(nil), state...)}
}

// Assignment returns the wrapped assignment. Callers must not mutate it.
func (o *StaticObservation) Assignment() []int {
	return o.state
}

// FactorGraph aggregates variables, factors, and shared data sources, plus
// the topology state derived by ConnectComponents.
//
// The factor and data-source lists are append-only and hold references:
// factors are not copied on add (only on Duplicate), and data sources are
// kept solely to pin shared tables alive, never interpreted.
type FactorGraph struct {
	cards   []int                // cards[i] = cardinality of variable i
	factors []factor.Factor      // insertion order, summation order
	sources []*factor.DataSource // shared, listed to keep them alive

	// Derived by ConnectComponents; dset == nil marks stale topology.
	dset     *disjointset.DisjointSet
	numEdges int
	hasCycle bool
}

// New creates a FactorGraph over variables with the given cardinalities.
// The slice is copied; an empty (or nil) slice is valid and can be replaced
// later via SetCardinalities.
func New(cards []int) *FactorGraph {
	return &FactorGraph{cards: append([]int(nil), cards...)}
}

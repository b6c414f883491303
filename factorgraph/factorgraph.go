package factorgraph

import (
	"github.com/katalvlaran/factorgraph/disjointset"
	"github.com/katalvlaran/factorgraph/factor"
)

// AddFactor appends f to the factor list. Beyond the nil check no validation
// happens here: scope indices are checked lazily, when topology or energy is
// computed against the then-current cardinalities.
//
// Adding a factor does NOT invalidate previously derived topology; callers
// that mutate the factor set must re-run ConnectComponents before trusting
// the topology predicates again.
func (fg *FactorGraph) AddFactor(f factor.Factor) error {
	if f == nil {
		return ErrNilFactor
	}
	fg.factors = append(fg.factors, f)

	return nil
}

// AddDataSource appends d to the data-source list. The graph never interprets
// a data source; the list exists to keep shared tables alive as long as the
// graph does.
func (fg *FactorGraph) AddDataSource(d *factor.DataSource) error {
	if d == nil {
		return ErrNilDataSource
	}
	fg.sources = append(fg.sources, d)

	return nil
}

// Cardinalities returns a copy of the per-variable cardinalities.
func (fg *FactorGraph) Cardinalities() []int {
	return append([]int(nil), fg.cards...)
}

// SetCardinalities replaces the variable domain and invalidates all derived
// topology: the disjoint set, edge count, and cycle flag are dropped, and
// topology queries fail with ErrStaleTopology until ConnectComponents runs
// again.
func (fg *FactorGraph) SetCardinalities(cards []int) {
	fg.cards = append([]int(nil), cards...)
	fg.dset = nil
	fg.numEdges = 0
	fg.hasCycle = false
}

// NumVariables returns the number of variables.
func (fg *FactorGraph) NumVariables() int {
	return len(fg.cards)
}

// NumVectors returns the number of factors. The name follows the generic
// one-example-equals-N-sub-units container convention of calling algorithms
// (see FeatureContainer); it carries no further graph semantics.
func (fg *FactorGraph) NumVectors() int {
	return len(fg.factors)
}

// Factors returns the factor list in insertion order. The slice is a copy;
// the factors themselves are shared references.
func (fg *FactorGraph) Factors() []factor.Factor {
	return append([]factor.Factor(nil), fg.factors...)
}

// DataSources returns the data-source list. The slice is a copy; the sources
// themselves are shared references.
func (fg *FactorGraph) DataSources() []*factor.DataSource {
	return append([]*factor.DataSource(nil), fg.sources...)
}

// DisjointSet exposes the disjoint set built by the last ConnectComponents
// run, or nil if topology was never built (or was invalidated).
func (fg *FactorGraph) DisjointSet() *disjointset.DisjointSet {
	return fg.dset
}

// Duplicate returns a deep-where-it-matters copy of the graph:
//
//   - cardinalities are copied by value;
//   - every factor is cloned, so energy tables are independently mutable;
//   - data sources are shared by reference, never cloned;
//   - derived topology is left unset — the copy must run ConnectComponents
//     itself before querying topology.
func (fg *FactorGraph) Duplicate() *FactorGraph {
	dup := New(fg.cards)
	dup.factors = make([]factor.Factor, len(fg.factors))
	for i, f := range fg.factors {
		dup.factors[i] = f.Clone()
	}
	dup.sources = append([]*factor.DataSource(nil), fg.sources...)

	return dup
}

package factorgraph

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/disjointset"
)

// ConnectComponents rebuilds the graph topology from scratch against the
// current factor set.
//
// Steps:
//  1. Allocate a fresh disjoint set sized to the variable count; reset the
//     edge count and cycle flag.
//  2. For every factor in insertion order, treat scope[0] as the anchor of
//     its clique and union it with each later scope variable in turn. A
//     union that joins two previously disjoint sets forms a new tree edge
//     (edge count +1); a redundant union means another path already connects
//     the pair, so the cycle flag is raised and no edge is counted.
//  3. Record the connectivity verdict on the disjoint set: one component (or
//     an empty variable set) counts as connected.
//
// Scope indices are validated here against the current cardinalities;
// ErrIndexOutOfRange aborts the rebuild and leaves the topology stale.
//
// The rebuild is total, never incremental: cheap at the expected graph sizes
// and immune to factor-insertion ordering subtleties.
//
// Complexity: O(n + S·α(n)) for n variables and total scope size S.
func (fg *FactorGraph) ConnectComponents() error {
	// 1. Fresh substrate; the previous one (if any) is discarded wholesale.
	ds, err := disjointset.New(len(fg.cards))
	if err != nil {
		return err
	}
	fg.dset = nil
	fg.numEdges = 0
	fg.hasCycle = false

	numEdges := 0
	hasCycle := false

	// 2. Union every factor's scope as an anchored star.
	for fi, f := range fg.factors {
		scope := f.Scope()
		if len(scope) == 0 {
			return fmt.Errorf("factor %d has an empty scope: %w", fi, ErrDimensionMismatch)
		}
		if err = fg.checkVariable(scope[0]); err != nil {
			return fmt.Errorf("factor %d: %w", fi, err)
		}

		// Single-variable factors touch no edges.
		for _, vi := range scope[1:] {
			if err = fg.checkVariable(vi); err != nil {
				return fmt.Errorf("factor %d: %w", fi, err)
			}

			joined, errUnion := ds.UnionSet(scope[0], vi)
			if errUnion != nil {
				return errUnion
			}
			if joined {
				// The connection already existed through another path.
				hasCycle = true

				continue
			}
			numEdges++
		}
	}

	// 3. Publish the derived state atomically with the verdict.
	ds.SetConnected(ds.NumSets() <= 1)
	fg.dset = ds
	fg.numEdges = numEdges
	fg.hasCycle = hasCycle

	return nil
}

// checkVariable validates a scope index against the current cardinalities.
func (fg *FactorGraph) checkVariable(v int) error {
	if v < 0 || v >= len(fg.cards) {
		return fmt.Errorf("%w: variable %d of %d", ErrIndexOutOfRange, v, len(fg.cards))
	}

	return nil
}

// IsAcyclicGraph reports whether the last topology rebuild saw no redundant
// scope link. ErrStaleTopology before any ConnectComponents run.
func (fg *FactorGraph) IsAcyclicGraph() (bool, error) {
	if fg.dset == nil {
		return false, ErrStaleTopology
	}

	return !fg.hasCycle, nil
}

// IsConnectedGraph reports whether all variables fell into one component at
// the last topology rebuild. ErrStaleTopology before any ConnectComponents
// run.
func (fg *FactorGraph) IsConnectedGraph() (bool, error) {
	if fg.dset == nil {
		return false, ErrStaleTopology
	}

	return fg.dset.Connected(), nil
}

// IsTreeGraph reports whether the graph is simultaneously acyclic and
// connected. ErrStaleTopology before any ConnectComponents run.
func (fg *FactorGraph) IsTreeGraph() (bool, error) {
	acyclic, err := fg.IsAcyclicGraph()
	if err != nil {
		return false, err
	}
	connected, err := fg.IsConnectedGraph()
	if err != nil {
		return false, err
	}

	return acyclic && connected, nil
}

// NumEdges returns the tree-edge count derived by the last ConnectComponents
// run. ErrStaleTopology before any run.
func (fg *FactorGraph) NumEdges() (int, error) {
	if fg.dset == nil {
		return 0, ErrStaleTopology
	}

	return fg.numEdges, nil
}

// ComponentLabels returns one contiguous component label per variable, plus
// the component count, from the last topology rebuild.
// ErrStaleTopology before any ConnectComponents run.
func (fg *FactorGraph) ComponentLabels() ([]int, int, error) {
	if fg.dset == nil {
		return nil, 0, ErrStaleTopology
	}

	labels := make([]int, fg.dset.Len())
	k, err := fg.dset.UniqueLabeling(labels)
	if err != nil {
		return nil, 0, err
	}

	return labels, k, nil
}

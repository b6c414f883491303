package factorgraph

import "fmt"

// ComputeEnergies asks every factor, in insertion order, to materialize its
// energy table against its referenced data source. Factors without a data
// source keep whatever table they already hold. The first materialization
// failure aborts the pass.
func (fg *FactorGraph) ComputeEnergies() error {
	for fi, f := range fg.factors {
		if err := f.MaterializeEnergyTable(); err != nil {
			return fmt.Errorf("factor %d: %w", fi, err)
		}
	}

	return nil
}

// EvaluateEnergy sums the per-factor energies for a full assignment.
//
// state must hold one value per variable (ErrDimensionMismatch otherwise),
// each inside its variable's cardinality (ErrIndexOutOfRange otherwise).
// Factors are visited in insertion order, so the summation order — and any
// floating-point rounding — is reproducible across runs.
//
// Complexity: O(S) for total scope size S.
func (fg *FactorGraph) EvaluateEnergy(state []int) (float64, error) {
	if len(state) != len(fg.cards) {
		return 0, fmt.Errorf("%w: got %d values for %d variables",
			ErrDimensionMismatch, len(state), len(fg.cards))
	}
	for v, s := range state {
		if s < 0 || s >= fg.cards[v] {
			return 0, fmt.Errorf("%w: state %d for variable %d (cardinality %d)",
				ErrIndexOutOfRange, s, v, fg.cards[v])
		}
	}

	var energy float64
	scratch := make([]int, 0, 8) // reused restriction buffer
	for fi, f := range fg.factors {
		scope := f.Scope()

		// Restrict the full assignment to the factor's scope, in scope order.
		scratch = scratch[:0]
		for _, v := range scope {
			if err := fg.checkVariable(v); err != nil {
				return 0, fmt.Errorf("factor %d: %w", fi, err)
			}
			scratch = append(scratch, state[v])
		}

		e, err := f.EvaluateEnergy(scratch)
		if err != nil {
			return 0, fmt.Errorf("factor %d: %w", fi, err)
		}
		energy += e
	}

	return energy, nil
}

// EvaluateObservationEnergy extracts the full assignment from an external
// Observation collaborator and delegates to EvaluateEnergy.
func (fg *FactorGraph) EvaluateObservationEnergy(obs Observation) (float64, error) {
	return fg.EvaluateEnergy(obs.Assignment())
}

package builder

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/factor"
	"github.com/katalvlaran/factorgraph/factorgraph"
)

// Chain builds a path of pairwise factors over n variables:
// (0,1), (1,2), ..., (n-2, n-1). Requires n ≥ 2.
// Complexity: O(n·k²) for cardinality k.
func Chain(n int, opts ...Option) (*factorgraph.FactorGraph, error) {
	if n < minChainVars {
		return nil, fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainVars, ErrTooFewVariables)
	}

	var scopes [][2]int
	for i := 1; i < n; i++ {
		scopes = append(scopes, [2]int{i - 1, i})
	}

	return assemble(n, scopes, resolve(opts))
}

// Ring builds Chain(n) closed with one extra factor (n-1, 0), forming a
// single cycle. Requires n ≥ 3.
// Complexity: O(n·k²).
func Ring(n int, opts ...Option) (*factorgraph.FactorGraph, error) {
	if n < minRingVars {
		return nil, fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingVars, ErrTooFewVariables)
	}

	var scopes [][2]int
	for i := 1; i < n; i++ {
		scopes = append(scopes, [2]int{i - 1, i})
	}
	scopes = append(scopes, [2]int{n - 1, 0})

	return assemble(n, scopes, resolve(opts))
}

// Grid builds a rows×cols lattice: variable (r, c) sits at index r·cols + c,
// with pairwise factors to its right and down neighbors, emitted in row-major
// scan order. Requires positive dimensions.
// Complexity: O(rows·cols·k²).
func Grid(rows, cols int, opts ...Option) (*factorgraph.FactorGraph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrInvalidGrid)
	}

	var scopes [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if c+1 < cols {
				scopes = append(scopes, [2]int{idx, idx + 1}) // right neighbor
			}
			if r+1 < rows {
				scopes = append(scopes, [2]int{idx, idx + cols}) // down neighbor
			}
		}
	}

	return assemble(rows*cols, scopes, resolve(opts))
}

// Complete builds one pairwise factor for every variable pair i < j, emitted
// in lexicographic order. Requires n ≥ 2.
// Complexity: O(n²·k²).
func Complete(n int, opts ...Option) (*factorgraph.FactorGraph, error) {
	if n < minCompleteVars {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVars, ErrTooFewVariables)
	}

	var scopes [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			scopes = append(scopes, [2]int{i, j})
		}
	}

	return assemble(n, scopes, resolve(opts))
}

// assemble turns a pairwise scope list into a FactorGraph under cfg.
func assemble(n int, scopes [][2]int, cfg config) (*factorgraph.FactorGraph, error) {
	if cfg.cardinality < 1 {
		return nil, fmt.Errorf("cardinality %d: %w", cfg.cardinality, ErrInvalidCardinality)
	}

	cards := make([]int, n)
	for i := range cards {
		cards[i] = cfg.cardinality
	}
	fg := factorgraph.New(cards)

	// One shared table for all pairwise factors, if tied parameters were
	// requested; registered so the graph keeps it alive.
	var shared *factor.DataSource
	if cfg.sharedSource {
		shared = factor.NewDataSource(cfg.table(cfg.cardinality * cfg.cardinality))
		if err := fg.AddDataSource(shared); err != nil {
			return nil, err
		}
	}

	pairCards := []int{cfg.cardinality, cfg.cardinality}
	for _, s := range scopes {
		fopts := []factor.TableFactorOption{
			factor.WithEnergies(cfg.table(cfg.cardinality * cfg.cardinality)),
		}
		if shared != nil {
			fopts = append(fopts, factor.WithDataSource(shared))
		}

		tf, err := factor.NewTableFactor([]int{s[0], s[1]}, pairCards, fopts...)
		if err != nil {
			return nil, err
		}
		if err = fg.AddFactor(tf); err != nil {
			return nil, err
		}
	}

	if cfg.unaries {
		for v := 0; v < n; v++ {
			tf, err := factor.NewTableFactor([]int{v}, []int{cfg.cardinality},
				factor.WithEnergies(cfg.table(cfg.cardinality)))
			if err != nil {
				return nil, err
			}
			if err = fg.AddFactor(tf); err != nil {
				return nil, err
			}
		}
	}

	return fg, nil
}

// table produces a size-entry energy table: zeros by default, deterministic
// uniform [0, 1) values when a seed was supplied.
func (c config) table(size int) []float64 {
	t := make([]float64, size)
	if c.rng != nil {
		for i := range t {
			t[i] = c.rng.Float64()
		}
	}

	return t
}

// Package factor defines the Factor contract, sentinel errors, and options
// for the factor subpackage of github.com/katalvlaran/factorgraph.
package factor

import "errors"

// Sentinel errors for factor construction and evaluation.
var (
	// ErrEmptyScope indicates a factor was built with zero scope variables.
	ErrEmptyScope = errors.New("factor: scope must contain at least one variable")

	// ErrDuplicateScopeVar indicates a repeated variable index in a scope.
	ErrDuplicateScopeVar = errors.New("factor: duplicate variable in scope")

	// ErrInvalidCardinality indicates a scope cardinality below 1.
	ErrInvalidCardinality = errors.New("factor: cardinality must be at least 1")

	// ErrDimensionMismatch indicates a slice whose length disagrees with
	// the scope or the energy-table size it must match.
	ErrDimensionMismatch = errors.New("factor: dimension mismatch")

	// ErrIndexOutOfRange indicates a state component or joint-state index
	// outside its valid bounds.
	ErrIndexOutOfRange = errors.New("factor: index out of range")

	// ErrNoDataSource indicates a materialization request on a factor that
	// references no data source.
	ErrNoDataSource = errors.New("factor: no data source attached")
)

// Factor is the local-function contract a factor graph consumes.
//
// A Factor owns an ordered, duplicate-free scope of variable indices and maps
// a partial assignment over that scope (given in scope order) to a scalar
// energy. It may reference a shared DataSource; MaterializeEnergyTable pulls
// the current table from it.
type Factor interface {
	// Scope returns the ordered variable indices this factor depends on.
	// Callers must not mutate the returned slice.
	Scope() []int

	// EvaluateEnergy maps a partial assignment, restricted to the scope and
	// given in scope order, to a scalar energy.
	EvaluateEnergy(scoped []int) (float64, error)

	// MaterializeEnergyTable refreshes the factor's energy table from its
	// referenced data source. Factors without a data source keep whatever
	// table they already hold and return nil.
	MaterializeEnergyTable() error

	// Clone returns an independent deep copy: mutating the clone's energy
	// table never affects the original. A referenced DataSource is shared,
	// not cloned.
	Clone() Factor
}

// TableFactorOption configures a TableFactor during construction.
type TableFactorOption func(*TableFactor)

// WithDataSource attaches a shared DataSource to the factor. The factor holds
// a reference only; MaterializeEnergyTable copies the source's table in.
func WithDataSource(src *DataSource) TableFactorOption {
	return func(tf *TableFactor) { tf.source = src }
}

// WithEnergies sets the initial energy table. Length validation happens in
// NewTableFactor after the scope is known.
func WithEnergies(energies []float64) TableFactorOption {
	return func(tf *TableFactor) {
		tf.table = make([]float64, len(energies))
		copy(tf.table, energies)
	}
}

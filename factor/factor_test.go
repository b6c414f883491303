package factor_test

import (
	"testing"

	"github.com/katalvlaran/factorgraph/factor" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTableFactor_Validation exercises every constructor rejection.
func TestNewTableFactor_Validation(t *testing.T) {
	// Empty scope.
	_, err := factor.NewTableFactor(nil, nil)
	assert.ErrorIs(t, err, factor.ErrEmptyScope)

	// Scope and cardinalities of differing lengths.
	_, err = factor.NewTableFactor([]int{0, 1}, []int{2})
	assert.ErrorIs(t, err, factor.ErrDimensionMismatch)

	// Duplicate scope variable.
	_, err = factor.NewTableFactor([]int{0, 0}, []int{2, 2})
	assert.ErrorIs(t, err, factor.ErrDuplicateScopeVar)

	// Negative variable index.
	_, err = factor.NewTableFactor([]int{-1}, []int{2})
	assert.ErrorIs(t, err, factor.ErrIndexOutOfRange)

	// Cardinality below 1.
	_, err = factor.NewTableFactor([]int{0}, []int{0})
	assert.ErrorIs(t, err, factor.ErrInvalidCardinality)

	// WithEnergies table of the wrong size (scope needs 2·3 = 6 entries).
	_, err = factor.NewTableFactor([]int{0, 1}, []int{2, 3},
		factor.WithEnergies([]float64{1, 2, 3}))
	assert.ErrorIs(t, err, factor.ErrDimensionMismatch)
}

// TestTableFactor_Defaults verifies the zero table and accessor copies.
func TestTableFactor_Defaults(t *testing.T) {
	tf, err := factor.NewTableFactor([]int{3, 1}, []int{2, 4})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1}, tf.Scope())
	assert.Equal(t, []int{2, 4}, tf.Cardinalities())
	assert.Equal(t, 8, tf.TableSize())
	assert.Equal(t, make([]float64, 8), tf.Energies()) // zero-filled by default
	assert.Nil(t, tf.DataSource())

	// Energies returns a copy: mutating it must not leak into the factor.
	leaked := tf.Energies()
	leaked[0] = 99
	assert.Zero(t, tf.Energies()[0])
}

// TestJointIndex_RowMajorOrder pins the table enumeration order: for
// cardinalities [2,2] the joint states run (0,0), (0,1), (1,0), (1,1), i.e.
// the LAST scope variable varies fastest.
func TestJointIndex_RowMajorOrder(t *testing.T) {
	tf, err := factor.NewTableFactor([]int{0, 1}, []int{2, 2})
	require.NoError(t, err)

	order := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for want, scoped := range order {
		got, errIdx := tf.JointIndex(scoped)
		require.NoError(t, errIdx)
		assert.Equal(t, want, got, "state %v", scoped)
	}

	// Three-variable scope with mixed cardinalities [2,3,2]:
	// idx(1, 2, 1) = (1·3 + 2)·2 + 1 = 11 (the last joint state).
	tf3, err := factor.NewTableFactor([]int{4, 2, 7}, []int{2, 3, 2})
	require.NoError(t, err)
	idx, err := tf3.JointIndex([]int{1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 11, idx)
	assert.Equal(t, 12, tf3.TableSize())
}

// TestEvaluateEnergy covers lookups and both failure modes.
func TestEvaluateEnergy(t *testing.T) {
	tf, err := factor.NewTableFactor([]int{0, 1}, []int{2, 2},
		factor.WithEnergies([]float64{0, 1, 1, 0}))
	require.NoError(t, err)

	e, err := tf.EvaluateEnergy([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, e)

	e, err = tf.EvaluateEnergy([]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)

	// Wrong assignment length.
	_, err = tf.EvaluateEnergy([]int{1})
	assert.ErrorIs(t, err, factor.ErrDimensionMismatch)

	// Component outside its cardinality.
	_, err = tf.EvaluateEnergy([]int{0, 2})
	assert.ErrorIs(t, err, factor.ErrIndexOutOfRange)
}

// TestSetEnergy verifies single-entry updates and bounds checks.
func TestSetEnergy(t *testing.T) {
	tf, err := factor.NewTableFactor([]int{0}, []int{3})
	require.NoError(t, err)

	require.NoError(t, tf.SetEnergy(2, 5.5))
	e, err := tf.EvaluateEnergy([]int{2})
	require.NoError(t, err)
	assert.Equal(t, 5.5, e)

	assert.ErrorIs(t, tf.SetEnergy(3, 1), factor.ErrIndexOutOfRange)
	assert.ErrorIs(t, tf.SetEnergy(-1, 1), factor.ErrIndexOutOfRange)
	assert.ErrorIs(t, tf.SetEnergies([]float64{1, 2}), factor.ErrDimensionMismatch)
}

// TestMaterializeEnergyTable verifies the pull-from-source protocol.
func TestMaterializeEnergyTable(t *testing.T) {
	src := factor.NewDataSource([]float64{1, 2, 3, 4})
	tf, err := factor.NewTableFactor([]int{0, 1}, []int{2, 2},
		factor.WithDataSource(src))
	require.NoError(t, err)

	// Before materialization the factor still holds its zero table.
	assert.Equal(t, make([]float64, 4), tf.Energies())

	require.NoError(t, tf.MaterializeEnergyTable())
	assert.Equal(t, []float64{1, 2, 3, 4}, tf.Energies())

	// Updating the source changes nothing until the next materialization.
	src.SetEnergies([]float64{9, 9, 9, 9})
	assert.Equal(t, []float64{1, 2, 3, 4}, tf.Energies())
	require.NoError(t, tf.MaterializeEnergyTable())
	assert.Equal(t, []float64{9, 9, 9, 9}, tf.Energies())

	// A source of the wrong size is rejected.
	src.SetEnergies([]float64{1, 2})
	assert.ErrorIs(t, tf.MaterializeEnergyTable(), factor.ErrDimensionMismatch)

	// A detached factor materializes as a no-op.
	detached, err := factor.NewTableFactor([]int{0}, []int{2},
		factor.WithEnergies([]float64{7, 8}))
	require.NoError(t, err)
	require.NoError(t, detached.MaterializeEnergyTable())
	assert.Equal(t, []float64{7, 8}, detached.Energies())
}

// TestClone_DeepCopySharedSource verifies table independence and data-source
// identity sharing across clones.
func TestClone_DeepCopySharedSource(t *testing.T) {
	src := factor.NewDataSource([]float64{0, 0})
	original, err := factor.NewTableFactor([]int{5}, []int{2},
		factor.WithEnergies([]float64{1, 2}), factor.WithDataSource(src))
	require.NoError(t, err)

	clone, ok := original.Clone().(*factor.TableFactor)
	require.True(t, ok)

	// Mutating the original's table leaves the clone untouched.
	require.NoError(t, original.SetEnergy(0, 42))
	assert.Equal(t, []float64{42, 2}, original.Energies())
	assert.Equal(t, []float64{1, 2}, clone.Energies())

	// Both still reference the very same DataSource object.
	assert.Same(t, src, clone.DataSource())
	assert.Equal(t, original.DataSource().ID(), clone.DataSource().ID())
}

// TestDataSource_Identity verifies that identities are stable and distinct.
func TestDataSource_Identity(t *testing.T) {
	a := factor.NewDataSource([]float64{1})
	b := factor.NewDataSource([]float64{1})
	assert.NotEqual(t, a.ID(), b.ID()) // distinct blobs, distinct identities
	assert.Equal(t, 1, a.Len())

	// A source rebuilt under the same identity compares equal by ID.
	rebuilt := factor.NewDataSourceWithID(a.ID(), a.Energies())
	assert.Equal(t, a.ID(), rebuilt.ID())
	assert.Equal(t, a.Energies(), rebuilt.Energies())
}

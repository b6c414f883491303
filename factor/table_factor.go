package factor

import "fmt"

// TableFactor is the concrete Factor: an explicit energy table over the joint
// states of its scope.
//
// The table holds prod(cards) energies in row-major order with the last scope
// variable varying fastest (see the package documentation for the exact
// index formula). A zero-filled table is a valid neutral factor.
type TableFactor struct {
	scope  []int       // ordered, duplicate-free variable indices
	cards  []int       // cards[i] = cardinality of scope[i]
	table  []float64   // len(table) == prod(cards)
	source *DataSource // optional shared table source, nil if detached
}

// compile-time contract check
var _ Factor = (*TableFactor)(nil)

// NewTableFactor builds a TableFactor over the given scope.
//
// Steps:
//  1. Reject an empty scope (ErrEmptyScope) and a cards slice whose length
//     differs from the scope (ErrDimensionMismatch).
//  2. Reject duplicate scope variables (ErrDuplicateScopeVar), negative
//     variable indices (ErrIndexOutOfRange), and cardinalities below 1
//     (ErrInvalidCardinality).
//  3. Copy scope and cards, apply options, then size-check any table set via
//     WithEnergies against prod(cards); allocate a zero table otherwise.
//
// Complexity: O(k + prod(cards)) for scope size k.
func NewTableFactor(scope, cards []int, opts ...TableFactorOption) (*TableFactor, error) {
	// 1. Shape validation.
	if len(scope) == 0 {
		return nil, ErrEmptyScope
	}
	if len(cards) != len(scope) {
		return nil, fmt.Errorf("%w: %d cardinalities for %d scope variables",
			ErrDimensionMismatch, len(cards), len(scope))
	}

	// 2. Per-entry validation.
	seen := make(map[int]struct{}, len(scope))
	for i, v := range scope {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative variable index %d", ErrIndexOutOfRange, v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: variable %d", ErrDuplicateScopeVar, v)
		}
		seen[v] = struct{}{}
		if cards[i] < 1 {
			return nil, fmt.Errorf("%w: cardinality %d for variable %d",
				ErrInvalidCardinality, cards[i], v)
		}
	}

	// 3. Copy inputs so the factor owns its state, then apply options.
	tf := &TableFactor{
		scope: append([]int(nil), scope...),
		cards: append([]int(nil), cards...),
	}
	for _, opt := range opts {
		opt(tf)
	}

	size := tf.TableSize()
	if tf.table == nil {
		tf.table = make([]float64, size)
	} else if len(tf.table) != size {
		return nil, fmt.Errorf("%w: energy table has %d entries, scope needs %d",
			ErrDimensionMismatch, len(tf.table), size)
	}

	return tf, nil
}

// Scope returns the ordered variable indices. The slice is shared with the
// factor; treat it as read-only.
func (tf *TableFactor) Scope() []int {
	return tf.scope
}

// Cardinalities returns a copy of the per-scope-variable cardinalities.
func (tf *TableFactor) Cardinalities() []int {
	return append([]int(nil), tf.cards...)
}

// TableSize returns prod(cards), the number of joint states of the scope.
func (tf *TableFactor) TableSize() int {
	size := 1
	for _, c := range tf.cards {
		size *= c
	}

	return size
}

// DataSource returns the referenced shared source, or nil if detached.
func (tf *TableFactor) DataSource() *DataSource {
	return tf.source
}

// Energies returns a copy of the current energy table.
func (tf *TableFactor) Energies() []float64 {
	return append([]float64(nil), tf.table...)
}

// SetEnergies replaces the energy table. The new table must hold exactly
// prod(cards) entries; ErrDimensionMismatch otherwise.
func (tf *TableFactor) SetEnergies(energies []float64) error {
	if len(energies) != tf.TableSize() {
		return fmt.Errorf("%w: energy table has %d entries, scope needs %d",
			ErrDimensionMismatch, len(energies), tf.TableSize())
	}
	tf.table = append([]float64(nil), energies...)

	return nil
}

// SetEnergy overwrites a single joint-state entry.
// Returns ErrIndexOutOfRange for an invalid joint index.
func (tf *TableFactor) SetEnergy(joint int, energy float64) error {
	if joint < 0 || joint >= len(tf.table) {
		return fmt.Errorf("%w: joint state %d of %d", ErrIndexOutOfRange, joint, len(tf.table))
	}
	tf.table[joint] = energy

	return nil
}

// JointIndex maps a scoped assignment to its energy-table index.
//
// scoped must have one component per scope variable, each inside its
// cardinality; the index accumulates row-major with the last scope variable
// fastest: idx = ((s0·c1 + s1)·c2 + s2)·...
func (tf *TableFactor) JointIndex(scoped []int) (int, error) {
	if len(scoped) != len(tf.scope) {
		return 0, fmt.Errorf("%w: %d state components for %d scope variables",
			ErrDimensionMismatch, len(scoped), len(tf.scope))
	}

	idx := 0
	for i, s := range scoped {
		if s < 0 || s >= tf.cards[i] {
			return 0, fmt.Errorf("%w: state %d for variable %d (cardinality %d)",
				ErrIndexOutOfRange, s, tf.scope[i], tf.cards[i])
		}
		idx = idx*tf.cards[i] + s
	}

	return idx, nil
}

// EvaluateEnergy returns the table entry for the scoped assignment.
// Complexity: O(k) for scope size k.
func (tf *TableFactor) EvaluateEnergy(scoped []int) (float64, error) {
	idx, err := tf.JointIndex(scoped)
	if err != nil {
		return 0, err
	}

	return tf.table[idx], nil
}

// MaterializeEnergyTable copies the data source's current table into the
// factor. A detached factor keeps its table and returns nil; a source table
// of the wrong size fails with ErrDimensionMismatch.
func (tf *TableFactor) MaterializeEnergyTable() error {
	if tf.source == nil {
		return nil
	}

	src := tf.source.Energies()
	if len(src) != tf.TableSize() {
		return fmt.Errorf("%w: data source %s holds %d entries, scope needs %d",
			ErrDimensionMismatch, tf.source.ID(), len(src), tf.TableSize())
	}
	// Copy, never alias: the source stays shared, the table stays private.
	tf.table = src

	return nil
}

// Clone returns an independent deep copy of the factor. The energy table is
// copied; the DataSource reference (if any) is shared, not cloned.
func (tf *TableFactor) Clone() Factor {
	return &TableFactor{
		scope:  append([]int(nil), tf.scope...),
		cards:  append([]int(nil), tf.cards...),
		table:  append([]float64(nil), tf.table...),
		source: tf.source,
	}
}

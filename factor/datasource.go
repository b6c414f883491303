package factor

import "github.com/google/uuid"

// DataSource is an identity-bearing, shareable energy table.
//
// Zero or more factors (possibly across several factor graphs) reference the
// same DataSource, so tied parameters live in one place: update the source,
// re-materialize the factors, and every referencer sees the new table. The
// identity survives encoding round-trips, which is how decoded factors are
// re-attached to a shared source.
//
// Ownership is shared by plain pointer: the source lives as long as any
// factor or graph still references it.
type DataSource struct {
	id       uuid.UUID
	energies []float64
}

// NewDataSource creates a DataSource with a fresh random identity and a
// private copy of the given energies.
func NewDataSource(energies []float64) *DataSource {
	return NewDataSourceWithID(uuid.New(), energies)
}

// NewDataSourceWithID creates a DataSource under a caller-chosen identity.
// Used when decoding a persisted graph, so references resolve to the same
// logical source.
func NewDataSourceWithID(id uuid.UUID, energies []float64) *DataSource {
	return &DataSource{
		id:       id,
		energies: append([]float64(nil), energies...),
	}
}

// ID returns the source's identity.
func (ds *DataSource) ID() uuid.UUID {
	return ds.id
}

// Len returns the number of energies currently held.
func (ds *DataSource) Len() int {
	return len(ds.energies)
}

// Energies returns a copy of the current table.
func (ds *DataSource) Energies() []float64 {
	return append([]float64(nil), ds.energies...)
}

// SetEnergies replaces the table. Referencing factors pick the change up on
// their next MaterializeEnergyTable.
func (ds *DataSource) SetEnergies(energies []float64) {
	ds.energies = append([]float64(nil), energies...)
}

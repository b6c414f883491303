package builder_test

import (
	"testing"

	"github.com/katalvlaran/factorgraph/builder" // package under test
	"github.com/katalvlaran/factorgraph/factor"
	"github.com/katalvlaran/factorgraph/factorgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topology runs ConnectComponents and returns (acyclic, connected, edges).
func topology(t *testing.T, fg *factorgraph.FactorGraph) (bool, bool, int) {
	t.Helper()
	require.NoError(t, fg.ConnectComponents())

	acyclic, err := fg.IsAcyclicGraph()
	require.NoError(t, err)
	connected, err := fg.IsConnectedGraph()
	require.NoError(t, err)
	edges, err := fg.NumEdges()
	require.NoError(t, err)

	return acyclic, connected, edges
}

// TestChain verifies the path topology is a tree with n-1 edges.
func TestChain(t *testing.T) {
	fg, err := builder.Chain(5)
	require.NoError(t, err)

	assert.Equal(t, 5, fg.NumVariables())
	assert.Equal(t, 4, fg.NumVectors())
	assert.Equal(t, []int{2, 2, 2, 2, 2}, fg.Cardinalities())

	acyclic, connected, edges := topology(t, fg)
	assert.True(t, acyclic)
	assert.True(t, connected)
	assert.Equal(t, 4, edges)

	// Below the minimum.
	_, err = builder.Chain(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVariables)
}

// TestRing verifies the closed chain is connected and cyclic.
func TestRing(t *testing.T) {
	fg, err := builder.Ring(4)
	require.NoError(t, err)
	assert.Equal(t, 4, fg.NumVectors())

	acyclic, connected, edges := topology(t, fg)
	assert.False(t, acyclic)
	assert.True(t, connected)
	assert.Equal(t, 3, edges) // the closing factor is the redundant link

	_, err = builder.Ring(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVariables)
}

// TestGrid verifies lattice shape: r·c variables, 2rc-r-c factors, cyclic
// for any 2x2-or-larger block.
func TestGrid(t *testing.T) {
	fg, err := builder.Grid(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, fg.NumVariables())
	assert.Equal(t, 2*3*4-3-4, fg.NumVectors()) // 17 lattice links

	acyclic, connected, edges := topology(t, fg)
	assert.False(t, acyclic)
	assert.True(t, connected)
	assert.Equal(t, 11, edges) // spanning edges only: n-1

	// A 1xN grid degenerates into a chain (still a tree).
	line, err := builder.Grid(1, 5)
	require.NoError(t, err)
	acyclic, connected, edges = topology(t, line)
	assert.True(t, acyclic)
	assert.True(t, connected)
	assert.Equal(t, 4, edges)

	_, err = builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrInvalidGrid)
}

// TestComplete verifies the all-pairs topology.
func TestComplete(t *testing.T) {
	fg, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 6, fg.NumVectors()) // C(4,2)

	acyclic, connected, edges := topology(t, fg)
	assert.False(t, acyclic)
	assert.True(t, connected)
	assert.Equal(t, 3, edges)

	_, err = builder.Complete(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVariables)
}

// TestOptions covers cardinality, unaries, seeding, and the shared source.
func TestOptions(t *testing.T) {
	// Cardinality shapes every variable and table.
	fg, err := builder.Chain(3, builder.WithCardinality(4))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4}, fg.Cardinalities())
	tf, ok := fg.Factors()[0].(*factor.TableFactor)
	require.True(t, ok)
	assert.Equal(t, 16, tf.TableSize())

	_, err = builder.Chain(3, builder.WithCardinality(0))
	assert.ErrorIs(t, err, builder.ErrInvalidCardinality)

	// Unaries add one factor per variable.
	fg, err = builder.Chain(3, builder.WithUnaries())
	require.NoError(t, err)
	assert.Equal(t, 2+3, fg.NumVectors())

	// Same seed, same graph: energies must match entry for entry.
	a, err := builder.Chain(4, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Chain(4, builder.WithSeed(7))
	require.NoError(t, err)
	for i := range a.Factors() {
		ta := a.Factors()[i].(*factor.TableFactor)
		tb := b.Factors()[i].(*factor.TableFactor)
		assert.Equal(t, ta.Energies(), tb.Energies())
	}

	// Different seed, different tables.
	c, err := builder.Chain(4, builder.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t,
		a.Factors()[0].(*factor.TableFactor).Energies(),
		c.Factors()[0].(*factor.TableFactor).Energies())

	// Shared source ties every pairwise factor to one registered table.
	tied, err := builder.Chain(3, builder.WithSharedSource(), builder.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, tied.DataSources(), 1)
	src := tied.DataSources()[0]
	for _, f := range tied.Factors() {
		assert.Same(t, src, f.(*factor.TableFactor).DataSource())
	}

	// Materializing through the graph lands the tied table everywhere.
	require.NoError(t, tied.ComputeEnergies())
	want := src.Energies()
	for _, f := range tied.Factors() {
		assert.Equal(t, want, f.(*factor.TableFactor).Energies())
	}
}

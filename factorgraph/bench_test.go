package factorgraph_test

import (
	"testing"

	"github.com/katalvlaran/factorgraph/builder"
)

// BenchmarkConnectComponents measures a full topology rebuild on a 50x50
// grid (2500 variables, 4900 pairwise factors).
func BenchmarkConnectComponents(b *testing.B) {
	fg, err := builder.Grid(50, 50)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err = fg.ConnectComponents(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluateEnergy measures total-energy evaluation on the same grid
// with seeded random tables.
func BenchmarkEvaluateEnergy(b *testing.B) {
	fg, err := builder.Grid(50, 50, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	state := make([]int, fg.NumVariables()) // all-zeros assignment
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = fg.EvaluateEnergy(state); err != nil {
			b.Fatal(err)
		}
	}
}

package dot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/factorgraph/factorgraph"
)

// Marshal renders the bipartite topology of fg as a DOT graph string.
//
// Node naming: variable i is "v<i>", factor j (insertion order) is "f<j>".
// The render reads only cardinalities and factor scopes, so it works on
// graphs whose topology was never built and never fails.
func Marshal(fg *factorgraph.FactorGraph) string {
	var b strings.Builder
	b.WriteString("graph factorgraph {\n")
	b.WriteString("  node [fontsize=10]\n\n")

	// Variables first, in index order.
	for v, card := range fg.Cardinalities() {
		fmt.Fprintf(&b, "  v%d [shape=ellipse label=\"x%d (card %d)\"]\n", v, v, card)
	}
	b.WriteString("\n")

	// Factors as boxes, in insertion order, each tied to its scope.
	for fi, f := range fg.Factors() {
		scope := f.Scope()
		fmt.Fprintf(&b, "  f%d [shape=box label=\"%s\"]\n", fi, scopeLabel(scope))
		for _, v := range scope {
			fmt.Fprintf(&b, "  f%d -- v%d\n", fi, v)
		}
	}

	b.WriteString("}\n")

	return b.String()
}

// scopeLabel formats a scope as "phi(x0,x1)".
func scopeLabel(scope []int) string {
	parts := make([]string, len(scope))
	for i, v := range scope {
		parts[i] = fmt.Sprintf("x%d", v)
	}

	return "phi(" + strings.Join(parts, ",") + ")"
}

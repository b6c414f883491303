package factorgraph

// FeatureType is the degenerate feature-type tag generic dataset machinery
// expects from anything it enumerates.
type FeatureType int

// FeatureClass is the degenerate feature-class tag counterpart.
type FeatureClass int

// A factor graph is not a fixed-shape feature vector, so both tags collapse
// to their "any" value.
const (
	FeatureAny FeatureType  = 0
	ClassAny   FeatureClass = 0
)

// FeatureContainer is the compatibility contract external generic-dataset
// machinery enumerates factor graphs through, uniformly with other data
// types. It adds nothing to the graph semantics.
type FeatureContainer interface {
	NumVectors() int
	FeatureType() FeatureType
	FeatureClass() FeatureClass
}

// featureAdapter keeps the container surface off the core FactorGraph type.
type featureAdapter struct {
	fg *FactorGraph
}

// AsFeatureContainer wraps fg in a thin adapter satisfying FeatureContainer.
func AsFeatureContainer(fg *FactorGraph) FeatureContainer {
	return featureAdapter{fg: fg}
}

// NumVectors returns the number of factors.
func (a featureAdapter) NumVectors() int { return a.fg.NumVectors() }

// FeatureType always reports FeatureAny.
func (a featureAdapter) FeatureType() FeatureType { return FeatureAny }

// FeatureClass always reports ClassAny.
func (a featureAdapter) FeatureClass() FeatureClass { return ClassAny }

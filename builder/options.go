// Package builder defines configuration options and sentinel errors for the
// canned factor-graph constructors.
package builder

import (
	"errors"
	"math/rand"
)

// Minimum variable counts per topology.
const (
	minChainVars    = 2
	minRingVars     = 3
	minCompleteVars = 2
)

// defaultCardinality is the per-variable state count unless overridden.
const defaultCardinality = 2

// Sentinel errors for the builder constructors.
var (
	// ErrTooFewVariables indicates n below the topology's minimum.
	ErrTooFewVariables = errors.New("builder: too few variables for topology")

	// ErrInvalidCardinality indicates a cardinality below 1.
	ErrInvalidCardinality = errors.New("builder: cardinality must be at least 1")

	// ErrInvalidGrid indicates a non-positive grid dimension.
	ErrInvalidGrid = errors.New("builder: grid dimensions must be positive")
)

// config is the resolved builder configuration; no global state.
type config struct {
	cardinality  int
	rng          *rand.Rand // nil means zero-filled tables
	unaries      bool
	sharedSource bool
}

// Option customizes a constructor by mutating the config before any factor
// is built.
type Option func(*config)

// WithCardinality sets the state count of every variable (default 2).
// Values below 1 surface as ErrInvalidCardinality from the constructor.
func WithCardinality(k int) Option {
	return func(c *config) { c.cardinality = k }
}

// WithSeed fills energy tables with deterministic random values in [0, 1)
// drawn from a generator seeded with s, instead of zeros.
func WithSeed(s int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(s)) }
}

// WithUnaries adds one unary factor per variable on top of the topology's
// pairwise factors.
func WithUnaries() Option {
	return func(c *config) { c.unaries = true }
}

// WithSharedSource backs every pairwise factor with a single shared
// DataSource, registered on the graph, so all pairwise tables are tied.
// The factors still need a ComputeEnergies pass to materialize it.
func WithSharedSource() Option {
	return func(c *config) { c.sharedSource = true }
}

// resolve applies opts over the defaults.
func resolve(opts []Option) config {
	cfg := config{cardinality: defaultCardinality}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

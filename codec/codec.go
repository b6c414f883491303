// Package codec implements the versioned YAML encoding of factor graphs.
package codec

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/factorgraph/factor"
	"github.com/katalvlaran/factorgraph/factorgraph"
)

// Version is the document version this package reads and writes.
const Version = 1

// Sentinel errors for encoding and decoding.
var (
	// ErrUnsupportedVersion indicates a document version other than Version.
	ErrUnsupportedVersion = errors.New("codec: unsupported document version")

	// ErrUnsupportedFactor indicates a factor that is not a TableFactor and
	// therefore cannot round-trip through the explicit schema.
	ErrUnsupportedFactor = errors.New("codec: only table factors can be encoded")

	// ErrUnknownDataSource indicates a factor referencing a data-source id
	// the document does not declare.
	ErrUnknownDataSource = errors.New("codec: unknown data source reference")

	// ErrInvalidDocument indicates malformed scope, id, or table data.
	ErrInvalidDocument = errors.New("codec: invalid document")
)

// document is the top-level version-1 schema.
type document struct {
	Version       int              `yaml:"version"`
	Cardinalities []int            `yaml:"cardinalities"`
	DataSources   []sourceDocument `yaml:"data_sources,omitempty"`
	Factors       []factorDocument `yaml:"factors"`
}

type sourceDocument struct {
	ID       string    `yaml:"id"`
	Energies []float64 `yaml:"energies"`
}

type factorDocument struct {
	Scope      []int     `yaml:"scope"`
	Energies   []float64 `yaml:"energies"`
	DataSource string    `yaml:"data_source,omitempty"`
}

// Encode serializes fg into a version-1 YAML document.
//
// Every data source reachable from the graph is emitted once: the graph's
// registered list first, then any source referenced by a factor but never
// registered. Factors are emitted in insertion order.
func Encode(fg *factorgraph.FactorGraph) ([]byte, error) {
	doc := document{
		Version:       Version,
		Cardinalities: fg.Cardinalities(),
	}

	// Registered sources, deduplicated by identity.
	seen := make(map[uuid.UUID]bool)
	emit := func(src *factor.DataSource) {
		if src == nil || seen[src.ID()] {
			return
		}
		seen[src.ID()] = true
		doc.DataSources = append(doc.DataSources, sourceDocument{
			ID:       src.ID().String(),
			Energies: src.Energies(),
		})
	}
	for _, src := range fg.DataSources() {
		emit(src)
	}

	for fi, f := range fg.Factors() {
		tf, ok := f.(*factor.TableFactor)
		if !ok {
			return nil, fmt.Errorf("%w: factor %d is %T", ErrUnsupportedFactor, fi, f)
		}

		fd := factorDocument{
			Scope:    tf.Scope(),
			Energies: tf.Energies(),
		}
		if src := tf.DataSource(); src != nil {
			emit(src) // referenced but possibly never registered
			fd.DataSource = src.ID().String()
		}
		doc.Factors = append(doc.Factors, fd)
	}

	return yaml.Marshal(doc)
}

// Decode parses a version-1 YAML document into a fresh FactorGraph.
//
// Data sources are rebuilt under their encoded identities and registered on
// the graph; factors referencing the same id share one rebuilt source.
// Factor cardinalities are derived from the document's cardinalities via the
// scope, so out-of-range scope indices fail here, not lazily later.
func Decode(data []byte) (*factorgraph.FactorGraph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	fg := factorgraph.New(doc.Cardinalities)

	// Rebuild shared sources under their persisted identities.
	sources := make(map[string]*factor.DataSource, len(doc.DataSources))
	for _, sd := range doc.DataSources {
		id, err := uuid.Parse(sd.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: data source id %q", ErrInvalidDocument, sd.ID)
		}
		src := factor.NewDataSourceWithID(id, sd.Energies)
		sources[sd.ID] = src
		if err = fg.AddDataSource(src); err != nil {
			return nil, err
		}
	}

	for fi, fd := range doc.Factors {
		cards := make([]int, len(fd.Scope))
		for i, v := range fd.Scope {
			if v < 0 || v >= len(doc.Cardinalities) {
				return nil, fmt.Errorf("%w: factor %d scope variable %d outside %d variables",
					ErrInvalidDocument, fi, v, len(doc.Cardinalities))
			}
			cards[i] = doc.Cardinalities[v]
		}

		opts := []factor.TableFactorOption{factor.WithEnergies(fd.Energies)}
		if fd.DataSource != "" {
			src, ok := sources[fd.DataSource]
			if !ok {
				return nil, fmt.Errorf("%w: factor %d references %q",
					ErrUnknownDataSource, fi, fd.DataSource)
			}
			opts = append(opts, factor.WithDataSource(src))
		}

		tf, err := factor.NewTableFactor(fd.Scope, cards, opts...)
		if err != nil {
			return nil, fmt.Errorf("codec: factor %d: %w", fi, err)
		}
		if err = fg.AddFactor(tf); err != nil {
			return nil, err
		}
	}

	return fg, nil
}

// Package codec persists factor graphs as an explicit, versioned YAML
// document over the fixed field set {cardinalities, factors, data sources} —
// no runtime reflection, the schema is static.
//
// Document (version 1):
//
//	version: 1
//	cardinalities: [2, 2, 2]
//	data_sources:
//	  - id: 6d1f...-...            # uuid, the shared identity
//	    energies: [0, 1, 1, 0]
//	factors:
//	  - scope: [0, 1]
//	    energies: [0, 1, 1, 0]
//	    data_source: 6d1f...-...   # optional reference by id
//
// Data sources are referenced by UUID, so a decoded graph re-shares them:
// two factors that pointed at one source before encoding point at one source
// after decoding. Only table-backed factors (factor.TableFactor) round-trip;
// foreign Factor implementations fail with ErrUnsupportedFactor.
//
// Errors:
//
//   - ErrUnsupportedVersion: document version this package does not speak.
//   - ErrUnsupportedFactor: a factor that is not a TableFactor.
//   - ErrUnknownDataSource: a factor references an id the document lacks.
//   - ErrInvalidDocument: malformed scope, id, or table data.
package codec

// Package domain defines the core business entities for relsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FieldKind: How a custom field participates in relationship resolution
//   - FieldValue: A raw custom-field value split into items, tagged with its Shape
//   - Resolution: Resolved remote IDs, re-encoded in the Shape of the input
//   - Blog: A remote instance that content is cross-posted to
//   - Term, Taxonomy: Local taxonomy records used for slug lookups
//   - CrosspostMapping: A local post ID paired with its remote counterpart
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

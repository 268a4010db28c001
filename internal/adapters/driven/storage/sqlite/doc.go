// Package sqlite provides a SQLite-based implementation of the relsync stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. One database connection backs several port interfaces:
//
//   - BlogStore: registered remote blogs
//   - CrosspostMap: local post ID to remote post ID, per blog
//   - ProductMappingStore: independent product mappings, per blog
//   - ContentStore: local posts, terms and taxonomies
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.relsync/data/relsync.db
package sqlite

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for relationship resolution to work:
//
//   - FieldRegistry: Declared post and term relationship field names
//   - CrosspostMap: Local post ID to remote post ID lookups per blog
//   - ContentStore: Local post types, terms and taxonomies
//   - TermSearcher: Remote term lookup by slug
//   - BlogStore: Registered remote blogs
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ProductCatalog: Product-aware lookups. Without it, products resolve like posts.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

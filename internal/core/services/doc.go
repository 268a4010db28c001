// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The relationship resolver is stateless: every call reads the field
// registry, the mapping store and (for term fields) the remote blog
// afresh, so concurrent calls for different fields, objects or blogs
// need no coordination.
package services

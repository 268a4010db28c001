// Package file provides the TOML file-backed configuration store.
//
// Keys are addressed in dot notation ("relationships.post_fields") and are
// written back as nested TOML tables. Watch reloads the store when another
// process edits the file.
package file

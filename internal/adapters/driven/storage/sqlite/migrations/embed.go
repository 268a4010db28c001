// Package migrations embeds the SQL schema for the SQLite store.
package migrations

import "embed"

// FS holds the *.up.sql files, applied in version order.
//
//go:embed *.sql
var FS embed.FS

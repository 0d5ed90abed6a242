// Package migrations contains the embedded goose SQL migrations for the
// Postgres schema.
package migrations

import "embed"

// FS holds every migration file. goose reads it with "." as the directory.
//
//go:embed *.sql
var FS embed.FS

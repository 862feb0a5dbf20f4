// Package migrations holds the goose SQL migrations for the storylingo schema.
package migrations

import "embed"

// FS contains every *.sql migration, embedded so the server binary can
// migrate without access to the source tree.
//
//go:embed *.sql
var FS embed.FS

// Package migrations embeds the goose SQL migrations so the server binary and
// the integration tests apply the same schema.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS

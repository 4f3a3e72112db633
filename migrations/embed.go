// Package migrations embeds the goose SQL migrations. They are applied by the
// API on boot when AUTO_MIGRATE is set and by the integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Package migrations embeds the goose migrations for the postgres events table.
package migrations

import (
	"embed"
)

// FS holds the numbered SQL migrations at its root.
//
//go:embed *.sql
var FS embed.FS

// Package migrations embeds the schema migrations for each supported
// database so the binary can migrate itself on startup.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS

//go:embed postgres/*.sql
var Postgres embed.FS

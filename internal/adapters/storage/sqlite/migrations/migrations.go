// Package migrations embeds the ordered SQL schema migrations.
package migrations

import "embed"

// FS holds the .sql migration files, applied in filename order.
//
//go:embed *.sql
var FS embed.FS

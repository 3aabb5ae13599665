// Package migrations embeds the goose SQL migrations for the client's
// local sqlite store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

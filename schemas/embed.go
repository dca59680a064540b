// Package schemas embeds the MySQL tables of the portal record store.
package schemas

import "embed"

// Migrations holds migrations/NNN_*.sql, applied in name order by
// database.Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

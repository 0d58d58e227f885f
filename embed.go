// Package crystalbot holds module-level embedded assets.
package crystalbot

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS

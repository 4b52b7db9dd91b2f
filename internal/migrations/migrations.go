// Package migrations хранит SQL-миграции Postgres-хранилища.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS

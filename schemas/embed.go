// Package schemas provides the SQL schema of word list databases.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

package migrations

import "embed"

// FS holds the SQL migrations applied by db.Migrate through the
// golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version uint = 1

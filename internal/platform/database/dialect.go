package database

import (
	"github.com/doug-martin/goqu/v9"
	// Registers the goqu dialects used by the stores.
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

// Dialect identifies the SQL flavour spoken by a connection.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// Driver names registered with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DialectForDriver maps a database/sql driver name to its dialect.
// Unknown drivers are treated as PostgreSQL.
func DialectForDriver(driverName string) Dialect {
	if driverName == DriverSQLite {
		return DialectSQLite
	}
	return DialectPostgres
}

// Driver returns the database/sql driver name for d.
func (d Dialect) Driver() string {
	if d == DialectSQLite {
		return DriverSQLite
	}
	return DriverPostgres
}

// SupportsReturning reports whether INSERT ... RETURNING can be used.
func (d Dialect) SupportsReturning() bool {
	return d == DialectPostgres
}

// Builder returns the goqu dialect wrapper for d.
func (d Dialect) Builder() goqu.DialectWrapper {
	return goqu.Dialect(string(d))
}

// Package database provides the SQL implementations of the persistence
// interfaces defined in internal/store, together with connection setup and
// schema migrations.
//
// Two backends are supported: PostgreSQL through the pgx stdlib driver, and
// an in-memory SQLite database used for test mode. Queries are built with
// goqu so that one store implementation serves both dialects, and rows are
// scanned into domain structs with sqlx.
package database

package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/store"
)

// sqlBuilder is embedded by every store. It knows the dialect of the
// connection it was built for.
type sqlBuilder struct {
	dialect Dialect
	goqu    goqu.DialectWrapper
}

func newSQLBuilder(db store.DBTX) sqlBuilder {
	d := DialectForDriver(db.DriverName())
	return sqlBuilder{dialect: d, goqu: d.Builder()}
}

type toSQLer interface {
	ToSQL() (string, []interface{}, error)
}

// build renders a goqu dataset to SQL and arguments.
func build(ds toSQLer) (string, []interface{}, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build query: %w", err)
	}
	return query, args, nil
}

// insertReturningID runs an INSERT on table with the given record and returns
// the generated id. PostgreSQL uses RETURNING; SQLite reports the row id
// through LastInsertId.
func (b sqlBuilder) insertReturningID(
	ctx context.Context,
	db store.DBTX,
	table string,
	record goqu.Record,
) (int64, error) {
	ds := b.goqu.Insert(table).Rows(record).Prepared(true)

	if b.dialect.SupportsReturning() {
		query, args, err := build(ds.Returning("id"))
		if err != nil {
			return 0, err
		}
		var id int64
		if err := sqlx.GetContext(ctx, db, &id, query, args...); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := build(ds)
	if err != nil {
		return 0, err
	}
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// count runs a SELECT COUNT(*) over table with the given conditions.
func (b sqlBuilder) count(
	ctx context.Context,
	db store.DBTX,
	table string,
	where ...goqu.Expression,
) (int64, error) {
	query, args, err := build(b.goqu.From(table).
		Select(goqu.COUNT(goqu.Star())).
		Where(where...).
		Prepared(true))
	if err != nil {
		return 0, err
	}

	var n int64
	if err := sqlx.GetContext(ctx, db, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

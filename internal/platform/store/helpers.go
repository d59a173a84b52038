package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	perr "panelgrid/internal/platform/errors"
)

// Scalar reads the first column of the first row into T. Empty results
// surface as perr.ErrNotFound.
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		if perr.Is(err, pgx.ErrNoRows) {
			return zero, perr.ErrNotFound
		}
		return zero, perr.FromPostgresf(err, "scalar query")
	}
	return v, nil
}

// One maps exactly one row through scan. No rows is perr.ErrNotFound and
// more than one row is an error, so callers never silently drop data.
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, perr.FromPostgresf(err, "query one")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, perr.FromPostgresf(err, "query one")
		}
		return zero, perr.ErrNotFound
	}
	item, err := scan(&rowCursor{rows: rows})
	if err != nil {
		return zero, err
	}
	if rows.Next() {
		return zero, fmt.Errorf("expected 1 row, got more")
	}
	return item, rows.Err()
}

// Many maps every row through scan into a slice
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgresf(err, "query many")
	}
	defer rows.Close()

	var out []T
	cur := &rowCursor{rows: rows}
	for rows.Next() {
		item, err := scan(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// rowCursor presents the current Rows position as a single Row
type rowCursor struct{ rows Rows }

func (r *rowCursor) Scan(dest ...any) error { return r.rows.Scan(dest...) }

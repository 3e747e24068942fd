package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NotDeleted is the live-row predicate shared by every soft-deletable table.
func NotDeleted(alias string) sq.Eq {
	col := "deleted_at"
	if alias != "" {
		col = alias + ".deleted_at"
	}
	return sq.Eq{col: nil}
}

// GetOne runs a built query and scans exactly one row into dst.
func GetOne(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, query, args...)
}

// SelectAll runs a built query and scans all rows into dst (a pointer to a slice).
func SelectAll(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, query, args...)
}

// ExecAffected runs a built statement and returns the number of affected rows.
func ExecAffected(ctx context.Context, q Querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count runs a built COUNT query.
func Count(ctx context.Context, q Querier, b sq.Sqlizer) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ColumnList joins column names for a RETURNING clause.
func ColumnList(cols []string) string {
	return strings.Join(cols, ", ")
}

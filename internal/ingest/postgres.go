package ingest

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"etlcore/internal/apperr"
	"etlcore/internal/frame"
	"etlcore/internal/schema"
)

// PostgresSource reads rows from a Postgres-compatible table through a
// connection pool. database/sql is confined to this adapter; no other
// package imports it directly.
type PostgresSource struct {
	db        *sql.DB
	tableName string
}

// OpenPostgresSource opens a pooled connection using the pgx stdlib
// driver.
func OpenPostgresSource(dsn, tableName string) (*PostgresSource, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, apperr.IngressError("failed to open postgres connection", err)
	}
	return &PostgresSource{db: db, tableName: tableName}, nil
}

// Close releases the underlying connection pool.
func (p *PostgresSource) Close() error {
	return p.db.Close()
}

// Read builds a SELECT over ds's physical columns with squirrel and
// scans every row into a Record, applying the same numeric-cell
// coercion CSV ingress uses.
func (p *PostgresSource) Read(ctx context.Context, ds schema.Dataset) ([]frame.Record, error) {
	fields := ds.LogicalFields()
	columns := make([]string, len(fields))
	for i, f := range fields {
		label, _ := ds.Column(f)
		columns[i] = label
	}

	query, args, err := sq.Select(columns...).
		From(p.tableName).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.IngressError("failed to build postgres query", err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.IngressError("postgres query failed", err)
	}
	defer rows.Close()

	scanTargets := make([]sql.NullString, len(fields))
	scanPtrs := make([]interface{}, len(fields))
	for i := range scanTargets {
		scanPtrs[i] = &scanTargets[i]
	}

	var records []frame.Record
	for rows.Next() {
		if err := rows.Scan(scanPtrs...); err != nil {
			return nil, apperr.IngressError("failed to scan postgres row", err)
		}
		rec := frame.Record{}
		for i, f := range fields {
			if !scanTargets[i].Valid {
				continue
			}
			assignField(&rec, f, coerceNumericCell(scanTargets[i].String))
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.IngressError("postgres row iteration failed", err)
	}
	return records, nil
}

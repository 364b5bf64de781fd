package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// QueryObserver receives the duration and outcome of every statement.
type QueryObserver interface {
	ObserveQuery(operation string, d time.Duration, err error)
}

type instrumentedDB struct {
	db       DB
	observer QueryObserver
}

// NewInstrumentedDB wraps db so that each statement is reported to observer.
func NewInstrumentedDB(db DB, observer QueryObserver) DB {
	return &instrumentedDB{
		db:       db,
		observer: observer,
	}
}

func (d *instrumentedDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := d.db.Exec(ctx, sql, args...)
	d.observer.ObserveQuery(operationOf(sql), time.Since(start), err)
	return tag, err
}

// Query reports the time until the first response. Row iteration is
// left to the caller.
func (d *instrumentedDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := d.db.Query(ctx, sql, args...)
	d.observer.ObserveQuery(operationOf(sql), time.Since(start), err)
	return rows, err
}

// QueryRow defers the report to Scan, where pgx returns the error.
func (d *instrumentedDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	start := time.Now()
	return &observedRow{
		row:       d.db.QueryRow(ctx, sql, args...),
		start:     start,
		operation: operationOf(sql),
		observer:  d.observer,
	}
}

type observedRow struct {
	row       pgx.Row
	start     time.Time
	operation string
	observer  QueryObserver
}

func (r *observedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		// A missing row is an answer, not a failed query.
		r.observer.ObserveQuery(r.operation, time.Since(r.start), nil)
		return err
	}
	r.observer.ObserveQuery(r.operation, time.Since(r.start), err)
	return err
}

// operationOf returns the lowercased leading SQL keyword.
func operationOf(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

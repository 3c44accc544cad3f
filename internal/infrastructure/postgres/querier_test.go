package postgres_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type failingQuerier struct{ err error }

func (q failingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.err
}

func (q failingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return failingRow{err: q.err}
}

type failingRow struct{ err error }

func (r failingRow) Scan(...any) error { return r.err }

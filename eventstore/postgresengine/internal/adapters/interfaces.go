package adapters

import (
	"context"
	"database/sql"
)

// DBAdapter is what the engine needs from a connection pool.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows is a forward-only result set.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult is the outcome of an Exec.
type DBResult interface {
	RowsAffected() (int64, error)
}

func stdQuery(rows *sql.Rows, err error) (DBRows, error) {
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func stdExec(result sql.Result, err error) (DBResult, error) {
	if err != nil {
		return nil, err
	}

	return result, nil
}

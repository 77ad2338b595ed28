package adapters

import (
	"context"
	"database/sql"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

// SQLAdapter implements DBAdapter for sql.DB.
type SQLAdapter struct {
	db      *sql.DB
	replica *sql.DB
}

// NewSQLAdapter creates a new SQL adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// NewSQLAdapterWithReplica creates a SQL adapter with a replica for eventually consistent reads.
func NewSQLAdapterWithReplica(db *sql.DB, replica *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db, replica: replica}
}

func (s *SQLAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	db := s.db

	if s.replica != nil && eventstore.GetConsistencyLevel(ctx) == eventstore.EventualConsistency {
		db = s.replica
	}

	return stdQuery(db.QueryContext(ctx, query))
}

func (s *SQLAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	return stdExec(s.db.ExecContext(ctx, query))
}

package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

// SQLXAdapter implements DBAdapter for sqlx.DB.
type SQLXAdapter struct {
	db      *sqlx.DB
	replica *sqlx.DB
}

// NewSQLXAdapter creates a new SQLX adapter.
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

// NewSQLXAdapterWithReplica creates a SQLX adapter with a replica for eventually consistent reads.
func NewSQLXAdapterWithReplica(db *sqlx.DB, replica *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db, replica: replica}
}

func (s *SQLXAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	db := s.db

	if s.replica != nil && eventstore.GetConsistencyLevel(ctx) == eventstore.EventualConsistency {
		db = s.replica
	}

	return stdQuery(db.QueryContext(ctx, query))
}

func (s *SQLXAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	return stdExec(s.db.ExecContext(ctx, query))
}

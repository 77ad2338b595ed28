// Package postgresengine is the PostgreSQL engine of the event store.
//
// Events live in one table (see the migrations package). Queries are built with goqu, JSON
// payload predicates use jsonb containment (`payload @> '{"BookID": "..."}'`), and appends are a
// single INSERT ... SELECT guarded by a CTE that re-reads the max sequence number of the same
// filter. If another writer appended a matching event in between, no row is inserted and Append
// returns eventstore.ErrConcurrencyConflict.
//
// Three connection types are supported through internal adapters: *pgxpool.Pool, *sql.DB (lib/pq)
// and *sqlx.DB. With a replica configured, queries marked with eventstore.WithEventualConsistency
// are served from the replica.
//
//	pool, _ := pgxpool.NewWithConfig(ctx, config.PostgresPGXPoolConfig(dsn))
//	store, _ := postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine

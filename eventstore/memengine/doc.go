// Package memengine is an in-memory event store engine.
//
// It implements the same Query/Append contract as the postgresengine, including the
// filter semantics (event types OR-ed, predicates matched by JSON containment on the payload)
// and the optimistic concurrency guard on the max sequence number of the queried stream.
// It is meant for tests and for running the server without a database.
package memengine

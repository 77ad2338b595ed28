// Package eventstore provides the storage abstractions the library catalog is built on.
//
// Every fact about books, rents, partners and members is recorded as an event. Features never
// read a "book table"; they query the events relevant to their decision with a Filter, decide,
// and append new events guarded by the max sequence number they saw. This gives each use case
// its own "dynamic event stream" with optimistic concurrency control.
//
// Key types:
//   - Filter: which events a use case needs (event types AND/OR JSON payload predicates)
//   - StorableEvent: the scalar DTO engines persist and return
//
// Typical usage:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.BookAddedToCatalogEventType, core.BookBorrowedEventType).
//		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// decide ...
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//
// Engines live in sub packages: postgresengine (production) and memengine (tests, local runs).
package eventstore

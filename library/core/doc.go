// Package core contains the domain of the library books catalog:
// domain events, value types and the pure rules the features decide with.
//
// The two rules everything else leans on live here: ISBN check digit validation (isbn.go)
// and the book lifecycle state machine (book_state.go). Both are pure and synchronous.
//
// Events represent business occurrences like BookAddedToCatalog or BookBorrowed rather than
// generic create/update operations. All of them implement DomainEvent.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core

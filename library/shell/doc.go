// Package shell is the imperative shell around the functional core of the library catalog.
//
// It maps between domain events and storable events, carries event metadata, retries
// command execution on concurrency conflicts and holds the shared observability helpers
// the handlers and wrappers use.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell

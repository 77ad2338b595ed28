// Package app wires the feature handlers to an event store and wraps them with observability.
package app

// Package observability provides the production implementations of the observability interfaces
// used by the event store engines and the handler wrappers: a Prometheus metrics collector with
// its HTTP exposition and instrumentation, an OpenTelemetry tracing collector and a slog logger
// that stamps trace ids onto log records.
package observability

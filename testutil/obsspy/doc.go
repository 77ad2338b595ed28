// Package obsspy provides MetricsCollector and TracingCollector spies for tests.
// Both record every call and are safe for concurrent use.
package obsspy

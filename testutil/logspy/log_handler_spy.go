// Package logspy provides a slog.Handler that records log records for assertions in tests.
package logspy

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switch logToStdout on to also see the records while debugging a test.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdout,
	}
}

// NewLogger returns a *slog.Logger writing into a fresh spy.
func NewLogger() (*slog.Logger, *LogHandlerSpy) {
	spy := NewLogHandlerSpy(false)

	return slog.New(spy), spy
}

func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// RecordCount returns the number of captured log records.
func (s *LogHandlerSpy) RecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// HasLog reports whether a record with the level and message was captured.
func (s *LogHandlerSpy) HasLog(level slog.Level, message string) bool {
	return s.HasLogWithAttr(level, message, "")
}

// HasLogWithAttr reports whether a record with the level and message carries the attribute key.
// An empty key only matches level and message.
func (s *LogHandlerSpy) HasLogWithAttr(level slog.Level, message string, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level != level || record.Message != message {
			continue
		}

		if key == "" {
			return true
		}

		found := false
		record.Attrs(func(attr slog.Attr) bool {
			found = attr.Key == key
			return !found
		})

		if found {
			return true
		}
	}

	return false
}

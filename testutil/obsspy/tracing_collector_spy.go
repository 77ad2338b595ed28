package obsspy

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

// SpanRecord is a started span and, once finished, its status and end attributes.
type SpanRecord struct {
	Name       string
	StartAttrs map[string]string
	Status     string
	EndAttrs   map[string]string
	Finished   bool
}

// SpySpanContext is the SpanContext handed out by the TracingCollectorSpy.
type SpySpanContext struct {
	index      int
	attributes map[string]string
	status     string
}

func (c *SpySpanContext) SetStatus(status string) {
	c.status = status
}

func (c *SpySpanContext) AddAttribute(key, value string) {
	c.attributes[key] = value
}

// TracingCollectorSpy captures spans for inspection in tests.
type TracingCollectorSpy struct {
	mu    sync.Mutex
	spans []SpanRecord
}

// NewTracingCollectorSpy creates an empty TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, eventstore.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = append(s.spans, SpanRecord{Name: name, StartAttrs: maps.Clone(attrs)})

	return ctx, &SpySpanContext{index: len(s.spans) - 1, attributes: make(map[string]string)}
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	spySpan, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	span := &s.spans[spySpan.index]
	span.Status = status
	span.EndAttrs = maps.Clone(attrs)
	span.Finished = true
}

// Spans returns a copy of all span records.
func (s *TracingCollectorSpy) Spans() []SpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpanRecord(nil), s.spans...)
}

// HasFinishedSpan reports whether a span with that name was finished with that status.
func (s *TracingCollectorSpy) HasFinishedSpan(name string, status string) bool {
	for _, span := range s.Spans() {
		if span.Name == name && span.Finished && span.Status == status {
			return true
		}
	}

	return false
}

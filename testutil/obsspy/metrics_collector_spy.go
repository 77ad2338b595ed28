package obsspy

import (
	"maps"
	"sync"
	"time"
)

// MetricRecord is one recorded call, Kind is "duration", "counter" or "value".
type MetricRecord struct {
	Kind     string
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

// MetricsCollectorSpy captures metrics calls for inspection in tests.
type MetricsCollectorSpy struct {
	mu      sync.Mutex
	records []MetricRecord
}

// NewMetricsCollectorSpy creates an empty MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(MetricRecord{Kind: "duration", Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(MetricRecord{Kind: "counter", Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(MetricRecord{Kind: "value", Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) record(r MetricRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, r)
}

// Records returns a copy of all records.
func (s *MetricsCollectorSpy) Records() []MetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]MetricRecord(nil), s.records...)
}

// HasCounter reports whether the counter was incremented with all the given labels (key, value pairs).
func (s *MetricsCollectorSpy) HasCounter(metric string, labelPairs ...string) bool {
	return s.has("counter", metric, labelPairs)
}

// HasDuration reports whether the duration was recorded with all the given labels (key, value pairs).
func (s *MetricsCollectorSpy) HasDuration(metric string, labelPairs ...string) bool {
	return s.has("duration", metric, labelPairs)
}

// Reset drops all records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

func (s *MetricsCollectorSpy) has(kind string, metric string, labelPairs []string) bool {
	for _, r := range s.Records() {
		if r.Kind == kind && r.Metric == metric && hasLabels(r.Labels, labelPairs) {
			return true
		}
	}

	return false
}

func hasLabels(labels map[string]string, labelPairs []string) bool {
	for i := 0; i+1 < len(labelPairs); i += 2 {
		if labels[labelPairs[i]] != labelPairs[i+1] {
			return false
		}
	}

	return true
}

package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/shell/observability"
)

func Test_PrometheusCollector_IncrementCounter(t *testing.T) {
	// arrange
	collector := observability.NewPrometheusCollector()

	// act
	collector.IncrementCounter("commandhandler_handle_calls_total", map[string]string{"command_type": "BorrowBook", "status": "success"})
	collector.IncrementCounter("commandhandler_handle_calls_total", map[string]string{"command_type": "BorrowBook", "status": "success"})
	collector.IncrementCounter("commandhandler_handle_calls_total", map[string]string{"command_type": "BorrowBook", "status": "error"})

	// assert
	family := givenMetricFamily(t, collector, "commandhandler_handle_calls_total")
	require.Len(t, family.GetMetric(), 2)
	assert.Equal(t, 2.0, counterValue(family, "status", "success"))
	assert.Equal(t, 1.0, counterValue(family, "status", "error"))
}

func Test_PrometheusCollector_ToleratesDifferentLabelSets(t *testing.T) {
	// arrange
	collector := observability.NewPrometheusCollector()

	// act
	collector.IncrementCounter("commandhandler_retries_total", map[string]string{"command_type": "BorrowBook"})
	collector.IncrementCounter("commandhandler_retries_total", map[string]string{"command_type": "ReturnBook", "attempt_number": "2"})

	// assert
	family := givenMetricFamily(t, collector, "commandhandler_retries_total")
	assert.Len(t, family.GetMetric(), 2)
}

func Test_PrometheusCollector_RecordDurationAndValue(t *testing.T) {
	// arrange
	collector := observability.NewPrometheusCollector()

	// act
	collector.RecordDuration("eventstore_query_duration_seconds", 150*time.Millisecond, map[string]string{"operation": "query"})
	collector.RecordValue("library_books_in_catalog", 42, nil)

	// assert
	histogram := givenMetricFamily(t, collector, "eventstore_query_duration_seconds")
	assert.Equal(t, uint64(1), histogram.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.InDelta(t, 0.15, histogram.GetMetric()[0].GetHistogram().GetSampleSum(), 0.0001)

	gauge := givenMetricFamily(t, collector, "library_books_in_catalog")
	assert.Equal(t, 42.0, gauge.GetMetric()[0].GetGauge().GetValue())
}

func Test_PrometheusCollector_InstrumentHTTP(t *testing.T) {
	// arrange
	collector := observability.NewPrometheusCollector()
	handler := collector.InstrumentHTTP(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	// act
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/books/b-1", nil))

	// assert
	family := givenMetricFamily(t, collector, "library_http_requests_total")
	require.Len(t, family.GetMetric(), 1)
	assert.Equal(t, 1.0, counterValue(family, "route", "/api"))
	assert.Equal(t, 1.0, counterValue(family, "code", "418"))
}

func Test_PrometheusCollector_Handler_ExposesMetrics(t *testing.T) {
	// arrange
	collector := observability.NewPrometheusCollector()
	collector.IncrementCounter("queryhandler_handle_calls_total", map[string]string{"query_type": "ListBooks", "status": "success"})
	server := httptest.NewServer(collector.Handler())
	defer server.Close()

	// act
	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `queryhandler_handle_calls_total{query_type="ListBooks",status="success"} 1`)
}

/*** helpers ***/

func givenMetricFamily(t *testing.T, collector *observability.PrometheusCollector, name string) *dto.MetricFamily {
	t.Helper()

	families, err := collector.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}

	t.Fatalf("metric family %s not found", name)

	return nil
}

func counterValue(family *dto.MetricFamily, labelName, labelValue string) float64 {
	for _, m := range family.GetMetric() {
		for _, label := range m.GetLabel() {
			if label.GetName() == labelName && label.GetValue() == labelValue {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}

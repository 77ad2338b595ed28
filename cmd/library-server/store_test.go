package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/shell/config"
	"github.com/AntonStoeckl/library-books-go/testutil/obsspy"
)

func Test_openEventStore_MemoryEngine(t *testing.T) {
	// arrange
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	// act
	store, closeStore, err := openEventStore(
		context.Background(),
		config.Config{Engine: config.EngineMemory},
		logger,
		obsspy.NewMetricsCollectorSpy(),
		obsspy.NewTracingCollectorSpy(),
	)

	// assert
	require.NoError(t, err)
	defer closeStore()

	events, maxSeq, err := store.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Zero(t, maxSeq)
	assert.Contains(t, logs.String(), "in-memory event store")
}

func Test_openEventStore_RejectsUnknownEngine(t *testing.T) {
	// act
	_, _, err := openEventStore(
		context.Background(),
		config.Config{Engine: "cassandra"},
		slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		obsspy.NewMetricsCollectorSpy(),
		obsspy.NewTracingCollectorSpy(),
	)

	// assert
	assert.ErrorIs(t, err, config.ErrUnsupportedEngine)
}

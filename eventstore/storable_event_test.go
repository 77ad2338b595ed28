package eventstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validPayloadJSON := []byte(`{"BookID": "b-1"}`)
	validMetadataJSON := []byte(`{"MessageID": "m-1"}`)

	testCases := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "invalid payload JSON",
			payloadJSON:  []byte(`{"BookID": b-1}`),
			metadataJSON: validMetadataJSON,
			expectedErr:  eventstore.ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata JSON",
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(`{"MessageID"`),
			expectedErr:  eventstore.ErrInvalidMetadataJSON,
		},
		{
			name:         "empty payload JSON",
			payloadJSON:  []byte(``),
			metadataJSON: validMetadataJSON,
			expectedErr:  eventstore.ErrInvalidPayloadJSON,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := eventstore.BuildStorableEvent("BookBorrowed", time.Now(), tc.payloadJSON, tc.metadataJSON)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_BuildStorableEventWithEmptyMetadata(t *testing.T) {
	// arrange
	occurredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// act
	event, err := eventstore.BuildStorableEventWithEmptyMetadata("BookReturned", occurredAt, []byte(`{"BookID":"b-1"}`))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "BookReturned", event.EventType)
	assert.Equal(t, occurredAt, event.OccurredAt)
	assert.JSONEq(t, `{}`, string(event.MetadataJSON))
}

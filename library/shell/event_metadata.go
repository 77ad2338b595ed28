package shell

import (
	"context"
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

// ErrMappingToEventMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related events.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
	ActorName     string
}

type correlationIDKey struct{}

// WithCorrelationID puts a correlation ID into the context, e.g. the HTTP request ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// BuildEventMetadata creates EventMetadata for a new event. The message ID is a fresh UUIDv7,
// the correlation ID is taken from the context if there is one.
func BuildEventMetadata(ctx context.Context, actorName string) EventMetadata {
	messageID := newID()

	correlationID, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok || correlationID == "" {
		correlationID = messageID
	}

	return EventMetadata{
		MessageID:     messageID,
		CausationID:   correlationID,
		CorrelationID: correlationID,
		ActorName:     actorName,
	}
}

// EventMetadataFrom extracts EventMetadata from a StorableEvent.
func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	metadata := new(EventMetadata)

	err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, metadata)
	if err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}

// NewID returns a new time ordered UUIDv7 string, used for entity and message IDs.
func NewID() string {
	return newID()
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

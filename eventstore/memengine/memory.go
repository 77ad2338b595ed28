package memengine

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

const (
	logMsgQueryCompleted       = "eventstore operation: query completed"
	logMsgEventsAppended       = "eventstore operation: events appended"
	logMsgConcurrencyConflict  = "eventstore operation: concurrency conflict detected"
	logAttrEventCount          = "event_count"
	logAttrExpectedSequence    = "expected_sequence"
	logAttrActualSequence      = "actual_sequence"
	logAttrEventType           = "event_type"
	logAttrDurationMS          = "duration_ms"
	defaultInitialEventsBuffer = 256
)

// ErrNoEventsToAppend is returned when Append is called without events.
var ErrNoEventsToAppend = errors.New("at least one event must be appended")

type storedEvent struct {
	event          eventstore.StorableEvent
	payload        map[string]any
	sequenceNumber eventstore.MaxSequenceNumberUint
}

// EventStore keeps all events in a slice guarded by a RWMutex.
type EventStore struct {
	mu     sync.RWMutex
	events []storedEvent
	logger eventstore.Logger
}

// Option defines a functional option for configuring the EventStore.
type Option func(*EventStore)

// WithLogger sets the logger for the EventStore.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) {
		es.logger = logger
	}
}

// NewEventStore creates an empty in-memory EventStore.
func NewEventStore(options ...Option) *EventStore {
	es := &EventStore{
		events: make([]storedEvent, 0, defaultInitialEventsBuffer),
	}

	for _, option := range options {
		option(es)
	}

	return es
}

// Query returns the events matching the filter in sequence order and the max sequence number among them.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}

	start := time.Now()

	es.mu.RLock()
	defer es.mu.RUnlock()

	result := make(eventstore.StorableEvents, 0)
	var maxSequenceNumber eventstore.MaxSequenceNumberUint

	for _, stored := range es.events {
		if !matches(filter, stored) {
			continue
		}

		result = append(result, stored.event)
		maxSequenceNumber = stored.sequenceNumber
	}

	if es.logger != nil {
		es.logger.Debug(
			logMsgQueryCompleted,
			logAttrEventCount, len(result),
			logAttrDurationMS, float64(time.Since(start).Microseconds())/1000.0,
		)
	}

	return result, maxSequenceNumber, nil
}

// Append appends the events only if the max sequence number of the events matching the filter
// still equals expectedMaxSequenceNumber. Otherwise, it returns eventstore.ErrConcurrencyConflict
// and nothing is written.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvent eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	allEvents := append([]eventstore.StorableEvent{storableEvent}, additionalEvents...)

	decoded := make([]map[string]any, 0, len(allEvents))
	for _, event := range allEvents {
		payload, err := decodePayload(event.PayloadJSON)
		if err != nil {
			return errors.Join(eventstore.ErrAppendingEventFailed, err)
		}

		decoded = append(decoded, payload)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	actual := es.currentMaxSequenceNumber(filter)
	if actual != expectedMaxSequenceNumber {
		if es.logger != nil {
			es.logger.Info(
				logMsgConcurrencyConflict,
				logAttrExpectedSequence, expectedMaxSequenceNumber,
				logAttrActualSequence, actual,
			)
		}

		return eventstore.ErrConcurrencyConflict
	}

	next := eventstore.MaxSequenceNumberUint(len(es.events))
	for i, event := range allEvents {
		next++
		es.events = append(es.events, storedEvent{
			event:          event,
			payload:        decoded[i],
			sequenceNumber: next,
		})
	}

	if es.logger != nil {
		es.logger.Info(logMsgEventsAppended, logAttrEventCount, len(allEvents), logAttrEventType, storableEvent.EventType)
	}

	return nil
}

// Len returns the total number of stored events.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

func (es *EventStore) currentMaxSequenceNumber(filter eventstore.Filter) eventstore.MaxSequenceNumberUint {
	var maxSequenceNumber eventstore.MaxSequenceNumberUint

	for _, stored := range es.events {
		if matches(filter, stored) {
			maxSequenceNumber = stored.sequenceNumber
		}
	}

	return maxSequenceNumber
}

func decodePayload(payloadJSON []byte) (map[string]any, error) {
	payload := make(map[string]any)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// matches mirrors the SQL built by the postgresengine: items are OR-ed, inside an item the
// event type must be one of the listed types and the predicates are OR-ed or AND-ed.
func matches(filter eventstore.Filter, stored storedEvent) bool {
	if filter.IsEmpty() {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(item, stored) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, stored storedEvent) bool {
	eventTypes := item.EventTypes()
	if len(eventTypes) > 0 && !slices.Contains(eventTypes, stored.event.EventType) {
		return false
	}

	predicates := item.Predicates()
	if len(predicates) == 0 {
		return true
	}

	if item.AllPredicatesMustMatch() {
		for _, predicate := range predicates {
			if !matchesPredicate(predicate, stored.payload) {
				return false
			}
		}

		return true
	}

	for _, predicate := range predicates {
		if matchesPredicate(predicate, stored.payload) {
			return true
		}
	}

	return false
}

// matchesPredicate behaves like payload @> '{"key":"val"}' for string values.
func matchesPredicate(predicate eventstore.FilterPredicate, payload map[string]any) bool {
	value, ok := payload[predicate.Key()]
	if !ok {
		return false
	}

	str, ok := value.(string)

	return ok && str == predicate.Val()
}

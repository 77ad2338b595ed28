package core

import (
	"time"
)

// CategoryDefinedEventType is the event type identifier.
const CategoryDefinedEventType = "CategoryDefined"

// CategoryDefined represents when a book category was defined.
type CategoryDefined struct {
	Category
	OccurredAt OccurredAtTS
}

// BuildCategoryDefined creates a new CategoryDefined event.
func BuildCategoryDefined(category Category, occurredAt time.Time) CategoryDefined {
	return CategoryDefined{
		Category:   category,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e CategoryDefined) IsEventType() string {
	return CategoryDefinedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CategoryDefined) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CategoryDefined) IsErrorEvent() bool {
	return false
}

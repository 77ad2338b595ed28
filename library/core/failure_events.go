package core

import (
	"time"
)

// Failure holds what all failure events record: the addressed entity and why it failed.
// The failure events embed it, so their payloads share the same shape.
type Failure struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func buildFailure(entityID string, failureInfo string, occurredAt time.Time) Failure {
	return Failure{
		EntityID:    entityID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// HasOccurredAt returns when this event occurred.
func (f Failure) HasOccurredAt() time.Time {
	return f.OccurredAt
}

// IsErrorEvent returns true since failure events represent business rule violations.
func (f Failure) IsErrorEvent() bool {
	return true
}

// AddingBookFailedEventType is the event type identifier.
const AddingBookFailedEventType = "AddingBookFailed"

// AddingBookFailed represents a rejected attempt of adding a book to the catalog.
type AddingBookFailed struct {
	Failure
}

// BuildAddingBookFailed creates a new AddingBookFailed event.
func BuildAddingBookFailed(entityID string, failureInfo string, occurredAt time.Time) AddingBookFailed {
	return AddingBookFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e AddingBookFailed) IsEventType() string {
	return AddingBookFailedEventType
}

// RevisingBookFailedEventType is the event type identifier.
const RevisingBookFailedEventType = "RevisingBookFailed"

// RevisingBookFailed represents a rejected attempt of revising the details of a book.
type RevisingBookFailed struct {
	Failure
}

// BuildRevisingBookFailed creates a new RevisingBookFailed event.
func BuildRevisingBookFailed(entityID string, failureInfo string, occurredAt time.Time) RevisingBookFailed {
	return RevisingBookFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e RevisingBookFailed) IsEventType() string {
	return RevisingBookFailedEventType
}

// ChangingBookStateFailedEventType is the event type identifier.
const ChangingBookStateFailedEventType = "ChangingBookStateFailed"

// ChangingBookStateFailed represents a rejected attempt of changing the lifecycle state of a book.
type ChangingBookStateFailed struct {
	Failure
}

// BuildChangingBookStateFailed creates a new ChangingBookStateFailed event.
func BuildChangingBookStateFailed(entityID string, failureInfo string, occurredAt time.Time) ChangingBookStateFailed {
	return ChangingBookStateFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e ChangingBookStateFailed) IsEventType() string {
	return ChangingBookStateFailedEventType
}

// BorrowingBookFailedEventType is the event type identifier.
const BorrowingBookFailedEventType = "BorrowingBookFailed"

// BorrowingBookFailed represents a rejected attempt of borrowing a book.
type BorrowingBookFailed struct {
	Failure
}

// BuildBorrowingBookFailed creates a new BorrowingBookFailed event.
func BuildBorrowingBookFailed(entityID string, failureInfo string, occurredAt time.Time) BorrowingBookFailed {
	return BorrowingBookFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e BorrowingBookFailed) IsEventType() string {
	return BorrowingBookFailedEventType
}

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents a rejected attempt of returning a borrowed book.
type ReturningBookFailed struct {
	Failure
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(entityID string, failureInfo string, occurredAt time.Time) ReturningBookFailed {
	return ReturningBookFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e ReturningBookFailed) IsEventType() string {
	return ReturningBookFailedEventType
}

// TogglingBookArchiveFailedEventType is the event type identifier.
const TogglingBookArchiveFailedEventType = "TogglingBookArchiveFailed"

// TogglingBookArchiveFailed represents a rejected attempt of archiving or unarchiving a book.
type TogglingBookArchiveFailed struct {
	Failure
}

// BuildTogglingBookArchiveFailed creates a new TogglingBookArchiveFailed event.
func BuildTogglingBookArchiveFailed(entityID string, failureInfo string, occurredAt time.Time) TogglingBookArchiveFailed {
	return TogglingBookArchiveFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e TogglingBookArchiveFailed) IsEventType() string {
	return TogglingBookArchiveFailedEventType
}

// RemovingBookFailedEventType is the event type identifier.
const RemovingBookFailedEventType = "RemovingBookFailed"

// RemovingBookFailed represents a rejected attempt of removing a book from the catalog.
type RemovingBookFailed struct {
	Failure
}

// BuildRemovingBookFailed creates a new RemovingBookFailed event.
func BuildRemovingBookFailed(entityID string, failureInfo string, occurredAt time.Time) RemovingBookFailed {
	return RemovingBookFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e RemovingBookFailed) IsEventType() string {
	return RemovingBookFailedEventType
}

// ChangingPublisherCountryFailedEventType is the event type identifier.
const ChangingPublisherCountryFailedEventType = "ChangingPublisherCountryFailed"

// ChangingPublisherCountryFailed represents a rejected attempt of changing the country of a book's publisher.
type ChangingPublisherCountryFailed struct {
	Failure
}

// BuildChangingPublisherCountryFailed creates a new ChangingPublisherCountryFailed event.
func BuildChangingPublisherCountryFailed(entityID string, failureInfo string, occurredAt time.Time) ChangingPublisherCountryFailed {
	return ChangingPublisherCountryFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e ChangingPublisherCountryFailed) IsEventType() string {
	return ChangingPublisherCountryFailedEventType
}

// DefiningCategoryFailedEventType is the event type identifier.
const DefiningCategoryFailedEventType = "DefiningCategoryFailed"

// DefiningCategoryFailed represents a rejected attempt of defining a book category.
type DefiningCategoryFailed struct {
	Failure
}

// BuildDefiningCategoryFailed creates a new DefiningCategoryFailed event.
func BuildDefiningCategoryFailed(entityID string, failureInfo string, occurredAt time.Time) DefiningCategoryFailed {
	return DefiningCategoryFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e DefiningCategoryFailed) IsEventType() string {
	return DefiningCategoryFailedEventType
}

// RegisteringPartnerFailedEventType is the event type identifier.
const RegisteringPartnerFailedEventType = "RegisteringPartnerFailed"

// RegisteringPartnerFailed represents a rejected attempt of registering a partner.
type RegisteringPartnerFailed struct {
	Failure
}

// BuildRegisteringPartnerFailed creates a new RegisteringPartnerFailed event.
func BuildRegisteringPartnerFailed(entityID string, failureInfo string, occurredAt time.Time) RegisteringPartnerFailed {
	return RegisteringPartnerFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e RegisteringPartnerFailed) IsEventType() string {
	return RegisteringPartnerFailedEventType
}

// RegisteringMemberFailedEventType is the event type identifier.
const RegisteringMemberFailedEventType = "RegisteringMemberFailed"

// RegisteringMemberFailed represents a rejected attempt of registering a member.
type RegisteringMemberFailed struct {
	Failure
}

// BuildRegisteringMemberFailed creates a new RegisteringMemberFailed event.
func BuildRegisteringMemberFailed(entityID string, failureInfo string, occurredAt time.Time) RegisteringMemberFailed {
	return RegisteringMemberFailed{Failure: buildFailure(entityID, failureInfo, occurredAt)}
}

// IsEventType returns the event type identifier.
func (e RegisteringMemberFailed) IsEventType() string {
	return RegisteringMemberFailedEventType
}

package core

import (
	"errors"
	"fmt"
	"time"
)

// BookState is the lifecycle state of a book.
type BookState string

const (
	BookStateDraft     BookState = "draft"
	BookStateAvailable BookState = "available"
	BookStateBorrowed  BookState = "borrowed"
	BookStateLost      BookState = "lost"
)

// BookStates lists all states in lifecycle order.
var BookStates = []BookState{BookStateDraft, BookStateAvailable, BookStateBorrowed, BookStateLost}

// ErrTransitionNotAllowed matches every TransitionNotAllowedError.
var ErrTransitionNotAllowed = errors.New("state transition not allowed")

// ErrUnknownBookState is returned when parsing a state name that does not exist.
var ErrUnknownBookState = fmt.Errorf("%w: unknown book state", ErrInvalidValue)

var allowedTransitions = map[BookState][]BookState{
	BookStateDraft:     {BookStateAvailable},
	BookStateAvailable: {BookStateBorrowed, BookStateLost},
	BookStateBorrowed:  {BookStateAvailable, BookStateLost},
	BookStateLost:      {BookStateAvailable},
}

// ParseBookState turns a state name into a BookState.
func ParseBookState(s string) (BookState, error) {
	for _, state := range BookStates {
		if string(state) == s {
			return state, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBookState, s)
}

// IsAllowedTransition returns true iff from -> to is one of the six lifecycle transitions.
// Self transitions are not allowed.
func IsAllowedTransition(from, to BookState) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// TransitionNotAllowedError carries the attempted state pair.
type TransitionNotAllowedError struct {
	From BookState
	To   BookState
}

func (e TransitionNotAllowedError) Error() string {
	return fmt.Sprintf("moving from %s to %s is not allowed", e.From, e.To)
}

// Is makes errors.Is match ErrTransitionNotAllowed and ErrInvalidValue.
func (e TransitionNotAllowedError) Is(target error) bool {
	return target == ErrTransitionNotAllowed || target == ErrInvalidValue
}

// BookLifecycle is the state of a book together with the due date that belongs to it.
// DueDate is only set while the book is borrowed, or lost after being borrowed.
type BookLifecycle struct {
	State   BookState
	DueDate time.Time
}

// NewBookLifecycle returns the initial lifecycle of a new book.
func NewBookLifecycle() BookLifecycle {
	return BookLifecycle{State: BookStateDraft}
}

// ChangeState checks the transition first and only then applies the side effects, so a
// rejected transition never touches the due date. The receiver is not modified.
//
//	-> borrowed:           DueDate = today + category borrow period (default 10 days)
//	-> available:          DueDate is cleared
//	borrowed -> lost:      DueDate is kept
func (l BookLifecycle) ChangeState(to BookState, category *Category, today time.Time) (BookLifecycle, error) {
	if !IsAllowedTransition(l.State, to) {
		return l, TransitionNotAllowedError{From: l.State, To: to}
	}

	next := BookLifecycle{State: to, DueDate: l.DueDate}

	switch {
	case to == BookStateBorrowed:
		next.DueDate = AddDays(today, category.BorrowPeriod())

	case to == BookStateAvailable:
		next.DueDate = time.Time{}
	}

	return next, nil
}

// MakeAvailable moves the book to available.
func (l BookLifecycle) MakeAvailable(today time.Time) (BookLifecycle, error) {
	return l.ChangeState(BookStateAvailable, nil, today)
}

// MakeBorrowed moves the book to borrowed and computes the due date from the category.
func (l BookLifecycle) MakeBorrowed(category *Category, today time.Time) (BookLifecycle, error) {
	return l.ChangeState(BookStateBorrowed, category, today)
}

// MakeLost moves the book to lost.
func (l BookLifecycle) MakeLost(today time.Time) (BookLifecycle, error) {
	return l.ChangeState(BookStateLost, nil, today)
}

// HasDueDate reports whether a due date is set.
func (l BookLifecycle) HasDueDate() bool {
	return !l.DueDate.IsZero()
}

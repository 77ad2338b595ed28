package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

func Test_IsAllowedTransition_ForAllStatePairs(t *testing.T) {
	allowed := map[[2]core.BookState]bool{
		{core.BookStateDraft, core.BookStateAvailable}:    true,
		{core.BookStateAvailable, core.BookStateBorrowed}: true,
		{core.BookStateBorrowed, core.BookStateAvailable}: true,
		{core.BookStateAvailable, core.BookStateLost}:     true,
		{core.BookStateBorrowed, core.BookStateLost}:      true,
		{core.BookStateLost, core.BookStateAvailable}:     true,
	}

	allowedCount := 0

	for _, from := range core.BookStates {
		for _, to := range core.BookStates {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				// act
				isAllowed := core.IsAllowedTransition(from, to)

				// assert
				assert.Equal(t, allowed[[2]core.BookState{from, to}], isAllowed)
			})

			if core.IsAllowedTransition(from, to) {
				allowedCount++
			}
		}
	}

	assert.Equal(t, 6, allowedCount, "exactly six of the 16 pairs are allowed")
}

func Test_ChangeState_EnteringBorrowed_WithoutCategory_SetsDueDateTenDaysAhead(t *testing.T) {
	// arrange
	today := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	lifecycle := core.BookLifecycle{State: core.BookStateAvailable}

	// act
	next, err := lifecycle.ChangeState(core.BookStateBorrowed, nil, today)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.BookStateBorrowed, next.State)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), next.DueDate)
}

func Test_ChangeState_EnteringBorrowed_UsesCategoryBorrowPeriod(t *testing.T) {
	testCases := []struct {
		name         string
		category     *core.Category
		expectedDays int
	}{
		{name: "no category", category: nil, expectedDays: 10},
		{name: "category without period", category: &core.Category{Name: "Novels"}, expectedDays: 10},
		{name: "category with 21 days", category: &core.Category{Name: "Reference", BorrowPeriodDays: 21}, expectedDays: 21},
	}

	today := time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			next, err := core.BookLifecycle{State: core.BookStateAvailable}.MakeBorrowed(tc.category, today)

			// assert
			require.NoError(t, err)
			assert.Equal(t, today.AddDate(0, 0, tc.expectedDays), next.DueDate)
		})
	}
}

func Test_ChangeState_BorrowedToAvailable_ClearsDueDate(t *testing.T) {
	// arrange
	today := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	borrowed, err := core.BookLifecycle{State: core.BookStateAvailable}.MakeBorrowed(nil, today)
	require.NoError(t, err)
	require.True(t, borrowed.HasDueDate())

	// act
	returned, err := borrowed.MakeAvailable(today.AddDate(0, 0, 3))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.BookStateAvailable, returned.State)
	assert.False(t, returned.HasDueDate())
}

func Test_ChangeState_BorrowedToLost_KeepsDueDate(t *testing.T) {
	// arrange
	today := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	borrowed, err := core.BookLifecycle{State: core.BookStateAvailable}.MakeBorrowed(nil, today)
	require.NoError(t, err)

	// act
	lost, err := borrowed.MakeLost(today.AddDate(0, 0, 30))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.BookStateLost, lost.State)
	assert.Equal(t, borrowed.DueDate, lost.DueDate)
}

func Test_ChangeState_LostToAvailable_ClearsDueDate(t *testing.T) {
	// arrange
	lost := core.BookLifecycle{
		State:   core.BookStateLost,
		DueDate: time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
	}

	// act
	found, err := lost.MakeAvailable(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.BookStateAvailable, found.State)
	assert.False(t, found.HasDueDate())
}

func Test_ChangeState_DisallowedTransition_LeavesLifecycleUnchanged(t *testing.T) {
	// arrange
	lifecycle := core.NewBookLifecycle()

	// act
	next, err := lifecycle.ChangeState(core.BookStateLost, nil, time.Now())

	// assert
	assert.ErrorIs(t, err, core.ErrTransitionNotAllowed)
	assert.ErrorIs(t, err, core.ErrInvalidValue)
	assert.EqualError(t, err, "moving from draft to lost is not allowed")
	assert.Equal(t, lifecycle, next)

	var transitionErr core.TransitionNotAllowedError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, core.BookStateDraft, transitionErr.From)
	assert.Equal(t, core.BookStateLost, transitionErr.To)
}

func Test_ChangeState_DisallowedBorrow_DoesNotSetDueDate(t *testing.T) {
	// arrange
	lifecycle := core.BookLifecycle{State: core.BookStateLost}

	// act
	next, err := lifecycle.MakeBorrowed(&core.Category{BorrowPeriodDays: 5}, time.Now())

	// assert
	assert.ErrorIs(t, err, core.ErrTransitionNotAllowed)
	assert.False(t, next.HasDueDate())
}

func Test_ChangeState_SelfTransition_IsRejected(t *testing.T) {
	for _, state := range core.BookStates {
		t.Run(string(state), func(t *testing.T) {
			// act
			_, err := core.BookLifecycle{State: state}.ChangeState(state, nil, time.Now())

			// assert
			assert.ErrorIs(t, err, core.ErrTransitionNotAllowed)
		})
	}
}

func Test_ParseBookState(t *testing.T) {
	state, err := core.ParseBookState("borrowed")
	assert.NoError(t, err)
	assert.Equal(t, core.BookStateBorrowed, state)

	_, err = core.ParseBookState("archived")
	assert.ErrorIs(t, err, core.ErrUnknownBookState)
}

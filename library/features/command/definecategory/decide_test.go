package definecategory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/definecategory"
)

var fakeClock = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func Test_Decide(t *testing.T) {
	software := core.Category{CategoryID: "cat-1", Name: "Software", BorrowPeriodDays: 14}
	history := core.DomainEvents{core.BuildCategoryDefined(software, fakeClock.Add(-time.Hour))}

	testCases := []struct {
		name        string
		category    core.Category
		expectEvent any
		expectedErr error
	}{
		{name: "child of a defined parent", category: core.Category{CategoryID: "cat-2", Name: "Architecture", ParentID: "cat-1"}, expectEvent: core.CategoryDefined{}},
		{name: "identical definition", category: software},
		{name: "name padded with spaces", category: core.Category{CategoryID: "cat-1", Name: " Software ", BorrowPeriodDays: 14}},
		{name: "redefinition", category: core.Category{CategoryID: "cat-1", Name: "Software", BorrowPeriodDays: 7}, expectEvent: core.DefiningCategoryFailed{}, expectedErr: core.ErrAlreadyExists},
		{name: "missing name", category: core.Category{CategoryID: "cat-3"}, expectEvent: core.DefiningCategoryFailed{}, expectedErr: core.ErrCategoryNameMissing},
		{name: "negative period", category: core.Category{CategoryID: "cat-3", Name: "Comics", BorrowPeriodDays: -1}, expectEvent: core.DefiningCategoryFailed{}, expectedErr: definecategory.ErrBorrowPeriodNegative},
		{name: "unknown parent", category: core.Category{CategoryID: "cat-3", Name: "Comics", ParentID: "cat-9"}, expectEvent: core.DefiningCategoryFailed{}, expectedErr: core.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := definecategory.Decide(history, definecategory.BuildCommand(tc.category, core.SystemActor, fakeClock))

			// assert
			if tc.expectEvent == nil {
				assert.False(t, result.HasEventToAppend())
				return
			}

			assert.IsType(t, tc.expectEvent, result.Event)
			if tc.expectedErr == nil {
				assert.NoError(t, result.HasError())
			} else {
				assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			}
		})
	}
}

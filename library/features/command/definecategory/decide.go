package definecategory

import (
	"fmt"
	"strings"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

var (
	ErrBorrowPeriodNegative = fmt.Errorf("%w: borrow period must not be negative", core.ErrInvalidValue)
	ErrCategoryRedefined    = fmt.Errorf("%w: category is already defined differently", core.ErrAlreadyExists)
)

// Decide implements the business logic of defining a category.
// A parent must be defined before its children, so the category tree can not contain cycles.
//
// Business Rules:
//
//	GIVEN: A category with CategoryID
//	WHEN: DefineCategory command is received
//	THEN: CategoryDefined event is generated
//	ERROR: the name is missing or the borrow period is negative
//	ERROR: the parent category is not defined
//	ERROR: a category with this CategoryID is already defined differently
//	IDEMPOTENCY: If the identical category is already defined, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	defined := project(history)

	category := command.Category
	category.Name = strings.TrimSpace(category.Name)

	if category.CategoryID == "" {
		return fail(command, fmt.Errorf("%w: category id", core.ErrMissingValue))
	}

	if existing, ok := defined[category.CategoryID]; ok {
		if existing == category {
			return core.IdempotentDecision()
		}

		return fail(command, fmt.Errorf("%w: %s", ErrCategoryRedefined, category.CategoryID))
	}

	if category.Name == "" {
		return fail(command, core.ErrCategoryNameMissing)
	}

	if category.BorrowPeriodDays < 0 {
		return fail(command, ErrBorrowPeriodNegative)
	}

	if _, ok := defined[category.ParentID]; category.ParentID != "" && !ok {
		return fail(command, fmt.Errorf("%w: parent category %s", core.ErrNotFound, category.ParentID))
	}

	return core.SuccessDecision(core.BuildCategoryDefined(category, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildDefiningCategoryFailed(command.Category.CategoryID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents) map[core.CategoryIDString]core.Category {
	defined := make(map[core.CategoryIDString]core.Category)

	for _, event := range history {
		if e, ok := event.(core.CategoryDefined); ok {
			defined[e.CategoryID] = e.Category
		}
	}

	return defined
}

// BuildEventFilter creates the filter for all category definitions.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.CategoryDefinedEventType).
		Finalize()
}

package core

// DefaultBorrowPeriodDays is used when a book has no category or its category has no borrow period.
const DefaultBorrowPeriodDays = 10

// Category groups books and decides how long they may be borrowed.
type Category struct {
	CategoryID       CategoryIDString
	Name             string
	ParentID         CategoryIDString
	BorrowPeriodDays int
}

// BorrowPeriod returns the borrow period in days, falling back to DefaultBorrowPeriodDays.
// It can be called on a nil *Category.
func (c *Category) BorrowPeriod() int {
	if c == nil || c.BorrowPeriodDays <= 0 {
		return DefaultBorrowPeriodDays
	}

	return c.BorrowPeriodDays
}

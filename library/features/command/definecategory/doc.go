// Package definecategory defines a book category with its borrow period.
package definecategory

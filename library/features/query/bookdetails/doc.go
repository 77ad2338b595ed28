// Package bookdetails shows one book with its category, publisher, authors and due date.
package bookdetails

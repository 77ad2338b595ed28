// Package listbooks implements the catalog search.
//
// A free text matches title, short name and ISBN case-insensitively. Additional search predicates
// address the release date (also through the age in days) and the publisher's country. Archived
// books are only listed when asked for. The newest releases come first, ties are ordered by title.
package listbooks

// Package returnbook implements the Return Book use case: a borrowed book becomes available again,
// its ongoing rent is closed and the due date is cleared.
package returnbook

// Package changebookstate implements the Change Book State use case for the transitions that do not
// involve a member: making a book available (publishing a draft, finding a lost book) and marking it lost.
//
// Borrowing needs a member and is done by the borrowbook feature. Making a borrowed book available
// is a return, so in that case a BookReturned event closes the ongoing rent.
package changebookstate

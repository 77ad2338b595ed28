// Package changepublishercountry implements setting the publisher country of a book.
//
// A book has no country of its own, the value is the country of its publisher partner.
// Setting it therefore changes the partner, and with it every book of that publisher.
package changepublishercountry

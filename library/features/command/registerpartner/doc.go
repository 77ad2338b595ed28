// Package registerpartner registers a publisher or author with a normalized country code.
package registerpartner

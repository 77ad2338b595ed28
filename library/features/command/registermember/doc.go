// Package registermember implements the Register Member use case.
//
// A member is always backed by a registered partner who provides name, city and country.
package registermember

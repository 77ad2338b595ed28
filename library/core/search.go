package core

import (
	"fmt"
	"strings"
	"time"
)

// Operator is a comparison operator of a search predicate.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
)

// Search fields a predicate can address.
const (
	SearchFieldReleaseDate      = "release_date"
	SearchFieldPublisherCountry = "publisher_country"
)

// ErrUnsupportedOperator is returned for operators a search field can not handle.
var ErrUnsupportedOperator = fmt.Errorf("%w: unsupported search operator", ErrInvalidValue)

// an older age means an earlier release date, so comparisons flip
var ageToReleaseDateOperator = map[Operator]Operator{
	OpGreater:      OpLess,
	OpGreaterEqual: OpLessEqual,
	OpLess:         OpGreater,
	OpLessEqual:    OpGreaterEqual,
}

// SearchPredicate is a predicate on a stored field of a book.
type SearchPredicate struct {
	Field    string
	Operator Operator
	Date     time.Time
	Text     string
}

// ParseOperator accepts the six comparison operators, "==" is read as "=".
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.TrimSpace(s))
	if op == "==" {
		op = OpEqual
	}

	switch op {
	case OpEqual, OpNotEqual, OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperator, s)
	}
}

// SearchAgeDays translates "age in days <op> days" into a predicate on the release date.
func SearchAgeDays(op Operator, days int, today time.Time) SearchPredicate {
	translated, ok := ageToReleaseDateOperator[op]
	if !ok {
		translated = op
	}

	return SearchPredicate{
		Field:    SearchFieldReleaseDate,
		Operator: translated,
		Date:     ReleaseDateForAge(days, today),
	}
}

// SearchPublisherCountry translates "publisher country <op> code" into a predicate on the
// publisher's country. Only equality operators make sense for codes.
func SearchPublisherCountry(op Operator, countryCode string) (SearchPredicate, error) {
	if op != OpEqual && op != OpNotEqual {
		return SearchPredicate{}, fmt.Errorf("%w: %q for %s", ErrUnsupportedOperator, op, SearchFieldPublisherCountry)
	}

	return SearchPredicate{
		Field:    SearchFieldPublisherCountry,
		Operator: op,
		Text:     strings.ToUpper(strings.TrimSpace(countryCode)),
	}, nil
}

// MatchesDate evaluates the predicate against a date. A zero date never matches.
func (p SearchPredicate) MatchesDate(d time.Time) bool {
	if d.IsZero() {
		return false
	}

	return compare(ToDate(d).Compare(ToDate(p.Date)), p.Operator)
}

// MatchesText evaluates the predicate against a text value, case-insensitively.
func (p SearchPredicate) MatchesText(s string) bool {
	return compare(strings.Compare(strings.ToUpper(s), strings.ToUpper(p.Text)), p.Operator)
}

func compare(c int, op Operator) bool {
	switch op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	default:
		return false
	}
}

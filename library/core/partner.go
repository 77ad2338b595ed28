package core

import (
	"fmt"
	"strings"
	"time"
)

var (
	ErrPartnerNameMissing   = fmt.Errorf("%w: partner name is required", ErrMissingValue)
	ErrCountryCodeInvalid   = fmt.Errorf("%w: country code must be two letters", ErrInvalidValue)
	ErrCategoryNameMissing  = fmt.Errorf("%w: category name is required", ErrMissingValue)
	ErrMemberNumberMissing  = fmt.Errorf("%w: member number is required", ErrMissingValue)
	ErrMembershipEndsBefore = fmt.Errorf("%w: membership must not end before it starts", ErrInvalidValue)
)

// Partner is a person or company: publishers, authors and the persons behind members.
type Partner struct {
	PartnerID   PartnerIDString
	Name        string
	City        string
	CountryCode string
}

// NormalizeCountryCode upper-cases the code and checks it is two ASCII letters. Empty stays empty.
func NormalizeCountryCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", nil
	}

	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", fmt.Errorf("%w: %q", ErrCountryCodeInvalid, code)
	}

	return code, nil
}

// Member is a library member. Name, city and country are the ones of the embedded partner.
type Member struct {
	MemberID MemberIDString
	Partner
	MemberNumber string
	Since        time.Time
	End          time.Time
	DateOfBirth  time.Time
}

// IsActive is true as long as the membership has started and has no end date or it lies in the future.
func (m Member) IsActive(today time.Time) bool {
	today = ToDate(today)

	if !m.Since.IsZero() && ToDate(m.Since).After(today) {
		return false
	}

	return m.End.IsZero() || ToDate(m.End).After(today)
}

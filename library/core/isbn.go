package core

import (
	"fmt"
	"strings"
)

var (
	// ErrISBNMissing is returned by an explicit ISBN check when there is no ISBN at all.
	ErrISBNMissing = fmt.Errorf("%w: isbn is required", ErrMissingValue)

	// ErrISBNInvalid is returned when the check digit does not match.
	ErrISBNInvalid = fmt.Errorf("%w: isbn check digit does not match", ErrInvalidValue)

	// ErrISBNLengthUnsupported is returned when the ISBN has neither 10 nor 13 digits.
	ErrISBNLengthUnsupported = fmt.Errorf("%w: isbn must have 10 or 13 digits", ErrInvalidValue)
)

const (
	isbn13Length = 13
	isbn10Length = 10
)

// IsValidISBN reports whether isbn is a valid ISBN-13 or ISBN-10.
func IsValidISBN(isbn ISBNString) bool {
	return validateISBNDigits(isbn) == nil
}

// ValidateISBN is the validation on write: an empty or blank ISBN is fine, a given one must be valid.
func ValidateISBN(isbn ISBNString) error {
	if strings.TrimSpace(isbn) == "" {
		return nil
	}

	return validateISBNDigits(isbn)
}

// CheckISBN is the explicit check a user triggers, here a missing ISBN is an error as well.
func CheckISBN(isbn ISBNString) error {
	if strings.TrimSpace(isbn) == "" {
		return ErrISBNMissing
	}

	return validateISBNDigits(isbn)
}

// validateISBNDigits extracts the digits in order and ignores separators like dashes or spaces.
// For ISBN-10 a trailing X (or x) stands for the check value 10.
func validateISBNDigits(isbn ISBNString) error {
	digits := make([]int, 0, isbn13Length)
	trailingX := false

	for _, r := range isbn {
		switch {
		case r >= '0' && r <= '9':
			if trailingX {
				return ErrISBNLengthUnsupported
			}

			digits = append(digits, int(r-'0'))

		case r == 'X' || r == 'x':
			if trailingX {
				return ErrISBNLengthUnsupported
			}

			trailingX = true
		}
	}

	if trailingX {
		if len(digits) != isbn10Length-1 {
			return ErrISBNLengthUnsupported
		}

		digits = append(digits, 10)
	}

	switch len(digits) {
	case isbn13Length:
		if !validISBN13(digits) {
			return ErrISBNInvalid
		}

		return nil

	case isbn10Length:
		if !validISBN10(digits) {
			return ErrISBNInvalid
		}

		return nil

	default:
		return ErrISBNLengthUnsupported
	}
}

// validISBN13 weights the first 12 digits alternately by 1 and 3.
func validISBN13(digits []int) bool {
	sum := 0
	for i, d := range digits[:12] {
		if i%2 == 0 {
			sum += d
		} else {
			sum += 3 * d
		}
	}

	check := 0
	if r := sum % 10; r != 0 {
		check = 10 - r
	}

	return digits[12] == check
}

// validISBN10 weights all ten positions 10..1, the sum must be divisible by 11.
func validISBN10(digits []int) bool {
	sum := 0
	for i, d := range digits {
		sum += (isbn10Length - i) * d
	}

	return sum%11 == 0
}

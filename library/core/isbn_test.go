package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

func Test_IsValidISBN(t *testing.T) {
	testCases := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{name: "isbn-13 plain", isbn: "9780134190440", valid: true},
		{name: "isbn-13 with dashes", isbn: "978-0-13-419044-0", valid: true},
		{name: "isbn-13 with spaces", isbn: "978 1 098 10013 1", valid: true},
		{name: "isbn-13 check digit 0 from remainder 0", isbn: "9780134190440", valid: true},
		{name: "isbn-13 last digit changed", isbn: "9780134190441", valid: false},
		{name: "isbn-13 transposed digits", isbn: "9780314190440", valid: false},
		{name: "isbn-10 plain", isbn: "0306406152", valid: true},
		{name: "isbn-10 with dashes", isbn: "0-306-40615-2", valid: true},
		{name: "isbn-10 with X check", isbn: "0-8044-2957-X", valid: true},
		{name: "isbn-10 with lower x check", isbn: "080442957x", valid: true},
		{name: "isbn-10 wrong check digit", isbn: "0306406153", valid: false},
		{name: "12 digits", isbn: "978013419044", valid: false},
		{name: "14 digits", isbn: "97801341904400", valid: false},
		{name: "X in the middle", isbn: "0-8044-X-29575", valid: false},
		{name: "no digits", isbn: "abc", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			valid := core.IsValidISBN(tc.isbn)

			// assert
			assert.Equal(t, tc.valid, valid)
			assert.Equal(t, valid, core.IsValidISBN(tc.isbn), "validating twice must give the same result")
		})
	}
}

func Test_IsValidISBN_MatchesComputedCheckDigit_ForAllCheckDigits(t *testing.T) {
	// the first 12 digits of 9780134190440, weighted 1,3,1,3,... sum up to 80
	const prefix = "978013419044"

	for check := 0; check <= 9; check++ {
		// act
		valid := core.IsValidISBN(prefix + string(rune('0'+check)))

		// assert
		assert.Equal(t, check == 0, valid, "check digit %d", check)
	}
}

func Test_ValidateISBN(t *testing.T) {
	testCases := []struct {
		name        string
		isbn        string
		expectedErr error
	}{
		{name: "empty is allowed on write", isbn: "", expectedErr: nil},
		{name: "blank is allowed on write", isbn: "  \t ", expectedErr: nil},
		{name: "valid", isbn: "9780134190440", expectedErr: nil},
		{name: "invalid checksum", isbn: "9780134190441", expectedErr: core.ErrISBNInvalid},
		{name: "unsupported length", isbn: "12345", expectedErr: core.ErrISBNLengthUnsupported},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			err := core.ValidateISBN(tc.isbn)

			// assert
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorIs(t, err, core.ErrInvalidValue)
		})
	}
}

func Test_CheckISBN_DistinguishesMissingFromInvalid(t *testing.T) {
	// act
	missingErr := core.CheckISBN("")
	blankErr := core.CheckISBN("   ")
	invalidErr := core.CheckISBN("9780134190441")
	validErr := core.CheckISBN("9780134190440")

	// assert
	assert.ErrorIs(t, missingErr, core.ErrISBNMissing)
	assert.ErrorIs(t, missingErr, core.ErrMissingValue)
	assert.NotErrorIs(t, missingErr, core.ErrInvalidValue)
	assert.ErrorIs(t, blankErr, core.ErrISBNMissing)
	assert.NotErrorIs(t, blankErr, core.ErrInvalidValue)

	assert.ErrorIs(t, invalidErr, core.ErrISBNInvalid)
	assert.NotErrorIs(t, invalidErr, core.ErrMissingValue)

	assert.NoError(t, validErr)
}

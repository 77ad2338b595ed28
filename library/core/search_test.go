package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

func Test_SearchAgeDays_FlipsComparisonOperators(t *testing.T) {
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		op       core.Operator
		expected core.Operator
	}{
		{op: core.OpGreater, expected: core.OpLess},
		{op: core.OpGreaterEqual, expected: core.OpLessEqual},
		{op: core.OpLess, expected: core.OpGreater},
		{op: core.OpLessEqual, expected: core.OpGreaterEqual},
		{op: core.OpEqual, expected: core.OpEqual},
		{op: core.OpNotEqual, expected: core.OpNotEqual},
	}

	for _, tc := range testCases {
		t.Run(string(tc.op), func(t *testing.T) {
			// act
			predicate := core.SearchAgeDays(tc.op, 30, today)

			// assert
			assert.Equal(t, core.SearchFieldReleaseDate, predicate.Field)
			assert.Equal(t, tc.expected, predicate.Operator)
			assert.Equal(t, time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC), predicate.Date)
		})
	}
}

func Test_SearchAgeDays_AgreesWithAgeDays(t *testing.T) {
	// arrange
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	older := today.AddDate(0, 0, -100)
	newer := today.AddDate(0, 0, -5)
	predicate := core.SearchAgeDays(core.OpGreater, 30, today)

	// act & assert
	assert.True(t, predicate.MatchesDate(older))
	assert.Greater(t, core.AgeDays(older, today), 30)
	assert.False(t, predicate.MatchesDate(newer))
	assert.False(t, predicate.MatchesDate(time.Time{}))
}

func Test_SearchPublisherCountry(t *testing.T) {
	// act
	predicate, err := core.SearchPublisherCountry(core.OpEqual, "de")

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.SearchFieldPublisherCountry, predicate.Field)
	assert.True(t, predicate.MatchesText("DE"))
	assert.False(t, predicate.MatchesText("AT"))

	_, err = core.SearchPublisherCountry(core.OpGreater, "de")
	assert.ErrorIs(t, err, core.ErrUnsupportedOperator)
}

func Test_ParseOperator(t *testing.T) {
	op, err := core.ParseOperator("==")
	assert.NoError(t, err)
	assert.Equal(t, core.OpEqual, op)

	_, err = core.ParseOperator("like")
	assert.ErrorIs(t, err, core.ErrUnsupportedOperator)
}

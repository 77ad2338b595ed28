package registerpartner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/registerpartner"
)

var fakeClock = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func Test_Decide_Success_NormalizesInput(t *testing.T) {
	// arrange
	command := registerpartner.BuildCommand(core.Partner{PartnerID: "p-1", Name: " O'Reilly ", City: "Sebastopol", CountryCode: "us"}, core.SystemActor, fakeClock)

	// act
	result := registerpartner.Decide(core.DomainEvents{}, command)

	// assert
	require.NoError(t, result.HasError())
	event, ok := result.Event.(core.PartnerRegistered)
	require.True(t, ok, "expected PartnerRegistered, got %T", result.Event)
	assert.Equal(t, "O'Reilly", event.Name)
	assert.Equal(t, "US", event.CountryCode)
}

func Test_Decide_Idempotent_WhenAlreadyRegistered(t *testing.T) {
	// arrange
	partner := core.Partner{PartnerID: "p-1", Name: "O'Reilly"}
	history := core.DomainEvents{core.BuildPartnerRegistered(partner, fakeClock.Add(-time.Hour))}

	// act
	result := registerpartner.Decide(history, registerpartner.BuildCommand(partner, core.SystemActor, fakeClock))

	// assert
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		partner     core.Partner
		expectedErr error
	}{
		{name: "missing id", partner: core.Partner{Name: "O'Reilly"}, expectedErr: core.ErrMissingValue},
		{name: "missing name", partner: core.Partner{PartnerID: "p-1", Name: "  "}, expectedErr: core.ErrPartnerNameMissing},
		{name: "invalid country", partner: core.Partner{PartnerID: "p-1", Name: "O'Reilly", CountryCode: "USA"}, expectedErr: core.ErrCountryCodeInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := registerpartner.Decide(core.DomainEvents{}, registerpartner.BuildCommand(tc.partner, core.SystemActor, fakeClock))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.IsType(t, core.RegisteringPartnerFailed{}, result.Event)
		})
	}
}

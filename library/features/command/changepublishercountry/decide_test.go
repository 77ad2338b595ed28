package changepublishercountry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/changepublishercountry"
)

var fakeClock = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func Test_Decide_Success_ChangesThePublisher(t *testing.T) {
	// act
	result := changepublishercountry.Decide(givenBookWithPublisher("pub-1"), givenCommand("de"))

	// assert
	require.NoError(t, result.HasError())
	event, ok := result.Event.(core.PartnerCountryChanged)
	require.True(t, ok, "expected PartnerCountryChanged, got %T", result.Event)
	assert.Equal(t, "pub-1", event.PartnerID)
	assert.Equal(t, "DE", event.CountryCode)
}

func Test_Decide_Idempotent_WhenCountryIsUnchanged(t *testing.T) {
	// arrange
	history := append(givenBookWithPublisher("pub-1"), core.BuildPartnerCountryChanged("pub-1", "DE", fakeClock.Add(-time.Minute)))

	// act
	result := changepublishercountry.Decide(history, givenCommand(" de "))

	// assert
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		history     core.DomainEvents
		country     string
		expectedErr error
	}{
		{name: "unknown book", history: core.DomainEvents{}, country: "DE", expectedErr: core.ErrNotFound},
		{name: "book without publisher", history: givenBookWithPublisher(""), country: "DE", expectedErr: changepublishercountry.ErrBookHasNoPublisher},
		{name: "publisher not registered", history: givenBookWithPublisher("pub-2"), country: "DE", expectedErr: core.ErrNotFound},
		{name: "invalid country", history: givenBookWithPublisher("pub-1"), country: "Germany", expectedErr: core.ErrCountryCodeInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := changepublishercountry.Decide(tc.history, givenCommand(tc.country))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.IsType(t, core.ChangingPublisherCountryFailed{}, result.Event)
		})
	}
}

/*** helpers ***/

func givenCommand(country string) changepublishercountry.Command {
	return changepublishercountry.BuildCommand("book-1", country, core.SystemActor, fakeClock)
}

func givenBookWithPublisher(publisherID string) core.DomainEvents {
	return core.DomainEvents{
		core.BuildPartnerRegistered(core.Partner{PartnerID: "pub-1", Name: "Addison-Wesley", City: "Boston", CountryCode: "US"}, fakeClock.Add(-2*time.Hour)),
		core.BuildBookAddedToCatalog("book-1", core.BookDetails{Title: "Refactoring", PublisherID: publisherID}, fakeClock.Add(-time.Hour)),
	}
}

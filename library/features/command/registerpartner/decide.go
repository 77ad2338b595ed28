package registerpartner

import (
	"fmt"
	"strings"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// Decide implements the business logic of registering a partner.
//
// Business Rules:
//
//	GIVEN: A partner with PartnerID
//	WHEN: RegisterPartner command is received
//	THEN: PartnerRegistered event is generated with a normalized country code
//	ERROR: the name is missing or the country code is not two letters
//	IDEMPOTENCY: If the partner is already registered, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if isRegistered(history, command.Partner.PartnerID) {
		return core.IdempotentDecision()
	}

	partner := command.Partner
	partner.Name = strings.TrimSpace(partner.Name)
	partner.City = strings.TrimSpace(partner.City)

	if partner.PartnerID == "" {
		return fail(command, fmt.Errorf("%w: partner id", core.ErrMissingValue))
	}

	if partner.Name == "" {
		return fail(command, core.ErrPartnerNameMissing)
	}

	country, err := core.NormalizeCountryCode(partner.CountryCode)
	if err != nil {
		return fail(command, err)
	}
	partner.CountryCode = country

	return core.SuccessDecision(core.BuildPartnerRegistered(partner, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildRegisteringPartnerFailed(command.Partner.PartnerID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func isRegistered(history core.DomainEvents, partnerID core.PartnerIDString) bool {
	for _, event := range history {
		if e, ok := event.(core.PartnerRegistered); ok && e.PartnerID == partnerID {
			return true
		}
	}

	return false
}

// BuildEventFilter creates the filter for the registration of the partner.
func BuildEventFilter(partnerID core.PartnerIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.PartnerRegisteredEventType).
		AndAnyPredicateOf(eventstore.P("PartnerID", partnerID)).
		Finalize()
}

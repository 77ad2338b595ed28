package registermember

import (
	"fmt"
	"strings"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// ErrMemberNumberTaken is returned when another member already holds the member number.
var ErrMemberNumberTaken = fmt.Errorf("%w: member number is taken", core.ErrAlreadyExists)

// Decide implements the business logic of registering a member.
//
// Business Rules:
//
//	GIVEN: A registered partner and a member number not used by any other member
//	WHEN: RegisterMember command is received
//	THEN: MemberRegistered event is generated
//	ERROR: unknown partner, missing or taken member number, membership ending before it starts
//	IDEMPOTENCY: If the member is already registered, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.Member)

	if s.memberRegistered {
		return core.IdempotentDecision()
	}

	member := command.Member
	member.MemberNumber = strings.TrimSpace(member.MemberNumber)

	if member.MemberID == "" {
		return fail(command, fmt.Errorf("%w: member id", core.ErrMissingValue))
	}

	if !s.partnerRegistered {
		return fail(command, fmt.Errorf("%w: partner %q", core.ErrNotFound, member.PartnerID))
	}

	if member.MemberNumber == "" {
		return fail(command, core.ErrMemberNumberMissing)
	}

	if _, taken := s.memberNumbers[member.MemberNumber]; taken {
		return fail(command, fmt.Errorf("%w: %q", ErrMemberNumberTaken, member.MemberNumber))
	}

	if !member.End.IsZero() && !member.Since.IsZero() && core.ToDate(member.End).Before(core.ToDate(member.Since)) {
		return fail(command, core.ErrMembershipEndsBefore)
	}

	return core.SuccessDecision(core.BuildMemberRegistered(member, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildRegisteringMemberFailed(command.Member.MemberID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

type state struct {
	memberRegistered  bool
	partnerRegistered bool
	memberNumbers     map[string]core.MemberIDString
}

func project(history core.DomainEvents, member core.Member) state {
	s := state{memberNumbers: make(map[string]core.MemberIDString)}

	for _, event := range history {
		switch e := event.(type) {
		case core.PartnerRegistered:
			if e.PartnerID == member.PartnerID {
				s.partnerRegistered = true
			}

		case core.MemberRegistered:
			if e.MemberID == member.MemberID {
				s.memberRegistered = true
			}
			s.memberNumbers[e.MemberNumber] = e.MemberID
		}
	}

	return s
}

// BuildEventFilter creates the filter for the member registration: the partner behind the member
// and all members, since member numbers are unique across members.
func BuildEventFilter(partnerID core.PartnerIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.PartnerRegisteredEventType).
		AndAnyPredicateOf(eventstore.P("PartnerID", partnerID)).
		OrMatching().
		AnyEventTypeOf(core.MemberRegisteredEventType).
		Finalize()
}

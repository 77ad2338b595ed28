package checkouts

import (
	"cmp"
	"slices"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

type memberInfo struct {
	number    string
	partnerID core.PartnerIDString
}

// Project implements the query logic for rents. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: The history of borrowed and returned books
//	WHEN: Checkouts query is executed
//	THEN: Checkouts is returned with all rents, or only the one with RentID
//	INCLUDES: book title, member number and name, overdue flag for ongoing rents
func Project(history core.DomainEvents, query Query, maxSequence uint) Checkouts { //nolint:gocognit // one case per relevant event type
	rents := make(map[core.RentIDString]*core.Rent)
	currentRent := make(map[core.BookIDString]core.RentIDString)
	titles := make(map[core.BookIDString]string)
	members := make(map[core.MemberIDString]memberInfo)
	names := make(map[core.PartnerIDString]string)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			titles[e.BookID] = e.Title

		case core.BookDetailsRevised:
			titles[e.BookID] = e.Title

		case core.MemberRegistered:
			members[e.MemberID] = memberInfo{number: e.MemberNumber, partnerID: e.PartnerID}

		case core.PartnerRegistered:
			names[e.PartnerID] = e.Name

		case core.BookBorrowed:
			rents[e.RentID] = &core.Rent{
				RentID:   e.RentID,
				BookID:   e.BookID,
				MemberID: e.MemberID,
				State:    core.RentStateOngoing,
				RentDate: core.ToDate(e.OccurredAt),
				DueDate:  e.DueDate,
			}
			currentRent[e.BookID] = e.RentID

		case core.BookReturned:
			if rent, ok := rents[e.RentID]; ok {
				rent.State = core.RentStateReturned
				rent.ReturnDate = e.ReturnDate
			}
			delete(currentRent, e.BookID)

		case core.BookStateChanged:
			if e.FromState == core.BookStateBorrowed && e.ToState == core.BookStateLost {
				if rent, ok := rents[currentRent[e.BookID]]; ok {
					rent.State = core.RentStateLost
				}
				delete(currentRent, e.BookID)
			}
		}
	}

	infos := make([]RentInfo, 0, len(rents))
	for _, rent := range rents {
		if query.RentID != "" && rent.RentID != query.RentID {
			continue
		}

		member := members[rent.MemberID]
		infos = append(infos, RentInfo{
			Rent:         *rent,
			BookTitle:    titles[rent.BookID],
			MemberNumber: member.number,
			MemberName:   names[member.partnerID],
			Overdue:      rent.IsOverdue(query.Today),
		})
	}

	slices.SortFunc(infos, func(a, b RentInfo) int {
		return cmp.Or(
			b.RentDate.Compare(a.RentDate),
			cmp.Compare(a.RentID, b.RentID),
		)
	})

	return Checkouts{
		Rents:          infos,
		Count:          len(infos),
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter creates the filter for rents and the books and members they refer to.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.BookStateChangedEventType,
			core.MemberRegisteredEventType,
			core.PartnerRegisteredEventType,
		).
		Finalize()
}

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/definecategory"
	"github.com/AntonStoeckl/library-books-go/library/features/command/registermember"
	"github.com/AntonStoeckl/library-books-go/library/features/command/registerpartner"
	"github.com/AntonStoeckl/library-books-go/library/features/query/partnerbooks"
)

type categoryRequest struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ParentID         string `json:"parentId"`
	BorrowPeriodDays int    `json:"borrowPeriodDays"`
}

type partnerRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
}

type memberRequest struct {
	ID           string `json:"id"`
	PartnerID    string `json:"partnerId"`
	MemberNumber string `json:"memberNumber"`
	Since        string `json:"since"`
	End          string `json:"end"`
	DateOfBirth  string `json:"dateOfBirth"`
}

type bookRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type partnerBooksResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CountryCode   string    `json:"countryCode,omitempty"`
	Published     []bookRef `json:"published"`
	Authored      []bookRef `json:"authored"`
	AuthoredCount int       `json:"authoredCount"`
}

func (s *Server) defineCategory(w http.ResponseWriter, r *http.Request) {
	var request categoryRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	category := core.Category{
		CategoryID:       idOrNew(request.ID),
		Name:             request.Name,
		ParentID:         request.ParentID,
		BorrowPeriodDays: request.BorrowPeriodDays,
	}
	command := definecategory.BuildCommand(category, ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.DefineCategory.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusCreated, category.CategoryID, result, err)
}

func (s *Server) registerPartner(w http.ResponseWriter, r *http.Request) {
	var request partnerRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	partner := core.Partner{
		PartnerID:   idOrNew(request.ID),
		Name:        request.Name,
		City:        request.City,
		CountryCode: request.CountryCode,
	}
	command := registerpartner.BuildCommand(partner, ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.RegisterPartner.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusCreated, partner.PartnerID, result, err)
}

func (s *Server) registerMember(w http.ResponseWriter, r *http.Request) {
	var request memberRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	member := core.Member{
		MemberID:     idOrNew(request.ID),
		Partner:      core.Partner{PartnerID: request.PartnerID},
		MemberNumber: request.MemberNumber,
	}

	var err error
	if member.Since, err = parseDate("since", request.Since); err != nil {
		writeError(w, err)
		return
	}
	if member.End, err = parseDate("end", request.End); err != nil {
		writeError(w, err)
		return
	}
	if member.DateOfBirth, err = parseDate("dateOfBirth", request.DateOfBirth); err != nil {
		writeError(w, err)
		return
	}

	command := registermember.BuildCommand(member, ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.RegisterMember.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusCreated, member.MemberID, result, err)
}

func (s *Server) partnerBooks(w http.ResponseWriter, r *http.Request) {
	result, err := s.handlers.PartnerBooks.Handle(r.Context(), partnerbooks.BuildQuery(chi.URLParam(r, "id"), ActorFrom(r.Context())))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, partnerBooksResponse{
		ID:            result.Partner.PartnerID,
		Name:          result.Partner.Name,
		CountryCode:   result.Partner.CountryCode,
		Published:     toBookRefs(result.Published),
		Authored:      toBookRefs(result.Authored),
		AuthoredCount: result.AuthoredCount,
	})
}

func toBookRefs(refs []partnerbooks.BookRef) []bookRef {
	out := make([]bookRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, bookRef{ID: ref.BookID, DisplayName: ref.DisplayName})
	}

	return out
}

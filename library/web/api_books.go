package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/borrowbook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/changebookstate"
	"github.com/AntonStoeckl/library-books-go/library/features/command/changepublishercountry"
	"github.com/AntonStoeckl/library-books-go/library/features/command/removebook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/returnbook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/revisebook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/togglebookarchive"
	"github.com/AntonStoeckl/library-books-go/library/features/query/bookdetails"
	"github.com/AntonStoeckl/library-books-go/library/features/query/checkbookisbn"
	"github.com/AntonStoeckl/library-books-go/library/features/query/listbooks"
)

type bookRequest struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ShortName    string   `json:"shortName"`
	ISBN         string   `json:"isbn"`
	ReleaseDate  string   `json:"releaseDate"`
	Pages        int      `json:"pages"`
	CostPrice    float64  `json:"costPrice"`
	RetailPrice  float64  `json:"retailPrice"`
	Currency     string   `json:"currency"`
	BookType     string   `json:"bookType"`
	Copies       int      `json:"copies"`
	Notes        string   `json:"notes"`
	Description  string   `json:"description"`
	OutOfPrint   bool     `json:"outOfPrint"`
	ReaderRating float64  `json:"readerRating"`
	CategoryID   string   `json:"categoryId"`
	PublisherID  string   `json:"publisherId"`
	AuthorIDs    []string `json:"authorIds"`
}

// toDetails builds the details of a new book.
func (b bookRequest) toDetails() (core.BookDetails, error) {
	releaseDate, err := parseDate("releaseDate", b.ReleaseDate)
	if err != nil {
		return core.BookDetails{}, err
	}

	return core.BookDetails{
		Title:        b.Title,
		ShortName:    b.ShortName,
		ISBN:         b.ISBN,
		ReleaseDate:  releaseDate,
		Pages:        b.Pages,
		CostPrice:    b.CostPrice,
		RetailPrice:  b.RetailPrice,
		Currency:     b.Currency,
		BookType:     core.BookType(b.BookType),
		Copies:       b.Copies,
		Notes:        b.Notes,
		Description:  b.Description,
		OutOfPrint:   b.OutOfPrint,
		ReaderRating: b.ReaderRating,
		CategoryID:   b.CategoryID,
		PublisherID:  b.PublisherID,
		AuthorIDs:    b.AuthorIDs,
	}, nil
}

// bookPatchRequest is the body of PUT /api/books/{id}. Absent fields stay as they are,
// present ones are set, even to "", 0 or false.
type bookPatchRequest struct {
	Title        *string   `json:"title"`
	ShortName    *string   `json:"shortName"`
	ISBN         *string   `json:"isbn"`
	ReleaseDate  *string   `json:"releaseDate"`
	Pages        *int      `json:"pages"`
	CostPrice    *float64  `json:"costPrice"`
	RetailPrice  *float64  `json:"retailPrice"`
	Currency     *string   `json:"currency"`
	BookType     *string   `json:"bookType"`
	Copies       *int      `json:"copies"`
	Notes        *string   `json:"notes"`
	Description  *string   `json:"description"`
	OutOfPrint   *bool     `json:"outOfPrint"`
	ReaderRating *float64  `json:"readerRating"`
	CategoryID   *string   `json:"categoryId"`
	PublisherID  *string   `json:"publisherId"`
	AuthorIDs    *[]string `json:"authorIds"`
}

func (b bookPatchRequest) toPatch() (revisebook.Patch, error) {
	patch := revisebook.Patch{
		Title:        b.Title,
		ShortName:    b.ShortName,
		ISBN:         b.ISBN,
		Pages:        b.Pages,
		CostPrice:    b.CostPrice,
		RetailPrice:  b.RetailPrice,
		Currency:     b.Currency,
		Copies:       b.Copies,
		Notes:        b.Notes,
		Description:  b.Description,
		OutOfPrint:   b.OutOfPrint,
		ReaderRating: b.ReaderRating,
		CategoryID:   b.CategoryID,
		PublisherID:  b.PublisherID,
		AuthorIDs:    b.AuthorIDs,
	}

	if b.ReleaseDate != nil {
		releaseDate, err := parseDate("releaseDate", *b.ReleaseDate)
		if err != nil {
			return revisebook.Patch{}, err
		}
		patch.ReleaseDate = &releaseDate
	}

	if b.BookType != nil {
		bookType := core.BookType(*b.BookType)
		patch.BookType = &bookType
	}

	return patch, nil
}

type bookSummary struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	Title            string `json:"title"`
	ISBN             string `json:"isbn,omitempty"`
	ReleaseDate      string `json:"releaseDate,omitempty"`
	AgeDays          int    `json:"ageDays"`
	State            string `json:"state"`
	Active           bool   `json:"active"`
	PublisherCountry string `json:"publisherCountry,omitempty"`
}

type bookListResponse struct {
	Books []bookSummary `json:"books"`
	Count int           `json:"count"`
}

type bookDetailsResponse struct {
	bookSummary
	ShortName        string   `json:"shortName,omitempty"`
	Pages            int      `json:"pages,omitempty"`
	RetailPrice      float64  `json:"retailPrice,omitempty"`
	Currency         string   `json:"currency,omitempty"`
	BookType         string   `json:"bookType"`
	Copies           int      `json:"copies"`
	Description      string   `json:"description,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	OutOfPrint       bool     `json:"outOfPrint"`
	Category         string   `json:"category,omitempty"`
	BorrowPeriodDays int      `json:"borrowPeriodDays"`
	Publisher        string   `json:"publisher,omitempty"`
	PublisherCity    string   `json:"publisherCity,omitempty"`
	Authors          []string `json:"authors"`
	DueDate          string   `json:"dueDate,omitempty"`
	Overdue          bool     `json:"overdue"`
	LastBorrowDate   string   `json:"lastBorrowDate,omitempty"`
}

type isbnCheckResponse struct {
	ID      string `json:"id"`
	ISBN    string `json:"isbn"`
	Outcome string `json:"outcome"`
	Warning bool   `json:"warning"`
	Message string `json:"message,omitempty"`
}

type stateRequest struct {
	State string `json:"state"`
}

type borrowRequest struct {
	MemberID string `json:"memberId"`
	RentID   string `json:"rentId"`
}

type countryRequest struct {
	CountryCode string `json:"countryCode"`
}

func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	today := s.clock()

	predicates, err := parseSearchPredicates(r, today)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := []listbooks.QueryOption{listbooks.WithPredicates(predicates...)}
	if r.URL.Query().Get("archived") == "true" {
		opts = append(opts, listbooks.WithArchived())
	}

	query := listbooks.BuildQuery(r.URL.Query().Get("q"), ActorFrom(r.Context()), today, opts...)

	result, err := s.handlers.ListBooks.Handle(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	response := bookListResponse{Books: make([]bookSummary, 0, result.Count), Count: result.Count}
	for _, book := range result.Books {
		response.Books = append(response.Books, bookSummary{
			ID:               book.BookID,
			DisplayName:      book.DisplayName,
			Title:            book.Title,
			ISBN:             book.ISBN,
			ReleaseDate:      formatDate(book.ReleaseDate),
			AgeDays:          book.AgeDays,
			State:            string(book.State),
			Active:           book.Active,
			PublisherCountry: book.PublisherCountry,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) addBook(w http.ResponseWriter, r *http.Request) {
	var request bookRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	details, err := request.toDetails()
	if err != nil {
		writeError(w, err)
		return
	}

	bookID := idOrNew(request.ID)
	command := addbook.BuildCommand(bookID, details, ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.AddBook.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusCreated, bookID, result, err)
}

func (s *Server) bookDetails(w http.ResponseWriter, r *http.Request) {
	view, err := s.handlers.BookDetails.Handle(
		r.Context(),
		bookdetails.BuildQuery(chi.URLParam(r, "id"), ActorFrom(r.Context()), s.clock()),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookDetailsResponse{
		bookSummary: bookSummary{
			ID:               view.BookID,
			DisplayName:      view.DisplayName,
			Title:            view.Title,
			ISBN:             view.ISBN,
			ReleaseDate:      formatDate(view.ReleaseDate),
			AgeDays:          view.AgeDays,
			State:            string(view.Lifecycle.State),
			Active:           view.Active,
			PublisherCountry: view.PublisherCountry,
		},
		ShortName:        view.ShortName,
		Pages:            view.Pages,
		RetailPrice:      view.RetailPrice,
		Currency:         view.Currency,
		BookType:         string(view.BookType),
		Copies:           view.Copies,
		Description:      view.Description,
		Notes:            view.Notes,
		OutOfPrint:       view.OutOfPrint,
		Category:         view.CategoryName,
		BorrowPeriodDays: view.BorrowPeriodDays,
		Publisher:        view.PublisherName,
		PublisherCity:    view.PublisherCity,
		Authors:          view.AuthorNames,
		DueDate:          formatDate(view.DueDate),
		Overdue:          view.Overdue,
		LastBorrowDate:   formatDate(view.LastBorrowDate),
	})
}

// reviseBook patches the details, so the remote client can send just a title.
func (s *Server) reviseBook(w http.ResponseWriter, r *http.Request) {
	var request bookPatchRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	patch, err := request.toPatch()
	if err != nil {
		writeError(w, err)
		return
	}

	bookID := chi.URLParam(r, "id")
	command := revisebook.BuildPatchCommand(bookID, patch, ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.ReviseBook.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusOK, bookID, result, err)
}

func (s *Server) removeBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	_, err := s.handlers.RemoveBook.Handle(r.Context(), removebook.BuildCommand(bookID, ActorFrom(r.Context()), s.clock()))
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) changeBookState(w http.ResponseWriter, r *http.Request) {
	var request stateRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	bookID := chi.URLParam(r, "id")
	command := changebookstate.BuildCommand(bookID, core.BookState(request.State), ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.ChangeBookState.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusOK, bookID, result, err)
}

func (s *Server) borrowBook(w http.ResponseWriter, r *http.Request) {
	var request borrowRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	bookID := chi.URLParam(r, "id")
	rentID := idOrNew(request.RentID)
	command := borrowbook.BuildCommand(bookID, request.MemberID, rentID, ActorFrom(r.Context()), s.clock())

	result, err := s.handlers.BorrowBook.Handle(r.Context(), command)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, commandResponse{ID: bookID, Idempotent: result.Idempotent, RentID: rentID})
}

func (s *Server) returnBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")
	result, err := s.handlers.ReturnBook.Handle(r.Context(), returnbook.BuildCommand(bookID, ActorFrom(r.Context()), s.clock()))

	writeCommandResult(w, http.StatusOK, bookID, result, err)
}

func (s *Server) toggleBookArchive(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")
	command := togglebookarchive.BuildCommand(bookID, ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.ToggleBookArchive.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusOK, bookID, result, err)
}

func (s *Server) changePublisherCountry(w http.ResponseWriter, r *http.Request) {
	var request countryRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, err)
		return
	}

	bookID := chi.URLParam(r, "id")
	command := changepublishercountry.BuildCommand(bookID, request.CountryCode, ActorFrom(r.Context()), s.clock())
	result, err := s.handlers.ChangePublisherCountry.Handle(r.Context(), command)

	writeCommandResult(w, http.StatusOK, bookID, result, err)
}

func (s *Server) checkBookISBN(w http.ResponseWriter, r *http.Request) {
	check, err := s.handlers.CheckBookISBN.Handle(r.Context(), checkbookisbn.BuildQuery(chi.URLParam(r, "id"), ActorFrom(r.Context())))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, isbnCheckResponse{
		ID:      check.BookID,
		ISBN:    check.ISBN,
		Outcome: string(check.Outcome),
		Warning: check.IsWarning(),
		Message: check.Message,
	})
}

package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AntonStoeckl/library-books-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/borrowbook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/changebookstate"
	"github.com/AntonStoeckl/library-books-go/library/features/command/changepublishercountry"
	"github.com/AntonStoeckl/library-books-go/library/features/command/definecategory"
	"github.com/AntonStoeckl/library-books-go/library/features/command/registermember"
	"github.com/AntonStoeckl/library-books-go/library/features/command/registerpartner"
	"github.com/AntonStoeckl/library-books-go/library/features/command/removebook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/returnbook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/revisebook"
	"github.com/AntonStoeckl/library-books-go/library/features/command/togglebookarchive"
	"github.com/AntonStoeckl/library-books-go/library/features/query/bookdetails"
	"github.com/AntonStoeckl/library-books-go/library/features/query/checkbookisbn"
	"github.com/AntonStoeckl/library-books-go/library/features/query/checkouts"
	"github.com/AntonStoeckl/library-books-go/library/features/query/listbooks"
	"github.com/AntonStoeckl/library-books-go/library/features/query/partnerbooks"
	"github.com/AntonStoeckl/library-books-go/library/shell"
	"github.com/AntonStoeckl/library-books-go/library/shell/observability"
)

const (
	logMsgRequestHandled = "http request handled"
	logAttrMethod        = "method"
	logAttrPath          = "path"
	logAttrStatus        = "status"
	logAttrDurationMS    = "duration_ms"
	logAttrRequestID     = "request_id"
)

// Handlers are the command and query handlers the HTTP surface dispatches to.
// The server wraps them with observability before they end up here.
type Handlers struct {
	AddBook                shell.CommandHandler[addbook.Command]
	ReviseBook             shell.CommandHandler[revisebook.Command]
	ChangeBookState        shell.CommandHandler[changebookstate.Command]
	BorrowBook             shell.CommandHandler[borrowbook.Command]
	ReturnBook             shell.CommandHandler[returnbook.Command]
	ToggleBookArchive      shell.CommandHandler[togglebookarchive.Command]
	RemoveBook             shell.CommandHandler[removebook.Command]
	ChangePublisherCountry shell.CommandHandler[changepublishercountry.Command]
	DefineCategory         shell.CommandHandler[definecategory.Command]
	RegisterPartner        shell.CommandHandler[registerpartner.Command]
	RegisterMember         shell.CommandHandler[registermember.Command]

	ListBooks     shell.QueryHandler[listbooks.Query, listbooks.Books]
	BookDetails   shell.QueryHandler[bookdetails.Query, bookdetails.BookView]
	CheckBookISBN shell.QueryHandler[checkbookisbn.Query, checkbookisbn.ISBNCheck]
	Checkouts     shell.QueryHandler[checkouts.Query, checkouts.Checkouts]
	PartnerBooks  shell.QueryHandler[partnerbooks.Query, partnerbooks.PartnerBooks]
}

// Server holds everything the routes need.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	metrics  *observability.PrometheusCollector
	logger   *slog.Logger
	clock    func() time.Time
	pages    *pages
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics instruments all routes and serves /metrics.
func WithMetrics(collector *observability.PrometheusCollector) Option {
	return func(s *Server) {
		s.metrics = collector
	}
}

// WithLogger sets the access logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock sets the clock used for command timestamps and "today" in queries.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// NewServer creates a Server. Templates are parsed here, so a broken template fails at startup.
func NewServer(handlers Handlers, auth *Authenticator, opts ...Option) (*Server, error) {
	p, err := parsePages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		handlers: handlers,
		auth:     auth,
		clock:    time.Now,
		pages:    p,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Router builds the chi router with all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	if s.metrics != nil {
		r.Use(s.metrics.InstrumentHTTP(routePattern))
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Get("/helloworld", s.helloWorld)

	r.Group(func(r chi.Router) {
		r.Use(s.auth.RequireUser)
		r.Use(correlation)

		r.Get("/checkouts", s.checkoutsPage)
		r.Get("/checkout/{rentID}", s.checkoutPage)

		r.Route("/api", func(r chi.Router) {
			r.Route("/books", func(r chi.Router) {
				r.Get("/", s.listBooks)
				r.Post("/", s.addBook)
				r.Get("/{id}", s.bookDetails)
				r.Put("/{id}", s.reviseBook)
				r.Delete("/{id}", s.removeBook)
				r.Post("/{id}/state", s.changeBookState)
				r.Post("/{id}/borrow", s.borrowBook)
				r.Post("/{id}/return", s.returnBook)
				r.Post("/{id}/archive", s.toggleBookArchive)
				r.Put("/{id}/publisher-country", s.changePublisherCountry)
				r.Get("/{id}/isbn-check", s.checkBookISBN)
			})

			r.Post("/categories", s.defineCategory)
			r.Post("/partners", s.registerPartner)
			r.Get("/partners/{id}/books", s.partnerBooks)
			r.Post("/members", s.registerMember)
		})
	})

	return r
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.logger == nil {
			next.ServeHTTP(w, r)
			return
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.InfoContext(r.Context(), logMsgRequestHandled,
			logAttrMethod, r.Method,
			logAttrPath, r.URL.Path,
			logAttrStatus, ww.Status(),
			logAttrDurationMS, shell.ToMilliseconds(time.Since(start)),
			logAttrRequestID, middleware.GetReqID(r.Context()),
		)
	})
}

// correlation makes the request ID the correlation ID of all events the request appends.
func correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			r = r.WithContext(shell.WithCorrelationID(r.Context(), reqID))
		}

		next.ServeHTTP(w, r)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unmatched"
}

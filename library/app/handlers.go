package app

import (
	"errors"

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
	"github.com/AntonStoeckl/library-books-go/library/shell/observable"
	"github.com/AntonStoeckl/library-books-go/library/web"
)

// Observability bundles the optional collectors and loggers. Nil fields are skipped.
type Observability struct {
	Metrics          shell.MetricsCollector
	Tracing          shell.TracingCollector
	Logger           shell.Logger
	ContextualLogger shell.ContextualLogger
}

// BuildHandlers creates all command and query handlers on top of the event store,
// each wrapped with the given observability.
func BuildHandlers(store shell.EventStore, obs Observability, retryOptions ...shell.RetryOption) (web.Handlers, error) {
	var (
		h    web.Handlers
		errs []error
	)

	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error

	h.AddBook, err = wrapCommand[addbook.Command](
		addbook.NewCommandHandler(store, addbook.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.ReviseBook, err = wrapCommand[revisebook.Command](
		revisebook.NewCommandHandler(store, revisebook.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.ChangeBookState, err = wrapCommand[changebookstate.Command](
		changebookstate.NewCommandHandler(store, changebookstate.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.BorrowBook, err = wrapCommand[borrowbook.Command](
		borrowbook.NewCommandHandler(store, borrowbook.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.ReturnBook, err = wrapCommand[returnbook.Command](
		returnbook.NewCommandHandler(store, returnbook.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.ToggleBookArchive, err = wrapCommand[togglebookarchive.Command](
		togglebookarchive.NewCommandHandler(store, togglebookarchive.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.RemoveBook, err = wrapCommand[removebook.Command](
		removebook.NewCommandHandler(store, removebook.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.ChangePublisherCountry, err = wrapCommand[changepublishercountry.Command](
		changepublishercountry.NewCommandHandler(store, changepublishercountry.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.DefineCategory, err = wrapCommand[definecategory.Command](
		definecategory.NewCommandHandler(store, definecategory.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.RegisterPartner, err = wrapCommand[registerpartner.Command](
		registerpartner.NewCommandHandler(store, registerpartner.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.RegisterMember, err = wrapCommand[registermember.Command](
		registermember.NewCommandHandler(store, registermember.WithRetryOptions(retryOptions...)), obs)
	collect(err)

	h.ListBooks, err = wrapQuery[listbooks.Query, listbooks.Books](listbooks.NewQueryHandler(store), obs)
	collect(err)

	h.BookDetails, err = wrapQuery[bookdetails.Query, bookdetails.BookView](bookdetails.NewQueryHandler(store), obs)
	collect(err)

	h.CheckBookISBN, err = wrapQuery[checkbookisbn.Query, checkbookisbn.ISBNCheck](checkbookisbn.NewQueryHandler(store), obs)
	collect(err)

	h.Checkouts, err = wrapQuery[checkouts.Query, checkouts.Checkouts](checkouts.NewQueryHandler(store), obs)
	collect(err)

	h.PartnerBooks, err = wrapQuery[partnerbooks.Query, partnerbooks.PartnerBooks](partnerbooks.NewQueryHandler(store), obs)
	collect(err)

	if len(errs) > 0 {
		return web.Handlers{}, errors.Join(errs...)
	}

	return h, nil
}

func wrapCommand[C shell.Command](handler shell.CommandHandler[C], obs Observability) (shell.CommandHandler[C], error) {
	var opts []observable.CommandOption[C]

	if obs.Metrics != nil {
		opts = append(opts, observable.WithCommandMetrics[C](obs.Metrics))
	}
	if obs.Tracing != nil {
		opts = append(opts, observable.WithCommandTracing[C](obs.Tracing))
	}
	if obs.ContextualLogger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](obs.ContextualLogger))
	}
	if obs.Logger != nil {
		opts = append(opts, observable.WithCommandLogging[C](obs.Logger))
	}

	return observable.NewCommandWrapper(handler, opts...)
}

func wrapQuery[Q shell.Query, R shell.QueryResult](handler shell.QueryHandler[Q, R], obs Observability) (shell.QueryHandler[Q, R], error) {
	var opts []observable.QueryOption[Q, R]

	if obs.Metrics != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](obs.Metrics))
	}
	if obs.Tracing != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](obs.Tracing))
	}
	if obs.ContextualLogger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](obs.ContextualLogger))
	}
	if obs.Logger != nil {
		opts = append(opts, observable.WithQueryLogging[Q, R](obs.Logger))
	}

	return observable.NewQueryWrapper(handler, opts...)
}

// Package observable decorates command and query handlers with metrics, tracing and logging.
//
// The wrapped handlers stay free of observability concerns. A CommandWrapper turns the
// HandlerResult of a command handler into metrics, a QueryWrapper only needs timing and errors.
//
//	handler, err := observable.NewCommandWrapper[borrowbook.Command](
//		borrowbook.NewCommandHandler(store),
//		observable.WithCommandMetrics[borrowbook.Command](metrics),
//		observable.WithCommandLogging[borrowbook.Command](logger),
//	)
package observable

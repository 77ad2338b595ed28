package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

// StatusFor maps an error of the features to an HTTP status code.
// A validation error can carry several kinds, a missing value wins over an invalid one.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, core.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, core.ErrMissingValue):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidValue):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

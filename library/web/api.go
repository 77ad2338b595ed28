package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

const maxBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type commandResponse struct {
	ID         string `json:"id"`
	Idempotent bool   `json:"idempotent"`
	RentID     string `json:"rentId,omitempty"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: request body: %s", core.ErrMissingValue, err.Error())
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	writeJSON(w, status, errorResponse{Error: err.Error(), Status: status})
}

func writeCommandResult(w http.ResponseWriter, status int, id string, result shell.HandlerResult, err error) {
	if err != nil {
		writeError(w, err)
		return
	}

	if result.Idempotent {
		status = http.StatusOK
	}

	writeJSON(w, status, commandResponse{ID: id, Idempotent: result.Idempotent})
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a date like 2006-01-02", core.ErrInvalidValue, field, value)
	}

	return date, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

func idOrNew(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}

	return shell.NewID()
}

// parseComparison splits values like ">=3650" or "!=US" into operator and operand.
// Without an operator the comparison is an equality.
func parseComparison(raw string) (core.Operator, string, error) {
	raw = strings.TrimSpace(raw)
	end := strings.IndexFunc(raw, func(r rune) bool { return !strings.ContainsRune("<>=!", r) })
	if end < 0 {
		end = len(raw)
	}

	if end == 0 {
		return core.OpEqual, raw, nil
	}

	op, err := core.ParseOperator(raw[:end])
	if err != nil {
		return "", "", err
	}

	return op, strings.TrimSpace(raw[end:]), nil
}

func parseSearchPredicates(r *http.Request, today time.Time) ([]core.SearchPredicate, error) {
	var predicates []core.SearchPredicate

	if age := r.URL.Query().Get("age"); age != "" {
		op, operand, err := parseComparison(age)
		if err != nil {
			return nil, err
		}

		days, err := strconv.Atoi(operand)
		if err != nil {
			return nil, fmt.Errorf("%w: age %q must be a number of days", core.ErrInvalidValue, operand)
		}

		predicates = append(predicates, core.SearchAgeDays(op, days, today))
	}

	if country := r.URL.Query().Get("publisherCountry"); country != "" {
		op, operand, err := parseComparison(country)
		if err != nil {
			return nil, err
		}

		predicate, err := core.SearchPublisherCountry(op, operand)
		if err != nil {
			return nil, err
		}

		predicates = append(predicates, predicate)
	}

	return predicates, nil
}

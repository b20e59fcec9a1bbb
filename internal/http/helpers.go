package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
)

// writeJSON writes v with the given status code. The body is encoded before
// the status line goes out, so an unencodable value turns into a 500 with a
// structured error body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode response",
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldError, err,
			applog.FieldStatusCode, status)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(core.Failure(fmt.Errorf("encode response: %w", err)))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Debug("Failed to write response",
			applog.FieldComponent, applog.ComponentHTTP, applog.FieldError, err)
	}
}

// statusFor maps a service error to an HTTP status. Reads answer validation
// problems with 400, writes with 422.
func statusFor(err error, ok int) int {
	switch {
	case err == nil:
		return ok
	case errors.Is(err, core.ErrValidation) && ok == http.StatusCreated:
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// dateRange reads the inclusive range from the query string. Both parameters
// must be present; an empty value is a valid lexical bound.
func dateRange(r *http.Request) (start, end string, err error) {
	q := r.URL.Query()
	if !q.Has("start_date") || !q.Has("end_date") {
		return "", "", core.ErrMissingRange
	}
	return sanitizeInput(q.Get("start_date")), sanitizeInput(q.Get("end_date")), nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

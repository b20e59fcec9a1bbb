package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
)

const maxBodyBytes = 1 << 20

type createExpenseRequest struct {
	Date        string   `json:"date"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Note        string   `json:"note"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, core.Failure(fmt.Errorf("invalid request body: %w", err)))
		return
	}
	if req.Amount == nil {
		writeJSON(w, http.StatusUnprocessableEntity, core.Failure(fmt.Errorf("%w: amount is required", core.ErrValidation)))
		return
	}

	id, err := s.svc.AddExpense(r.Context(), core.NewExpense{
		Date:        req.Date,
		Amount:      *req.Amount,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Note:        req.Note,
	})
	writeJSON(w, statusFor(err, http.StatusCreated), core.ResultFrom(id, err))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, core.Failure(err))
		return
	}
	expenses, err := s.svc.ListExpenses(r.Context(), start, end)
	if err != nil {
		writeJSON(w, statusFor(err, http.StatusOK), core.Failure(err))
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleSummarizeExpenses(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, core.Failure(err))
		return
	}
	summary, err := s.svc.SummarizeExpenses(r.Context(), start, end)
	if err != nil {
		writeJSON(w, statusFor(err, http.StatusOK), core.Failure(err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": s.svc.Categories()})
}

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
	})
}

// handleReady reports whether the store answers
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.svc.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"store":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "store": "ok"})
}

func handleRateLimited(w http.ResponseWriter, r *http.Request) {
	slog.WarnContext(r.Context(), "Rate limit exceeded",
		applog.FieldComponent, applog.ComponentRateLimit,
		applog.FieldMethod, r.Method,
		applog.FieldPath, r.URL.Path)
	writeJSON(w, http.StatusTooManyRequests, core.Failure(errors.New("rate limit exceeded, try again later")))
}

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type (
	// Expense is a persisted expense row.
	Expense struct {
		ID          int64   `json:"id"`
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Subcategory string  `json:"subcategory"`
		Note        string  `json:"note"`
	}

	// NewExpense carries the caller-supplied fields of an expense before
	// the store assigns it an ID.
	NewExpense struct {
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Subcategory string  `json:"subcategory,omitempty"`
		Note        string  `json:"note,omitempty"`
	}

	// Result is the caller-facing outcome of an operation that can fail.
	Result struct {
		Status    string `json:"status"`
		ExpenseID int64  `json:"expense_id,omitempty"`
		Message   string `json:"message,omitempty"`
	}
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrMissingDate     = fmt.Errorf("%w: date is required", ErrValidation)
	ErrMissingCategory = fmt.Errorf("%w: category is required", ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("%w: amount must be a finite number", ErrValidation)
	ErrMissingRange    = fmt.Errorf("%w: start_date and end_date are required", ErrValidation)
	ErrNotFound        = errors.New("expense not found")
	ErrTotalOverflow   = errors.New("category total exceeds the representable range")
)

func (e NewExpense) Validate() error {
	if strings.TrimSpace(e.Date) == "" {
		return ErrMissingDate
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrMissingCategory
	}
	return nil
}

// WithID returns the stored form of e.
func (e NewExpense) WithID(id int64) Expense {
	return Expense{
		ID:          id,
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Note:        e.Note,
	}
}

// InRange reports whether the expense date lies in [start, end] using
// lexical comparison, the same ordering SQLite applies to TEXT columns.
func (e Expense) InRange(start, end string) bool {
	return e.Date >= start && e.Date <= end
}

func Success(id int64) Result {
	return Result{Status: StatusSuccess, ExpenseID: id}
}

func Failure(err error) Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result{Status: StatusError, Message: msg}
}

// ResultFrom converts the (id, err) pair of an insert into a Result.
func ResultFrom(id int64, err error) Result {
	if err != nil {
		return Failure(err)
	}
	return Success(id)
}

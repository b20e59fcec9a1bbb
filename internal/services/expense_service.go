package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/ports"
)

// ExpenseService is the operation boundary for recording and querying
// expenses. A nil publisher disables event publishing.
type ExpenseService struct {
	store     ports.ExpenseStore
	publisher ports.EventPublisher
}

func NewExpenseService(store ports.ExpenseStore, publisher ports.EventPublisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
	}
}

// AddExpense stores e and publishes an expense.created event. The returned
// error wraps core.ErrValidation or storage.ErrPersistence.
func (s *ExpenseService) AddExpense(ctx context.Context, e core.NewExpense) (int64, error) {
	if err := e.Validate(); err != nil {
		slog.WarnContext(ctx, "Rejected expense",
			applog.NewFields().WithComponent(applog.ComponentExpense).WithOperation(applog.OpAdd).WithError(err).
				WithExpense(0, e.Date, e.Amount, e.Category).ToSlice()...)
		return 0, err
	}

	id, err := s.store.Insert(ctx, e)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to save expense",
			applog.NewFields().WithComponent(applog.ComponentExpense).WithOperation(applog.OpAdd).WithError(err).
				WithExpense(0, e.Date, e.Amount, e.Category).ToSlice()...)
		return 0, fmt.Errorf("save expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		applog.NewFields().WithComponent(applog.ComponentExpense).WithOperation(applog.OpAdd).
			WithExpense(id, e.Date, e.Amount, e.Category).ToSlice()...)

	// The row is durable at this point; publishing is best effort.
	if err := s.publishCreated(ctx, e.WithID(id)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish expense created message",
			applog.FieldComponent, applog.ComponentExpense,
			applog.FieldExpenseID, id, applog.FieldError, err)
	}

	return id, nil
}

// ListExpenses returns the expenses dated within [start, end]. Bounds are
// compared as plain strings; an empty start matches every earlier date.
func (s *ExpenseService) ListExpenses(ctx context.Context, start, end string) ([]core.Expense, error) {
	expenses, err := s.store.ListByRange(ctx, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list expenses",
			applog.NewFields().WithComponent(applog.ComponentExpense).WithOperation(applog.OpList).WithError(err).WithRange(start, end).ToSlice()...)
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	slog.DebugContext(ctx, "Listed expenses",
		applog.NewFields().WithComponent(applog.ComponentExpense).WithOperation(applog.OpList).
			WithRange(start, end).WithCount(len(expenses)).ToSlice()...)
	return expenses, nil
}

// SummarizeExpenses returns per-category totals for [start, end].
func (s *ExpenseService) SummarizeExpenses(ctx context.Context, start, end string) ([]core.CategorySummary, error) {
	summary, err := s.store.SummarizeByRange(ctx, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to summarize expenses",
			applog.NewFields().WithComponent(applog.ComponentExpense).WithOperation(applog.OpSummarize).WithError(err).WithRange(start, end).ToSlice()...)
		return nil, fmt.Errorf("summarize expenses: %w", err)
	}
	slog.DebugContext(ctx, "Summarized expenses",
		applog.NewFields().WithComponent(applog.ComponentExpense).WithOperation(applog.OpSummarize).
			WithRange(start, end).WithCount(len(summary)).ToSlice()...)
	return summary, nil
}

// Categories returns the advisory category names.
func (s *ExpenseService) Categories() []string {
	return core.Categories()
}

// Ping reports whether the store is reachable.
func (s *ExpenseService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *ExpenseService) publishCreated(ctx context.Context, e core.Expense) error {
	if s.publisher == nil {
		slog.DebugContext(ctx, "AMQP publisher not configured, skipping expense created message")
		return nil
	}
	return s.publisher.PublishExpenseCreated(ctx, e)
}

// Close closes both storage and publisher connections.
func (s *ExpenseService) Close() error {
	var errs []error

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %w", errors.Join(errs...))
	}

	return nil
}

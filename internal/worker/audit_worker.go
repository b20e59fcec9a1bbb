package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"expensetracker/internal/amqp"
	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/ports"
)

// AuditWorker checks that every announced expense is readable from the
// store exactly as it was announced.
type AuditWorker struct {
	store ports.ExpenseGetter

	verified   atomic.Int64
	missing    atomic.Int64
	mismatched atomic.Int64
}

// AuditStats counts audit outcomes since the worker started.
type AuditStats struct {
	Verified   int64
	Missing    int64
	Mismatched int64
}

func NewAuditWorker(store ports.ExpenseGetter) *AuditWorker {
	return &AuditWorker{store: store}
}

// HandleExpenseCreated processes a single expense created message from AMQP.
// Only store failures are returned, so the broker redelivers the message;
// a missing or different row is logged and counted.
func (w *AuditWorker) HandleExpenseCreated(ctx context.Context, msg *amqp.ExpenseCreatedMessage) error {
	stored, err := w.store.GetExpense(ctx, msg.ID)
	if errors.Is(err, core.ErrNotFound) {
		w.missing.Add(1)
		slog.ErrorContext(ctx, "Announced expense not found in store",
			applog.FieldComponent, applog.ComponentWorker,
			applog.FieldOperation, applog.OpAudit,
			applog.FieldExpenseID, msg.ID,
			"published_at", msg.Timestamp)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get expense from storage: %w", err)
	}

	announced := msg.Expense()
	if stored != announced {
		w.mismatched.Add(1)
		slog.WarnContext(ctx, "Stored expense differs from announcement",
			applog.FieldComponent, applog.ComponentWorker,
			applog.FieldOperation, applog.OpAudit,
			applog.FieldExpenseID, msg.ID,
			"stored", stored,
			"announced", announced)
		return nil
	}

	w.verified.Add(1)
	slog.InfoContext(ctx, "Expense verified",
		applog.NewFields().WithComponent(applog.ComponentWorker).WithOperation(applog.OpAudit).
			WithExpense(stored.ID, stored.Date, stored.Amount, stored.Category).ToSlice()...)
	return nil
}

func (w *AuditWorker) Stats() AuditStats {
	return AuditStats{
		Verified:   w.verified.Load(),
		Missing:    w.missing.Load(),
		Mismatched: w.mismatched.Load(),
	}
}

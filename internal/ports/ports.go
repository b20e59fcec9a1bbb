package ports

import (
	"context"

	"expensetracker/internal/core"
)

// Ports for outbound adapters.
type (
	ExpenseWriter interface {
		Insert(ctx context.Context, e core.NewExpense) (id int64, err error)
	}

	// ExpenseReader answers the date-range queries. Ranges are inclusive and
	// compared lexically.
	ExpenseReader interface {
		ListByRange(ctx context.Context, start, end string) ([]core.Expense, error)
		SummarizeByRange(ctx context.Context, start, end string) ([]core.CategorySummary, error)
	}

	ExpenseGetter interface {
		GetExpense(ctx context.Context, id int64) (core.Expense, error)
	}

	HealthChecker interface {
		Ping(ctx context.Context) error
	}

	// ExpenseStore is everything a backend must provide.
	ExpenseStore interface {
		ExpenseWriter
		ExpenseReader
		ExpenseGetter
		HealthChecker
		Close() error
	}

	// EventPublisher announces newly stored expenses to other processes.
	EventPublisher interface {
		PublishExpenseCreated(ctx context.Context, e core.Expense) error
		Close() error
	}
)

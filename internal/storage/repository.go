package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expensetracker/internal/core"

	_ "modernc.org/sqlite"
)

// ErrPersistence marks failures of the underlying database, as opposed to
// validation failures of the caller's input.
var ErrPersistence = errors.New("persistence failure")

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

// NewSQLiteRepository opens the database at dbPath and ensures the expenses
// schema exists. It is safe to call on every process start.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w: %w", ErrPersistence, err)
	}
	return nil
}

// Insert validates e and appends it, returning the assigned ID.
func (r *SQLiteRepository) Insert(ctx context.Context, e core.NewExpense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	id, err := r.queries.CreateExpense(ctx, CreateExpenseParams{
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Note:        e.Note,
	})
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w: %w", ErrPersistence, err)
	}

	slog.DebugContext(ctx, "Expense saved to SQLite",
		"id", id,
		"date", e.Date,
		"amount", e.Amount,
		"category", e.Category)

	return id, nil
}

// GetExpense returns a single expense by ID.
func (r *SQLiteRepository) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	row, err := r.queries.GetExpense(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, fmt.Errorf("get expense %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense %d: %w: %w", id, ErrPersistence, err)
	}
	return toCore(row), nil
}

// ListByRange returns expenses dated within [start, end], newest date first.
// Rows sharing a date keep insertion order.
func (r *SQLiteRepository) ListByRange(ctx context.Context, start, end string) ([]core.Expense, error) {
	rows, err := r.queries.ListExpensesByRange(ctx, DateRangeParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w: %w", ErrPersistence, err)
	}

	expenses := make([]core.Expense, len(rows))
	for i, row := range rows {
		expenses[i] = toCore(row)
	}
	return expenses, nil
}

// SummarizeByRange aggregates expenses dated within [start, end] by category.
func (r *SQLiteRepository) SummarizeByRange(ctx context.Context, start, end string) ([]core.CategorySummary, error) {
	rows, err := r.queries.ListCategoryAmountsByRange(ctx, DateRangeParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, fmt.Errorf("summarize expenses: %w: %w", ErrPersistence, err)
	}

	amounts := make([]core.CategoryAmount, len(rows))
	for i, row := range rows {
		amounts[i] = core.CategoryAmount{Category: row.Category, Amount: row.Amount}
	}
	return core.Summarize(amounts)
}

func toCore(e Expense) core.Expense {
	return core.Expense{
		ID:          e.ID,
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Note:        e.Note,
	}
}

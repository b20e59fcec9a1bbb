package storage

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

const createExpense = `
INSERT INTO expenses (date, amount, category, subcategory, note)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`

type CreateExpenseParams struct {
	Date        string
	Amount      float64
	Category    string
	Subcategory string
	Note        string
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createExpense,
		arg.Date,
		arg.Amount,
		arg.Category,
		arg.Subcategory,
		arg.Note,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getExpense = `
SELECT id, date, amount, category, subcategory, note
FROM expenses
WHERE id = ?
`

func (q *Queries) GetExpense(ctx context.Context, id int64) (Expense, error) {
	row := q.db.QueryRowContext(ctx, getExpense, id)
	var i Expense
	err := row.Scan(
		&i.ID,
		&i.Date,
		&i.Amount,
		&i.Category,
		&i.Subcategory,
		&i.Note,
	)
	return i, err
}

const listExpensesByRange = `
SELECT id, date, amount, category, subcategory, note
FROM expenses
WHERE date BETWEEN ? AND ?
ORDER BY date DESC, id ASC
`

type DateRangeParams struct {
	StartDate string
	EndDate   string
}

func (q *Queries) ListExpensesByRange(ctx context.Context, arg DateRangeParams) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpensesByRange, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Expense{}
	for rows.Next() {
		var i Expense
		if err := rows.Scan(
			&i.ID,
			&i.Date,
			&i.Amount,
			&i.Category,
			&i.Subcategory,
			&i.Note,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCategoryAmountsByRange = `
SELECT category, amount
FROM expenses
WHERE date BETWEEN ? AND ?
ORDER BY id
`

type ListCategoryAmountsByRangeRow struct {
	Category string
	Amount   float64
}

func (q *Queries) ListCategoryAmountsByRange(ctx context.Context, arg DateRangeParams) ([]ListCategoryAmountsByRangeRow, error) {
	rows, err := q.db.QueryContext(ctx, listCategoryAmountsByRange, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListCategoryAmountsByRangeRow{}
	for rows.Next() {
		var i ListCategoryAmountsByRangeRow
		if err := rows.Scan(&i.Category, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

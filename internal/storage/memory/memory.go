// Package memory provides an in-process expense store with the same
// semantics as the SQLite repository. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"expensetracker/internal/core"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	items  []core.Expense
}

func New() *Store {
	return &Store{}
}

// Insert validates e, stores it and returns the assigned ID.
func (s *Store) Insert(_ context.Context, e core.NewExpense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.items = append(s.items, e.WithID(s.nextID))
	return s.nextID, nil
}

func (s *Store) GetExpense(_ context.Context, id int64) (core.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Expense{}, fmt.Errorf("get expense %d: %w", id, core.ErrNotFound)
}

func (s *Store) ListByRange(_ context.Context, start, end string) ([]core.Expense, error) {
	s.mu.RLock()
	out := make([]core.Expense, 0)
	for _, e := range s.items {
		if e.InRange(start, end) {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	// items are in insertion order, so a stable sort keeps it for equal dates
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *Store) SummarizeByRange(_ context.Context, start, end string) ([]core.CategorySummary, error) {
	s.mu.RLock()
	var amounts []core.CategoryAmount
	for _, e := range s.items {
		if e.InRange(start, end) {
			amounts = append(amounts, core.CategoryAmount{Category: e.Category, Amount: e.Amount})
		}
	}
	s.mu.RUnlock()
	return core.Summarize(amounts)
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

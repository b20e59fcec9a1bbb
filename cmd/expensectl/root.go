package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/services"
	"expensetracker/internal/storage"
)

type app struct {
	out    io.Writer
	dbPath string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "expensectl",
		Short:         "Record and query expenses",
		Long:          "Record dated expenses and query them by inclusive date range, as rows or per-category totals.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.dbPath, "db", config.Load().SQLiteDBPath, "SQLite database path")

	root.AddCommand(
		a.initCmd(),
		a.addCmd(),
		a.listCmd(),
		a.summarizeCmd(),
		a.categoriesCmd(),
	)
	return root
}

// withService opens the store, runs fn and closes the store again.
func (a *app) withService(fn func(*services.ExpenseService) error) error {
	repo, err := storage.NewSQLiteRepository(a.dbPath)
	if err != nil {
		return err
	}
	svc := services.NewExpenseService(repo, nil)
	defer svc.Close()
	return fn(svc)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"expensetracker/internal/core"
	"expensetracker/internal/services"
)

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the expense store if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(func(*services.ExpenseService) error {
				fmt.Fprintf(a.out, "Expense store ready at %s\n", a.dbPath)
				return nil
			})
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var (
		e      core.NewExpense
		amount string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Example: `  expensectl add --date 2024-01-15 --amount 12.50 --category Food --note lunch
  expensectl add --date 2024-01-16 --amount=-5 --category Shopping --note refund`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			e.Amount, err = core.ParseAmount(amount)
			if err != nil {
				if perr := a.printJSON(core.Failure(err)); perr != nil {
					return perr
				}
				return err
			}

			return a.withService(func(svc *services.ExpenseService) error {
				id, err := svc.AddExpense(cmd.Context(), e)
				if perr := a.printJSON(core.ResultFrom(id, err)); perr != nil {
					return perr
				}
				return err
			})
		},
	}

	cmd.Flags().StringVar(&e.Date, "date", "", "Expense date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount, dot or comma decimal separator")
	cmd.Flags().StringVar(&e.Category, "category", "", "Category, e.g. Food")
	cmd.Flags().StringVar(&e.Subcategory, "subcategory", "", "Optional subcategory")
	cmd.Flags().StringVar(&e.Note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

type rangeFlags struct {
	start string
	end   string
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.start, "start-date", "", "First day of the range, inclusive")
	cmd.Flags().StringVar(&r.end, "end-date", "", "Last day of the range, inclusive")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")
}

func (a *app) listCmd() *cobra.Command {
	var r rangeFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses in a date range, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(func(svc *services.ExpenseService) error {
				expenses, err := svc.ListExpenses(cmd.Context(), r.start, r.end)
				if err != nil {
					return err
				}
				return a.printJSON(expenses)
			})
		},
	}
	r.register(cmd)
	return cmd
}

func (a *app) summarizeCmd() *cobra.Command {
	var r rangeFlags
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Total expenses per category in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(func(svc *services.ExpenseService) error {
				summary, err := svc.SummarizeExpenses(cmd.Context(), r.start, r.end)
				if err != nil {
					return err
				}
				return a.printJSON(summary)
			})
		},
	}
	r.register(cmd)
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the suggested categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printJSON(map[string][]string{"categories": core.Categories()})
		},
	}
}

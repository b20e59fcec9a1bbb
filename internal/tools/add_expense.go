package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
)

type AddExpenseTool struct {
	svc ExpenseService
}

func NewAddExpenseTool(svc ExpenseService) *AddExpenseTool {
	return &AddExpenseTool{svc: svc}
}

func (t *AddExpenseTool) Handle() mcp.Tool {
	return mcp.NewTool(applog.OpAdd,
		mcp.WithDescription("Add a new expense entry."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Expense date, YYYY-MM-DD")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount spent; negative values record refunds")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category, e.g. Food or Transport")),
		mcp.WithString("subcategory", mcp.Description("Optional subcategory")),
		mcp.WithString("note", mcp.Description("Optional free-text note")),
	)
}

// Handler never flags the call as a protocol error: every outcome, including
// bad arguments, is reported through the status field of the result.
func (t *AddExpenseTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, err := decodeNewExpense(request)
	if err != nil {
		slog.WarnContext(ctx, "Invalid add_expense arguments",
			applog.FieldTool, applog.OpAdd, applog.FieldError, err)
		return jsonResult(ctx, applog.OpAdd, core.Failure(err))
	}

	id, err := t.svc.AddExpense(ctx, e)
	return jsonResult(ctx, applog.OpAdd, core.ResultFrom(id, err))
}

func decodeNewExpense(request mcp.CallToolRequest) (core.NewExpense, error) {
	date, err := request.RequireString("date")
	if err != nil {
		return core.NewExpense{}, fmt.Errorf("%w: %v", core.ErrValidation, err)
	}
	category, err := request.RequireString("category")
	if err != nil {
		return core.NewExpense{}, fmt.Errorf("%w: %v", core.ErrValidation, err)
	}
	amount, err := amountArgument(request.GetArguments())
	if err != nil {
		return core.NewExpense{}, err
	}

	return core.NewExpense{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Subcategory: request.GetString("subcategory", ""),
		Note:        request.GetString("note", ""),
	}, nil
}

// amountArgument accepts JSON numbers and numeric strings with either
// decimal separator.
func amountArgument(args map[string]any) (float64, error) {
	raw, ok := args["amount"]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: amount is required", core.ErrValidation)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return core.ParseAmount(v)
	default:
		return 0, fmt.Errorf("%w: amount must be a number, got %T", core.ErrValidation, raw)
	}
}

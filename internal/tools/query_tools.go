package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
)

func rangeTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("First day of the range, inclusive (YYYY-MM-DD)")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("Last day of the range, inclusive (YYYY-MM-DD)")),
	)
}

func rangeArguments(request mcp.CallToolRequest) (string, string, error) {
	start, err := request.RequireString("start_date")
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", core.ErrValidation, err)
	}
	end, err := request.RequireString("end_date")
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", core.ErrValidation, err)
	}
	return start, end, nil
}

type ListExpensesTool struct {
	svc ExpenseService
}

func NewListExpensesTool(svc ExpenseService) *ListExpensesTool {
	return &ListExpensesTool{svc: svc}
}

func (t *ListExpensesTool) Handle() mcp.Tool {
	return rangeTool(applog.OpList, "List expenses dated between two dates, newest first.")
}

func (t *ListExpensesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := rangeArguments(request)
	if err != nil {
		return errorResult(ctx, applog.OpList, err), nil
	}

	expenses, err := t.svc.ListExpenses(ctx, start, end)
	if err != nil {
		return errorResult(ctx, applog.OpList, err), nil
	}
	return jsonResult(ctx, applog.OpList, expenses)
}

type SummarizeExpensesTool struct {
	svc ExpenseService
}

func NewSummarizeExpensesTool(svc ExpenseService) *SummarizeExpensesTool {
	return &SummarizeExpensesTool{svc: svc}
}

func (t *SummarizeExpensesTool) Handle() mcp.Tool {
	return rangeTool(applog.OpSummarize, "Total and count expenses per category between two dates.")
}

func (t *SummarizeExpensesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := rangeArguments(request)
	if err != nil {
		return errorResult(ctx, applog.OpSummarize, err), nil
	}

	summary, err := t.svc.SummarizeExpenses(ctx, start, end)
	if err != nil {
		return errorResult(ctx, applog.OpSummarize, err), nil
	}
	return jsonResult(ctx, applog.OpSummarize, summary)
}

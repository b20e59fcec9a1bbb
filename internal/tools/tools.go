// Package tools exposes the expense operations as Model Context Protocol
// tools and resources.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
)

const (
	ServerName    = "ExpenseTracker"
	CategoriesURI = "expense:///categories"
)

// ExpenseService is the operation boundary the tools call into.
type ExpenseService interface {
	AddExpense(ctx context.Context, e core.NewExpense) (int64, error)
	ListExpenses(ctx context.Context, start, end string) ([]core.Expense, error)
	SummarizeExpenses(ctx context.Context, start, end string) ([]core.CategorySummary, error)
	Categories() []string
}

// Tool pairs an MCP tool definition with its handler.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// NewServer builds an MCP server with every expense tool and the categories
// resource registered.
func NewServer(svc ExpenseService, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	for _, tool := range All(svc) {
		s.AddTool(tool.Handle(), tool.Handler)
	}

	s.AddResource(CategoriesResource(), CategoriesHandler(svc))
	return s
}

// All returns the expense tools in registration order.
func All(svc ExpenseService) []Tool {
	return []Tool{
		NewAddExpenseTool(svc),
		NewListExpensesTool(svc),
		NewSummarizeExpensesTool(svc),
	}
}

// CategoriesResource describes the static category list.
func CategoriesResource() mcp.Resource {
	return mcp.NewResource(CategoriesURI, "categories",
		mcp.WithResourceDescription("Suggested expense categories"),
		mcp.WithMIMEType("application/json"),
	)
}

// CategoriesHandler serves {"categories": [...]} indented by two spaces.
func CategoriesHandler(svc ExpenseService) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		body, err := json.MarshalIndent(map[string][]string{"categories": svc.Categories()}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode categories: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CategoriesURI,
				MIMEType: "application/json",
				Text:     string(body),
			},
		}, nil
	}
}

// jsonResult encodes v as the text content of a successful tool result. A
// value that cannot be encoded becomes a structured error result.
func jsonResult(ctx context.Context, op string, v any) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResult(ctx, op, fmt.Errorf("encode tool result: %w", err)), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

// errorResult flags the call as failed and carries the structured failure
// payload as text.
func errorResult(ctx context.Context, op string, err error) *mcp.CallToolResult {
	slog.WarnContext(ctx, "Tool call failed",
		applog.FieldComponent, applog.ComponentTools,
		applog.FieldTool, op,
		applog.FieldError, err)

	body, merr := json.Marshal(core.Failure(err))
	if merr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(body))
}

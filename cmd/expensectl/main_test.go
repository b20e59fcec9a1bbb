package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"expensetracker/internal/core"
)

func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--db", db}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAddListSummarize(t *testing.T) {
	db := filepath.Join(t.TempDir(), "expenses.db")

	if out, err := run(t, db, "init"); err != nil || !strings.Contains(out, db) {
		t.Fatalf("init: %v %q", err, out)
	}

	for i, args := range [][]string{
		{"add", "--date", "2024-01-01", "--amount", "10", "--category", "Food"},
		{"add", "--date", "2024-01-02", "--amount", "2,50", "--category", "Transport", "--note", "bus"},
		{"add", "--date", "2024-01-03", "--amount=-4", "--category", "Food", "--subcategory", "Refund"},
	} {
		out, err := run(t, db, args...)
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		var res core.Result
		if err := json.Unmarshal([]byte(out), &res); err != nil {
			t.Fatalf("decode %q: %v", out, err)
		}
		if res.Status != core.StatusSuccess || res.ExpenseID != int64(i+1) {
			t.Errorf("add %d result = %+v", i, res)
		}
	}

	out, err := run(t, db, "list", "--start-date", "2024-01-01", "--end-date", "2024-01-02")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var listed []core.Expense
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 2 || listed[0].Amount != 2.5 || listed[0].Note != "bus" {
		t.Errorf("unexpected list: %+v", listed)
	}

	out, err = run(t, db, "summarize", "--start-date", "2024-01-01", "--end-date", "2024-01-31")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	var summary []core.CategorySummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	want := []core.CategorySummary{{Category: "Food", Total: 6, Count: 2}, {Category: "Transport", Total: 2.5, Count: 1}}
	if len(summary) != 2 || summary[0] != want[0] || summary[1] != want[1] {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
}

func TestAddReportsFailures(t *testing.T) {
	db := filepath.Join(t.TempDir(), "expenses.db")

	out, err := run(t, db, "add", "--date", "2024-01-01", "--amount", "ten", "--category", "Food")
	if err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
	if !strings.Contains(out, `"status": "error"`) {
		t.Errorf("expected error result, got %q", out)
	}

	out, err = run(t, db, "add", "--date", " ", "--amount", "1", "--category", "Food")
	if err == nil || !strings.Contains(out, "date is required") {
		t.Errorf("blank date: err=%v out=%q", err, out)
	}

	if _, err := run(t, db, "add", "--amount", "1"); err == nil {
		t.Error("expected missing required flags error")
	}
}

func TestCategories(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "unused.db"), "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if !strings.HasPrefix(out, "{\n  \"categories\": [\n    \"Food\",") {
		t.Errorf("unexpected output: %q", out)
	}
}

package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerComponentAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Component: ComponentStorage, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown", FieldCategory, "Food")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "component=storage") || !strings.Contains(out, "category=Food") {
		t.Errorf("unexpected output: %s", out)
	}
	if logger.Component() != ComponentStorage {
		t.Errorf("Component() = %q", logger.Component())
	}
}

func TestLoggerOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Output: &buf}).WithComponent(ComponentTools)

	logger.Operation(context.Background(), OpAdd, nil, FieldExpenseID, 7)
	logger.Operation(context.Background(), OpList, errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "operation=add_expense") || !strings.Contains(out, "id=7") {
		t.Errorf("missing success record: %s", out)
	}
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "error=boom") {
		t.Errorf("missing failure record: %s", out)
	}
}

func TestLogFields(t *testing.T) {
	fields := NewFields().
		WithOperation(OpSummarize).
		WithRange("2024-01-01", "2024-01-31").
		WithRequestID("").
		WithError(nil)

	if fields.Len() != 3 {
		t.Fatalf("expected 3 fields, got %v", fields.ToSlice())
	}
	want := []any{FieldOperation, OpSummarize, FieldStartDate, "2024-01-01", FieldEndDate, "2024-01-31"}
	got := fields.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("ToSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToSlice()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	fields.WithExpense(0, "2024-01-02", 1.5, "Food").WithOperation(OpList)
	got = fields.ToSlice()
	for i := 0; i < len(got); i += 2 {
		if got[i] == FieldExpenseID {
			t.Error("zero id should be omitted")
		}
	}
	if got[0] != FieldOperation || got[1] != OpList {
		t.Errorf("resetting a key should keep its position: %v", got)
	}
	if fields.Len() != 6 {
		t.Errorf("Len() = %d, want 6", fields.Len())
	}
}

func TestLogFieldsOrderIsStable(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		logger := New(Config{Level: slog.LevelInfo, Output: &buf})
		logger.Info("added", NewFields().
			WithOperation(OpAdd).
			WithExpense(3, "2024-01-05", 2.5, "Food").
			WithCount(1).
			ToSlice()...)
		return buf.String()
	}

	first := render()
	op := strings.Index(first, "operation=")
	id := strings.Index(first, "id=3")
	cat := strings.Index(first, "category=Food")
	count := strings.Index(first, "count=1")
	if op < 0 || !(op < id && id < cat && cat < count) {
		t.Fatalf("fields out of order: %s", first)
	}
	for i := 0; i < 20; i++ {
		if next := render(); stripTime(next) != stripTime(first) {
			t.Fatalf("output changed between calls:\n%s\n%s", first, next)
		}
	}
}

func stripTime(line string) string {
	if i := strings.Index(line, " level="); i >= 0 {
		return line[i:]
	}
	return line
}

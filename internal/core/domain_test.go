package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewExpenseValidate(t *testing.T) {
	good := NewExpense{Date: "2024-01-05", Amount: 12.5, Category: "Food"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	refund := NewExpense{Date: "2024-01-05", Amount: -4, Category: "Shopping"}
	if err := refund.Validate(); err != nil {
		t.Fatalf("negative amounts must be accepted, got %v", err)
	}

	cases := []struct {
		name string
		e    NewExpense
		want error
	}{
		{"missing date", NewExpense{Amount: 1, Category: "Food"}, ErrMissingDate},
		{"blank date", NewExpense{Date: "  ", Amount: 1, Category: "Food"}, ErrMissingDate},
		{"missing category", NewExpense{Date: "2024-01-05", Amount: 1}, ErrMissingCategory},
		{"blank category", NewExpense{Date: "2024-01-05", Amount: 1, Category: " \t"}, ErrMissingCategory},
		{"nan amount", NewExpense{Date: "2024-01-05", Amount: math.NaN(), Category: "Food"}, ErrInvalidAmount},
		{"inf amount", NewExpense{Date: "2024-01-05", Amount: math.Inf(-1), Category: "Food"}, ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.e.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected error to wrap ErrValidation, got %v", err)
			}
		})
	}
}

func TestExpenseInRange(t *testing.T) {
	e := Expense{Date: "2024-01-05"}
	if !e.InRange("2024-01-05", "2024-01-05") {
		t.Fatal("bounds are inclusive")
	}
	if !e.InRange("2024-01-01", "2024-01-31") {
		t.Fatal("expected date inside range")
	}
	if e.InRange("2024-01-06", "2024-01-31") {
		t.Fatal("expected date before range to be excluded")
	}
	if e.InRange("2024-01-31", "2024-01-01") {
		t.Fatal("inverted range must match nothing")
	}
}

func TestResultFrom(t *testing.T) {
	ok := ResultFrom(7, nil)
	if ok.Status != StatusSuccess || ok.ExpenseID != 7 || ok.Message != "" {
		t.Fatalf("unexpected success result: %+v", ok)
	}

	failed := ResultFrom(0, ErrMissingCategory)
	if failed.Status != StatusError || failed.ExpenseID != 0 {
		t.Fatalf("unexpected failure result: %+v", failed)
	}
	if failed.Message != ErrMissingCategory.Error() {
		t.Fatalf("unexpected message %q", failed.Message)
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	if len(cats) != 8 || cats[0] != "Food" || cats[7] != "Other" {
		t.Fatalf("unexpected categories: %v", cats)
	}
	cats[0] = "changed"
	if Categories()[0] != "Food" {
		t.Fatal("Categories must not expose the backing slice")
	}
}

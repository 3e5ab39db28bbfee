package core

import (
	"testing"
	"time"
)

func TestNewExpense(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

	e, err := NewExpense(ExpenseInput{
		Amount:      "12.50",
		Category:    "Food",
		Date:        "2024-03-05",
		Description: "lunch",
	}, now)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.ID == "" {
		t.Fatalf("id not assigned")
	}
	if e.Amount.Cents != 1250 {
		t.Fatalf("amount got %d", e.Amount.Cents)
	}
	if e.Category != CategoryFood {
		t.Fatalf("category got %s", e.Category)
	}
	if !e.CreatedAt.Equal(now) {
		t.Fatalf("createdAt got %v", e.CreatedAt)
	}

	// Two expenses never share an ID.
	e2, err := NewExpense(ExpenseInput{Amount: "1", Date: "2024-03-05"}, now)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e2.ID == e.ID {
		t.Fatalf("ids must be unique")
	}
}

func TestNewExpenseDefaultsCategory(t *testing.T) {
	e, err := NewExpense(ExpenseInput{Amount: "4", Date: "2024-03-05"}, time.Now())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Category != DefaultCategory {
		t.Fatalf("expected default category, got %s", e.Category)
	}
}

func TestNewExpenseFieldErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    ExpenseInput
		field string
	}{
		{"empty amount", ExpenseInput{Amount: "", Date: "2024-03-05"}, "amount"},
		{"zero amount", ExpenseInput{Amount: "0", Date: "2024-03-05"}, "amount"},
		{"negative amount", ExpenseInput{Amount: "-3", Date: "2024-03-05"}, "amount"},
		{"non-numeric amount", ExpenseInput{Amount: "abc", Date: "2024-03-05"}, "amount"},
		{"empty date", ExpenseInput{Amount: "1", Date: ""}, "date"},
		{"bad date", ExpenseInput{Amount: "1", Date: "03/05/2024"}, "date"},
		{"unknown category", ExpenseInput{Amount: "1", Date: "2024-03-05", Category: "Gambling"}, "category"},
		{"display-only category", ExpenseInput{Amount: "1", Date: "2024-03-05", Category: "Health"}, "category"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewExpense(tc.in, time.Now())
			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if _, present := verrs[tc.field]; !present {
				t.Fatalf("expected error on field %q, got %v", tc.field, verrs)
			}
		})
	}
}

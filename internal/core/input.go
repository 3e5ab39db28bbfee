package core

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExpenseInput is the raw user input for a new expense, as supplied by the
// view layer. All fields arrive as strings and are validated here, before
// any storage call is made.
type ExpenseInput struct {
	Amount      string
	Category    string
	Date        string
	Description string
}

// ValidationErrors maps input field names to human-readable messages.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewExpense validates raw input and builds a ready-to-persist Expense.
// The ID and CreatedAt are assigned here; on failure the returned error is
// a ValidationErrors with one message per offending field.
func NewExpense(in ExpenseInput, now time.Time) (Expense, error) {
	errs := ValidationErrors{}

	cents, err := ParseDecimalToCents(in.Amount)
	if err != nil {
		errs["amount"] = "enter a positive amount"
	}

	var date Date
	if strings.TrimSpace(in.Date) == "" {
		errs["date"] = "select a date"
	} else if date, err = ParseDate(in.Date); err != nil {
		errs["date"] = "date must be a valid YYYY-MM-DD date"
	}

	category := DefaultCategory
	if raw := strings.TrimSpace(in.Category); raw != "" {
		category = Category(raw)
		if !category.Selectable() {
			errs["category"] = "unknown category"
		}
	}

	description := strings.TrimSpace(in.Description)
	if len(description) > 200 {
		errs["description"] = "description too long (max 200 characters)"
	}

	if len(errs) > 0 {
		return Expense{}, errs
	}

	return Expense{
		ID:          uuid.NewString(),
		Amount:      Money{Cents: cents},
		Category:    category,
		Date:        date,
		Description: description,
		CreatedAt:   now,
	}, nil
}

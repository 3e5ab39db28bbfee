package report

import (
	"testing"
	"time"

	"spendlog/internal/core"
)

func expense(id, date string, cents int64, cat core.Category) core.Expense {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Expense{
		ID:       id,
		Amount:   core.Money{Cents: cents},
		Category: cat,
		Date:     d,
	}
}

func TestAvailableMonthsEmptyList(t *testing.T) {
	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	months := AvailableMonths(nil, today)
	if len(months) != 1 {
		t.Fatalf("expected exactly the current month, got %v", months)
	}
	if months[0].Token != "2024-03" || months[0].Label != "March 2024" {
		t.Fatalf("unexpected month %+v", months[0])
	}
}

func TestAvailableMonthsOrderingAndNextMonth(t *testing.T) {
	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	expenses := []core.Expense{
		expense("a", "2024-01-10", 100, core.CategoryFood),
		expense("b", "2024-03-02", 100, core.CategoryFood),
		expense("c", "2024-01-20", 100, core.CategoryRent),
	}

	months := AvailableMonths(expenses, today)
	want := []string{"2024-03", "2024-01"}
	if len(months) != len(want) {
		t.Fatalf("expected %v, got %v", want, months)
	}
	for i, token := range want {
		if months[i].Token != token {
			t.Fatalf("position %d expected %s, got %s", i, token, months[i].Token)
		}
	}

	// A future-month expense pulls in the month after today.
	expenses = append(expenses, expense("d", "2024-05-01", 100, core.CategoryOther))
	months = AvailableMonths(expenses, today)
	want = []string{"2024-05", "2024-04", "2024-03", "2024-01"}
	for i, token := range want {
		if months[i].Token != token {
			t.Fatalf("position %d expected %s, got %v", i, token, months)
		}
	}
}

func TestAvailableMonthsYearWrap(t *testing.T) {
	today := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	expenses := []core.Expense{expense("a", "2025-02-01", 100, core.CategoryFood)}
	months := AvailableMonths(expenses, today)
	// Next month after December is January of the following year.
	found := false
	for _, m := range months {
		if m.Token == "2025-01" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 2025-01 in %v", months)
	}
}

func TestFilterByMonthAndTotal(t *testing.T) {
	expenses := []core.Expense{
		expense("a", "2024-03-05", 1250, core.CategoryFood),
		expense("b", "2024-03-05", 4000, core.CategoryRent),
		expense("c", "2024-02-28", 999, core.CategoryShopping),
	}

	march := FilterByMonth(expenses, "2024-03")
	if len(march) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(march))
	}
	if total := TotalAmount(march); total.Cents != 5250 {
		t.Fatalf("expected 5250 cents, got %d", total.Cents)
	}
	if total := TotalAmount(nil); total.Cents != 0 {
		t.Fatalf("empty list expected 0, got %d", total.Cents)
	}
	if got := FilterByMonth(expenses, "2024-04"); len(got) != 0 {
		t.Fatalf("expected no expenses, got %v", got)
	}
}

func TestSortByDateDescending(t *testing.T) {
	t1 := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	a := expense("a", "2024-03-01", 100, core.CategoryFood)
	b := expense("b", "2024-03-05", 100, core.CategoryFood)
	b.CreatedAt = t1
	c := expense("c", "2024-03-05", 100, core.CategoryFood)
	c.CreatedAt = t2

	input := []core.Expense{a, b, c}
	sorted := SortByDateDescending(input)

	// Most recent date first; same-day ties by CreatedAt descending.
	if sorted[0].ID != "c" || sorted[1].ID != "b" || sorted[2].ID != "a" {
		t.Fatalf("unexpected order: %s %s %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	// Input untouched.
	if input[0].ID != "a" {
		t.Fatalf("input mutated")
	}
}

func TestGroupByDay(t *testing.T) {
	expenses := SortByDateDescending([]core.Expense{
		expense("a", "2024-03-05", 1250, core.CategoryFood),
		expense("b", "2024-03-05", 4000, core.CategoryRent),
		expense("c", "2024-03-01", 700, core.CategoryOther),
	})

	groups := GroupByDay(expenses)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Date.String() != "2024-03-05" || groups[1].Date.String() != "2024-03-01" {
		t.Fatalf("group order wrong: %s, %s", groups[0].Date, groups[1].Date)
	}
	if groups[0].Label != "Tuesday, Mar 5" {
		t.Fatalf("label got %q", groups[0].Label)
	}
	if len(groups[0].Expenses) != 2 || len(groups[1].Expenses) != 1 {
		t.Fatalf("group sizes wrong: %d, %d", len(groups[0].Expenses), len(groups[1].Expenses))
	}
}

func TestCategoryTotals(t *testing.T) {
	expenses := []core.Expense{
		expense("a", "2024-03-05", 1250, core.CategoryFood),
		expense("b", "2024-03-05", 4000, core.CategoryRent),
	}

	totals := CategoryTotals(expenses)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	// Descending by amount: Rent 40.00 before Food 12.50.
	if totals[0].Category != core.CategoryRent || totals[0].Amount.Cents != 4000 {
		t.Fatalf("first total %+v", totals[0])
	}
	if totals[1].Category != core.CategoryFood || totals[1].Amount.Cents != 1250 {
		t.Fatalf("second total %+v", totals[1])
	}
	if totals[0].Color != core.CategoryRent.Color() {
		t.Fatalf("color not carried")
	}

	// Entries always sum to the list total.
	var sum int64
	for _, ct := range totals {
		sum += ct.Amount.Cents
	}
	if sum != TotalAmount(expenses).Cents {
		t.Fatalf("category totals sum %d != total %d", sum, TotalAmount(expenses).Cents)
	}
}

func TestCategoryTotalsTieBreak(t *testing.T) {
	expenses := []core.Expense{
		expense("a", "2024-03-05", 500, core.CategoryShopping),
		expense("b", "2024-03-05", 500, core.CategoryFood),
	}
	totals := CategoryTotals(expenses)
	// Equal totals keep first-encountered order.
	if totals[0].Category != core.CategoryShopping || totals[1].Category != core.CategoryFood {
		t.Fatalf("tie-break order wrong: %v", totals)
	}
}

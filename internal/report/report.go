// Package report holds the pure aggregation functions behind the home and
// calendar views. Every function is deterministic and recomputes from the
// full expense list; the only state is the caller-held month selection.
package report

import (
	"sort"
	"strings"
	"time"

	"spendlog/internal/core"
)

const monthTokenLayout = "2006-01"

// Month is a selectable month: a YYYY-MM token plus its display label.
type Month struct {
	Token string
	Label string
}

// DayGroup is one day section of the home view: all expenses sharing the
// same date, under a human-readable heading.
type DayGroup struct {
	Date     core.Date
	Label    string
	Expenses []core.Expense
}

// CategoryTotal is the per-category slice of the spending breakdown.
type CategoryTotal struct {
	Category core.Category
	Amount   core.Money
	Color    string
}

// MonthTokenOf returns the YYYY-MM token for an arbitrary point in time.
func MonthTokenOf(t time.Time) string {
	return t.Format(monthTokenLayout)
}

// AvailableMonths returns the distinct month tokens present among the
// expenses, most recent first. The month of today is always included; the
// month after today is included only when some expense lies in a future
// month.
func AvailableMonths(expenses []core.Expense, today time.Time) []Month {
	seen := make(map[string]struct{}, len(expenses)+2)
	for _, e := range expenses {
		seen[e.Date.MonthToken()] = struct{}{}
	}

	current := MonthTokenOf(today)
	seen[current] = struct{}{}

	hasFuture := false
	for token := range seen {
		if token > current {
			hasFuture = true
			break
		}
	}
	if hasFuture {
		next := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
		seen[MonthTokenOf(next)] = struct{}{}
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(tokens)))

	months := make([]Month, len(tokens))
	for i, token := range tokens {
		months[i] = Month{Token: token, Label: monthLabel(token)}
	}
	return months
}

func monthLabel(token string) string {
	t, err := time.Parse(monthTokenLayout, token)
	if err != nil {
		return token
	}
	return t.Format("January 2006")
}

// FilterByMonth keeps the expenses whose date starts with the given
// YYYY-MM token.
func FilterByMonth(expenses []core.Expense, token string) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if strings.HasPrefix(e.Date.String(), token) {
			out = append(out, e)
		}
	}
	return out
}

// SortByDateDescending returns a copy sorted by date, most recent first.
// Same-day expenses are ordered by CreatedAt descending so the result is
// deterministic regardless of input order.
func SortByDateDescending(expenses []core.Expense) []core.Expense {
	out := make([]core.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// TotalAmount sums the expense amounts; zero for an empty list.
func TotalAmount(expenses []core.Expense) core.Money {
	var total core.Money
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// GroupByDay buckets expenses by exact date. Group order is the first-seen
// order of the input, so a date-descending input yields date-descending
// sections; within a group the input order is preserved.
func GroupByDay(expenses []core.Expense) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)
	for _, e := range expenses {
		key := e.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Date: e.Date, Label: e.Date.DayLabel()})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
	}
	return groups
}

// CategoryTotals sums amounts per category present in the input, largest
// first. Equal totals keep the order in which the categories were first
// encountered.
func CategoryTotals(expenses []core.Expense) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[core.Category]int)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{
				Category: e.Category,
				Color:    e.Category.Color(),
			})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.Cents > totals[j].Amount.Cents
	})
	return totals
}

package http

import (
	"time"

	"spendlog/internal/core"
	"spendlog/internal/report"
)

type expensePayload struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type monthPayload struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

type dayGroupPayload struct {
	Date     string           `json:"date"`
	Label    string           `json:"label"`
	Expenses []expensePayload `json:"expenses"`
}

type categoryTotalPayload struct {
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Color       string `json:"color"`
}

// monthOverviewPayload is the home view: one month of expenses grouped by
// day, with the total and the category breakdown.
type monthOverviewPayload struct {
	Month      string                 `json:"month"`
	Label      string                 `json:"label"`
	TotalCents int64                  `json:"total_cents"`
	Total      string                 `json:"total"`
	Count      int                    `json:"count"`
	Days       []dayGroupPayload      `json:"days"`
	Categories []categoryTotalPayload `json:"categories"`
}

type calendarCellPayload struct {
	Day         int    `json:"day,omitempty"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	InMonth     bool   `json:"in_month"`
}

type calendarPayload struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Label string                `json:"label"`
	Cells []calendarCellPayload `json:"cells"`
}

func toExpensePayload(e core.Expense) expensePayload {
	return expensePayload{
		ID:          e.ID,
		AmountCents: e.Amount.Cents,
		Amount:      e.Amount.Format(),
		Category:    e.Category.String(),
		Icon:        e.Category.Icon(),
		Date:        e.Date.String(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func buildMonthOverview(expenses []core.Expense, token string) monthOverviewPayload {
	filtered := report.FilterByMonth(expenses, token)
	sorted := report.SortByDateDescending(filtered)

	total := report.TotalAmount(filtered)
	payload := monthOverviewPayload{
		Month:      token,
		Label:      monthTokenLabel(token),
		TotalCents: total.Cents,
		Total:      total.Format(),
		Count:      len(filtered),
		Days:       []dayGroupPayload{},
		Categories: []categoryTotalPayload{},
	}

	for _, group := range report.GroupByDay(sorted) {
		day := dayGroupPayload{
			Date:  group.Date.String(),
			Label: group.Label,
		}
		for _, e := range group.Expenses {
			day.Expenses = append(day.Expenses, toExpensePayload(e))
		}
		payload.Days = append(payload.Days, day)
	}

	for _, ct := range report.CategoryTotals(filtered) {
		payload.Categories = append(payload.Categories, categoryTotalPayload{
			Category:    ct.Category.String(),
			AmountCents: ct.Amount.Cents,
			Amount:      ct.Amount.Format(),
			Color:       ct.Color,
		})
	}

	return payload
}

func buildCalendar(expenses []core.Expense, year, month int) calendarPayload {
	payload := calendarPayload{
		Year:  year,
		Month: month,
		Label: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006"),
	}
	for _, cell := range report.BuildCalendarGrid(year, month, expenses) {
		payload.Cells = append(payload.Cells, calendarCellPayload{
			Day:         cell.Day,
			AmountCents: cell.Amount.Cents,
			Amount:      cell.Amount.Format(),
			InMonth:     cell.InMonth,
		})
	}
	return payload
}

func monthTokenLabel(token string) string {
	t, err := time.Parse("2006-01", token)
	if err != nil {
		return token
	}
	return t.Format("January 2006")
}

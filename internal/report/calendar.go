package report

import (
	"time"

	"spendlog/internal/core"
)

// CalendarCell is one cell of the monthly grid. Cells padding the first and
// last displayed weeks carry Day 0 and InMonth false.
type CalendarCell struct {
	Day     int
	Amount  core.Money
	InMonth bool
}

// BuildCalendarGrid lays the given month out as complete Sunday-aligned
// weeks. The result length is always a multiple of 7; each in-month cell
// carries the total spent on that day (zero when nothing was spent).
func BuildCalendarGrid(year, month int, expenses []core.Expense) []CalendarCell {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	offset := int(first.Weekday()) // 0 = Sunday

	daily := make(map[int]int64)
	for _, e := range expenses {
		if e.Date.Year() == year && int(e.Date.Month()) == month {
			daily[e.Date.Day()] += e.Amount.Cents
		}
	}

	cells := make([]CalendarCell, ((daysInMonth+offset+6)/7)*7)
	for i := range cells {
		day := i - offset + 1
		if day >= 1 && day <= daysInMonth {
			cells[i] = CalendarCell{
				Day:     day,
				Amount:  core.Money{Cents: daily[day]},
				InMonth: true,
			}
		}
	}
	return cells
}

// ShiftMonth moves a year/month pair by delta calendar months, wrapping
// across year boundaries. Used for prev/next calendar navigation.
func ShiftMonth(year, month, delta int) (int, int) {
	t := time.Date(year, time.Month(month+delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month())
}

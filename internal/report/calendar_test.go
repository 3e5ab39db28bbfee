package report

import (
	"testing"

	"spendlog/internal/core"
)

func TestBuildCalendarGridShape(t *testing.T) {
	cases := []struct {
		year, month int
		days        int
		offset      int // weekday of day 1, 0 = Sunday
	}{
		{2024, 3, 31, 5},  // March 2024 starts on a Friday
		{2024, 2, 29, 4},  // leap February
		{2025, 6, 30, 0},  // June 2025 starts on a Sunday
		{2026, 2, 28, 0},  // 28 days starting Sunday: exactly 4 weeks
		{2024, 12, 31, 0}, // December 2024
	}
	for _, tc := range cases {
		grid := BuildCalendarGrid(tc.year, tc.month, nil)
		if len(grid)%7 != 0 {
			t.Fatalf("%d-%02d: grid length %d not a multiple of 7", tc.year, tc.month, len(grid))
		}
		want := ((tc.days + tc.offset + 6) / 7) * 7
		if len(grid) != want {
			t.Fatalf("%d-%02d: expected %d cells, got %d", tc.year, tc.month, want, len(grid))
		}

		// In-month day numbers are exactly 1..daysInMonth, in order.
		next := 1
		for i, cell := range grid {
			if i < tc.offset || next > tc.days {
				if cell.InMonth || cell.Day != 0 || cell.Amount.Cents != 0 {
					t.Fatalf("%d-%02d: cell %d should be outside the month: %+v", tc.year, tc.month, i, cell)
				}
				continue
			}
			if !cell.InMonth || cell.Day != next {
				t.Fatalf("%d-%02d: cell %d expected day %d, got %+v", tc.year, tc.month, i, next, cell)
			}
			next++
		}
		if next != tc.days+1 {
			t.Fatalf("%d-%02d: covered days up to %d, want %d", tc.year, tc.month, next-1, tc.days)
		}
	}
}

func TestBuildCalendarGridAmounts(t *testing.T) {
	expenses := []core.Expense{
		expense("a", "2024-03-05", 1250, core.CategoryFood),
		expense("b", "2024-03-05", 4000, core.CategoryRent),
		expense("c", "2024-03-20", 700, core.CategoryOther),
		expense("d", "2024-02-05", 999, core.CategoryOther), // other month, ignored
	}

	grid := BuildCalendarGrid(2024, 3, expenses)
	byDay := make(map[int]int64)
	for _, cell := range grid {
		if cell.InMonth {
			byDay[cell.Day] = cell.Amount.Cents
		}
	}
	if byDay[5] != 5250 {
		t.Fatalf("day 5 expected 5250, got %d", byDay[5])
	}
	if byDay[20] != 700 {
		t.Fatalf("day 20 expected 700, got %d", byDay[20])
	}
	if byDay[6] != 0 {
		t.Fatalf("day 6 expected 0, got %d", byDay[6])
	}
}

func TestShiftMonth(t *testing.T) {
	cases := []struct {
		y, m, delta, wy, wm int
	}{
		{2024, 3, 1, 2024, 4},
		{2024, 12, 1, 2025, 1},
		{2024, 1, -1, 2023, 12},
		{2024, 6, -18, 2022, 12},
	}
	for _, tc := range cases {
		y, m := ShiftMonth(tc.y, tc.m, tc.delta)
		if y != tc.wy || m != tc.wm {
			t.Fatalf("ShiftMonth(%d, %d, %d) = %d, %d; want %d, %d",
				tc.y, tc.m, tc.delta, y, m, tc.wy, tc.wm)
		}
	}
}

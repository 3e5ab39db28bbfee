package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar date with no time-of-day semantics.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is immutable once created; there is no update operation,
	// records are hard-deleted by ID.
	Expense struct {
		ID          string
		Amount      Money
		Category    Category
		Date        Date
		Description string // optional note, empty means none
		CreatedAt   time.Time
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCategory = errors.New("invalid category")
	ErrEmptyID         = errors.New("empty expense id")
)

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MonthToken returns the YYYY-MM token of the month the date falls in.
func (d Date) MonthToken() string {
	return d.Format("2006-01")
}

// DayLabel returns the human-readable day heading, e.g. "Monday, Mar 5".
func (d Date) DayLabel() string {
	return d.Format("Monday, Jan 2")
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.Selectable() {
		return ErrInvalidCategory
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

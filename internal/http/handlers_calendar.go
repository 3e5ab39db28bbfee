package http

import (
	"fmt"
	"log/slog"
	"net/http"

	applog "spendlog/internal/log"
	"spendlog/internal/report"
)

// handleMonths returns the selectable months, most recent first.
func (s *Server) handleMonths(w http.ResponseWriter, _ *http.Request) {
	months := report.AvailableMonths(s.store.Expenses(), s.now())
	payload := make([]monthPayload, len(months))
	for i, m := range months {
		payload[i] = monthPayload{Token: m.Token, Label: m.Label}
	}
	writeJSON(w, http.StatusOK, payload)
}

// handleCalendar returns the Sunday-aligned grid of daily totals for the
// requested month, defaulting to the current one.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r, s.now())
	if month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return
	}
	if year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "year out of range")
		return
	}

	key := fmt.Sprintf("%04d-%02d", year, month)
	if payload, found := s.calendarCache.Get(key); found {
		slog.DebugContext(r.Context(), "Calendar cache hit",
			applog.FieldYear, year, applog.FieldMonth, month)
		writeJSON(w, http.StatusOK, payload)
		return
	}

	payload := buildCalendar(s.store.Expenses(), year, month)
	s.calendarCache.Set(key, payload)
	writeJSON(w, http.StatusOK, payload)
}

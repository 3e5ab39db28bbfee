package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"spendlog/internal/core"
	applog "spendlog/internal/log"
	"spendlog/internal/report"
)

var monthTokenRE = regexp.MustCompile(`^\d{4}-\d{2}$`)

// handleListExpenses returns the month overview consumed by the home view:
// total, category breakdown, and day-grouped expenses, newest first.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("month"))
	if token == "" {
		token = report.MonthTokenOf(s.now())
	}
	if !monthTokenRE.MatchString(token) {
		writeError(w, http.StatusBadRequest, "month must be a YYYY-MM token")
		return
	}

	if payload, found := s.overviewCache.Get(token); found {
		slog.DebugContext(r.Context(), "Overview cache hit", applog.FieldMonth, token)
		writeJSON(w, http.StatusOK, payload)
		return
	}

	payload := buildMonthOverview(s.store.Expenses(), token)
	s.overviewCache.Set(token, payload)
	writeJSON(w, http.StatusOK, payload)
}

type createExpenseRequest struct {
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// handleCreateExpense validates the input, and only then touches storage.
// Field-level validation failures come back as a 422 with one message per
// offending field.
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	input, err := parseCreateRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	expense, err := core.NewExpense(input, s.now())
	if err != nil {
		var verrs core.ValidationErrors
		if errors.As(err, &verrs) {
			writeFieldErrors(w, verrs)
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.Add(r.Context(), expense); err != nil {
		slog.ErrorContext(r.Context(), "Expense create failed",
			applog.FieldExpenseID, expense.ID,
			applog.FieldError, err)
		writeStorageError(w, err)
		return
	}

	s.invalidateCaches()
	slog.InfoContext(r.Context(), "Expense created",
		applog.FieldExpenseID, expense.ID,
		applog.FieldCategory, expense.Category.String(),
		applog.FieldAmountCents, expense.Amount.Cents,
		applog.FieldDate, expense.Date.String())
	writeJSON(w, http.StatusCreated, toExpensePayload(expense))
}

func parseCreateRequest(r *http.Request) (core.ExpenseInput, error) {
	var req createExpenseRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return core.ExpenseInput{}, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return core.ExpenseInput{}, err
		}
		req.Amount = r.Form.Get("amount")
		req.Category = r.Form.Get("category")
		req.Date = r.Form.Get("date")
		req.Description = r.Form.Get("description")
	}

	return core.ExpenseInput{
		Amount:      sanitizeInput(req.Amount),
		Category:    sanitizeInput(req.Category),
		Date:        sanitizeInput(req.Date),
		Description: sanitizeInput(req.Description),
	}, nil
}

// handleDeleteExpense hard-deletes by ID. Deleting an absent ID is a
// success: the end state is the same.
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense id")
		return
	}

	if err := s.store.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Expense delete failed",
			applog.FieldExpenseID, id,
			applog.FieldError, err)
		writeStorageError(w, err)
		return
	}

	s.invalidateCaches()
	slog.InfoContext(r.Context(), "Expense deleted", applog.FieldExpenseID, id)
	w.WriteHeader(http.StatusNoContent)
}

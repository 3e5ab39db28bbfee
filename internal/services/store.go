// Package services contains the expense store, the bridge between the API
// layer and durable storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/records"
)

// Status is the load lifecycle of the in-memory expense list. It lets
// callers distinguish "no data yet" from "confirmed empty".
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	}
	return "uninitialized"
}

// DefaultStorageTimeout bounds every storage call so a stuck engine
// surfaces as records.ErrTimeout instead of hanging the caller.
const DefaultStorageTimeout = 5 * time.Second

// ExpenseStore owns the authoritative in-memory expense list and keeps it
// consistent with the repository. It is the sole writer of that list; all
// mutation goes through Add and Remove, and the repository is updated
// before the list ever is.
type ExpenseStore struct {
	mu       sync.Mutex
	repo     records.Repository
	timeout  time.Duration
	status   Status
	expenses []core.Expense
}

func NewExpenseStore(repo records.Repository, timeout time.Duration) *ExpenseStore {
	if timeout <= 0 {
		timeout = DefaultStorageTimeout
	}
	return &ExpenseStore{repo: repo, timeout: timeout}
}

// Load initializes the record store and fills the in-memory list. Until it
// succeeds, the list stays empty and Status reports non-Ready; a read
// failure means "no data available yet", not "zero expenses".
func (s *ExpenseStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusLoading

	if err := s.call(ctx, s.repo.Init); err != nil {
		s.status = StatusUninitialized
		return fmt.Errorf("initialize store: %w", err)
	}

	var all []core.Expense
	err := s.call(ctx, func(cctx context.Context) error {
		var lerr error
		all, lerr = s.repo.ListAll(cctx)
		return lerr
	})
	if err != nil {
		s.status = StatusUninitialized
		return fmt.Errorf("load expenses: %w", err)
	}

	s.expenses = all
	s.status = StatusReady
	slog.InfoContext(ctx, "Expense list loaded", "count", len(all))
	return nil
}

// Add persists the expense and, only on success, appends it to the list.
// Validation is the caller's job; the store forwards what it is given.
func (s *ExpenseStore) Add(ctx context.Context, e core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.call(ctx, func(cctx context.Context) error {
		return s.repo.Insert(cctx, e)
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to add expense", "id", e.ID, "error", err)
		return fmt.Errorf("add expense: %w", err)
	}

	s.expenses = append(s.expenses, e)
	return nil
}

// Remove deletes the expense by ID and drops it from the list on success.
// Removing an ID that never existed succeeds and leaves the list untouched.
func (s *ExpenseStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.call(ctx, func(cctx context.Context) error {
		return s.repo.DeleteByKey(cctx, id)
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to remove expense", "id", id, "error", err)
		return fmt.Errorf("remove expense: %w", err)
	}

	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	return nil
}

// Expenses returns a snapshot copy of the current list.
func (s *ExpenseStore) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

func (s *ExpenseStore) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// call runs a storage operation under the store's timeout and reports
// deadline expiry as records.ErrTimeout.
func (s *ExpenseStore) call(ctx context.Context, op func(context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	err := op(cctx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%v: %w", err, records.ErrTimeout)
	}
	return err
}

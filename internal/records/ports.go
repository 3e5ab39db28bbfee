// Package records defines the port for durable expense storage and the
// error taxonomy shared by its adapters.
package records

import (
	"context"
	"errors"

	"spendlog/internal/core"
)

var (
	// ErrUnavailable means the storage engine could not be opened at all.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrReadFailed means a read failed; callers must treat this as "no
	// data available yet", never as "zero expenses".
	ErrReadFailed = errors.New("storage read failed")
	// ErrWriteFailed means a mutation did not reach durable storage.
	ErrWriteFailed = errors.New("storage write failed")
	// ErrDuplicateKey means an insert collided with an existing ID.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrTimeout means a storage operation exceeded its deadline.
	ErrTimeout = errors.New("storage timeout")
)

// Repository is the durable record store for expenses, keyed by ID.
// There is deliberately no update or upsert: expenses are immutable.
type Repository interface {
	// Init idempotently ensures the record store exists.
	Init(ctx context.Context) error
	// ListAll returns every stored expense in unspecified order.
	ListAll(ctx context.Context) ([]core.Expense, error)
	// Insert durably stores a new expense before returning.
	Insert(ctx context.Context, e core.Expense) error
	// DeleteByKey removes the expense with the given ID; deleting an
	// absent key succeeds.
	DeleteByKey(ctx context.Context, id string) error
}

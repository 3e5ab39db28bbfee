package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/records"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements records.Repository on a local SQLite file.
type SQLiteRepository struct {
	db     *sql.DB
	dbPath string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", records.ErrUnavailable)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", records.ErrUnavailable)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %v: %w", err, records.ErrUnavailable)
	}

	return &SQLiteRepository{db: db, dbPath: dbPath}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Init runs the embedded schema migrations. Safe to call repeatedly; an
// already-migrated database is a no-op.
func (r *SQLiteRepository) Init(ctx context.Context) error {
	if err := RunMigrations(r.dbPath); err != nil {
		return fmt.Errorf("run migrations: %v: %w", err, records.ErrUnavailable)
	}
	slog.InfoContext(ctx, "Expense store ready", "path", r.dbPath)
	return nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount_cents, category, date, description, created_at
		FROM expenses`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %v: %w", err, records.ErrReadFailed)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			e         core.Expense
			category  string
			date      string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Amount.Cents, &category, &date, &e.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan expense: %v: %w", err, records.ErrReadFailed)
		}
		e.Category = core.Category(category)
		if e.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", date, records.ErrReadFailed)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse stored created_at %q: %w", createdAt, records.ErrReadFailed)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %v: %w", err, records.ErrReadFailed)
	}
	return out, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, e core.Expense) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, amount_cents, category, date, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Amount.Cents,
		e.Category.String(),
		e.Date.String(),
		e.Description,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("insert expense %s: %w", e.ID, records.ErrDuplicateKey)
		}
		return fmt.Errorf("insert expense %s: %v: %w", e.ID, err, records.ErrWriteFailed)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", e.ID,
		"category", e.Category.String(),
		"amount_cents", e.Amount.Cents,
		"date", e.Date.String())
	return nil
}

func (r *SQLiteRepository) DeleteByKey(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense %s: %v: %w", id, err, records.ErrWriteFailed)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Absent key: idempotent no-op.
		slog.DebugContext(ctx, "Delete for absent expense", "id", id)
	}
	return nil
}

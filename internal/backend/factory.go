package backend

import (
	"fmt"
	"log/slog"

	"spendlog/internal/records/memory"
	"spendlog/internal/storage"
)

// Factory creates storage backends.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the repository for the given backend type.
func (f *Factory) Create(backendType Type, dbPath string) (*Result, error) {
	switch backendType {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(dbPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", "db_path", dbPath)
		return &Result{Repository: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Repository: memory.New()}, nil

	default:
		return nil, fmt.Errorf("invalid backend type: %s", backendType)
	}
}

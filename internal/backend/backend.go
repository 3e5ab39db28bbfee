// Package backend selects and constructs the durable storage adapter from
// configuration.
package backend

import (
	"spendlog/internal/config"
	"spendlog/internal/records"
)

// Type identifies a storage backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

// CleanupFunc releases backend resources; may be nil.
type CleanupFunc func() error

// Result holds the constructed repository and its cleanup function.
type Result struct {
	Repository records.Repository
	Cleanup    CleanupFunc
}

// FromAppConfig extracts the backend settings from the application config.
func FromAppConfig(cfg *config.Config) (Type, string) {
	return Type(cfg.DataBackend), cfg.SQLiteDBPath
}

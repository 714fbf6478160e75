package storage

import (
	"github.com/julianstephens/habits/internal/storage/sqlite"
)

// NewSQLiteStore returns the default sqlite-backed settings store.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

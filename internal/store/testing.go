package store

import (
	"database/sql"
)

// NewTestStore creates a Store for testing with an already-opened database.
// This is only intended for use in tests.
func NewTestStore(sqlDB *sql.DB) *Store {
	return &Store{db: sqlDB}
}

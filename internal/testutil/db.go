package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/salesdesk/internal/config"
	"github.com/vaughan-dsouza/salesdesk/internal/db"
)

// NewSQLiteDB returns a migrated in-memory database closed at test cleanup.
// The pool is limited to one connection, so every query sees the same memory
// database.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Connect(context.Background(), config.Database{
		Driver:      db.DriverSQLite,
		DSN:         ":memory:",
		MaxOpen:     1,
		MaxIdle:     1,
		MaxLifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// Package testutil provides an in-memory database for tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/blogly-backend/database"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// NewDB opens a unique in-memory SQLite database, migrates the schema, and
// returns a Database over it plus the raw handle for fixture tweaks. The
// database is closed when the test finishes.
func NewDB(t *testing.T) (database.Database, *gorm.DB) {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:blogly_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// SQLite only enforces the schema's cascading foreign keys with the
	// pragma on.
	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := database.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return database.New(gdb), gdb
}

// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMockGormDB returns a postgres-dialect GORM handle backed by sqlmock.
// Query expectations are matched as regular expressions.
func NewMockGormDB(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return db, mock
}

// NoteColumns is the column order used by NoteRows.
var NoteColumns = []string{"id", "title", "summary", "content", "created_at", "updated_at", "deleted_at"}

func NoteRows() *sqlmock.Rows {
	return sqlmock.NewRows(NoteColumns)
}

package infra

import (
	"testing"

	"gorm.io/gorm"
)

// NewTestDB returns a migrated in-memory sqlite database closed at test end.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(":memory:", nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

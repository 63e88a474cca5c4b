//go:build integration

package testdb

import (
	"testing"

	"gorm.io/gorm"
)

// WithTx runs fn inside a transaction that is always rolled back, so tests
// can write freely without affecting each other. Stores built on tx run their
// own transactions as savepoints.
func WithTx(t *testing.T, db *gorm.DB, fn func(t *testing.T, tx *gorm.DB)) {
	t.Helper()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin transaction: %v", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// ALLOW-PANIC
			panic(r)
		}
		if err := tx.Rollback().Error; err != nil {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

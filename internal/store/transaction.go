package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"gorm.io/gorm"
)

// TxFn is a function that executes within a database transaction.
// It receives the context and a transaction-bound handle, and returns an error if the operation fails.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *gorm.DB) error

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error or panics, the transaction is rolled back.
// Otherwise, the transaction is committed. When db is already bound to a
// transaction the function runs inside a savepoint instead.
func RunInTransaction(ctx context.Context, db *gorm.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	defer func() {
		if p := recover(); p != nil {
			// gorm has already rolled back by the time the panic reaches us
			log.Error("rolled back transaction after panic",
				slog.Any("panic", p))
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	var fnErr error
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(ctx, tx)
		return fnErr
	})
	if err != nil && fnErr == nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	if err != nil {
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	log.Debug("transaction committed successfully")
	return nil
}

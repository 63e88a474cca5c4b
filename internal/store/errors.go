package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrQuestionNotFound, ErrMovieNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a drink with an existing title).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or violates a database constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidRelation is returned when a relationship references ids that
	// do not all exist. Nothing is written when it is returned.
	ErrInvalidRelation = fmt.Errorf("%w: unresolvable relationship ids", ErrInvalidEntity)

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrCategoryNotFound indicates that the requested category does not exist.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrQuestionNotFound indicates that the requested question does not exist.
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)

	// ErrDrinkNotFound indicates that the requested drink does not exist.
	ErrDrinkNotFound = fmt.Errorf("%w: drink", ErrNotFound)

	// ErrMovieNotFound indicates that the requested movie does not exist.
	ErrMovieNotFound = fmt.Errorf("%w: movie", ErrNotFound)

	// ErrActorNotFound indicates that the requested actor does not exist.
	ErrActorNotFound = fmt.Errorf("%w: actor", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrTitleExists indicates that a drink with the given title already exists.
	ErrTitleExists = fmt.Errorf("%w: title", ErrDuplicate)

	// ErrUnknownCategory indicates that a question references a category
	// that does not exist.
	ErrUnknownCategory = fmt.Errorf("%w: unknown category", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// All entity-specific variants wrap ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "movie", "drink")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

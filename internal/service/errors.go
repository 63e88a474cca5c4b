package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// The API layer maps them to HTTP status codes.
var (
	// ErrNoResults indicates a list or search that the API reports as missing,
	// such as a page beyond the last one. API layer should map this to 404.
	ErrNoResults = errors.New("no results")

	// ErrUnprocessable indicates a well-formed request the service could not
	// carry out. API layer should map this to 422.
	ErrUnprocessable = errors.New("unprocessable entity")
)

// ServiceError wraps a persistence failure with the operation that caused it.
// It matches ErrUnprocessable and the underlying error.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_movie")
	Operation string
	// Err is the underlying error that caused the failure
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap exposes both ErrUnprocessable and the cause to errors.Is/As.
func (e *ServiceError) Unwrap() []error {
	return []error{ErrUnprocessable, e.Err}
}

// wrapStoreError annotates err with op. Errors the API already knows how to
// classify keep their identity; anything else becomes a ServiceError.
func wrapStoreError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPage):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return &ServiceError{Operation: op, Err: err}
	}
}

// dedupeIDs returns ids without repeats, keeping first occurrences in order.
// A nil input stays nil so callers can tell "absent" from "empty".
func dedupeIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

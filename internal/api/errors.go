package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/crudsuite/internal/api/shared"
	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/service"
	"github.com/phrazzld/crudsuite/internal/service/auth"
	"github.com/phrazzld/crudsuite/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var authErr *auth.AuthError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &authErr):
		return authErr.StatusCode

	// Bad request errors
	case errors.Is(err, shared.ErrMalformedBody),
		errors.Is(err, domain.ErrInvalidPage):
		return http.StatusBadRequest

	// Not found errors. A malformed path id cannot name a resource.
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrNoResults),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Unprocessable errors
	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErrs),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrUnprocessable):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Auth errors
// carry their own description; everything else gets the status message.
func GetSafeErrorMessage(err error) string {
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		return authErr.Description
	}
	return shared.StatusMessage(MapErrorToStatusCode(err))
}

// HandleAPIError writes the error response for err and logs the details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	var opts []shared.ResponseOption
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}

// NotFoundHandler answers requests for unknown routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, shared.MessageNotFound)
}

// MethodNotAllowedHandler answers requests with an unsupported method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, shared.MessageMethodNotAllowed)
}

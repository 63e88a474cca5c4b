package middleware

import (
	"errors"
	"net/http"

	"github.com/phrazzld/crudsuite/internal/api/shared"
	"github.com/phrazzld/crudsuite/internal/service/auth"
)

// AuthMiddleware guards routes with bearer tokens and permission checks.
type AuthMiddleware struct {
	verifier auth.Verifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given verifier.
func NewAuthMiddleware(verifier auth.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Require returns middleware that lets a request through only when its
// bearer token verifies and grants permission. The verified claims are
// stored in the request context.
func (m *AuthMiddleware) Require(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.ExtractBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				respondAuthError(w, r, err)
				return
			}

			claims, err := m.verifier.Verify(r.Context(), token)
			if err != nil {
				respondAuthError(w, r, err)
				return
			}

			if err := auth.CheckPermission(claims, permission); err != nil {
				respondAuthError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithClaims(r.Context(), claims)))
		})
	}
}

func respondAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		var opts []shared.ResponseOption
		if authErr.StatusCode == http.StatusForbidden {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		shared.RespondWithErrorAndLog(w, r, authErr.StatusCode, authErr.Description, err, opts...)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageInternalServerError, err)
}

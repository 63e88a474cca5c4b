package auth

import (
	"net/http"
	"slices"
	"time"
)

// Claims are the verified contents of a bearer token.
// Permissions is nil when the token carried no permissions claim at all.
type Claims struct {
	Subject     string
	Issuer      string
	Audience    []string
	Permissions []string
	ExpiresAt   time.Time
}

// HasPermission reports whether the token grants permission.
func (c *Claims) HasPermission(permission string) bool {
	return c != nil && slices.Contains(c.Permissions, permission)
}

// CheckPermission returns nil when claims grant permission, and an
// *AuthError otherwise.
func CheckPermission(claims *Claims, permission string) error {
	if claims == nil || claims.Permissions == nil {
		return newAuthError(http.StatusBadRequest, CodeInvalidClaims, "Permissions not included in JWT.", nil)
	}
	if !claims.HasPermission(permission) {
		return newAuthError(http.StatusForbidden, CodeUnauthorized, "Permission not found.", nil)
	}
	return nil
}

package testutils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Test token constants. They must never be used outside tests.
const (
	TestHMACSecret = "test-hmac-secret-that-is-32-chars-long"
	TestDomain     = "crudsuite.test.auth0.com"
	TestIssuer     = "https://" + TestDomain + "/"
	TestAudience   = "crudsuite"

	TestTokenLifetime = 15 * time.Minute
)

// TokenOptions shapes a test token. A nil Permissions omits the claim; an
// empty non-nil slice sends an empty list.
type TokenOptions struct {
	Subject     string
	Issuer      string
	Audience    string
	Permissions []string
	ExpiresAt   time.Time
	Secret      string
}

// NewTestToken signs an HS256 token. Unset options default to the test
// issuer, audience, secret and a fifteen minute lifetime.
func NewTestToken(t *testing.T, opts TokenOptions) string {
	t.Helper()

	if opts.Subject == "" {
		opts.Subject = "auth0|test-user"
	}
	if opts.Issuer == "" {
		opts.Issuer = TestIssuer
	}
	if opts.Audience == "" {
		opts.Audience = TestAudience
	}
	if opts.ExpiresAt.IsZero() {
		opts.ExpiresAt = time.Now().Add(TestTokenLifetime)
	}
	if opts.Secret == "" {
		opts.Secret = TestHMACSecret
	}

	claims := jwt.MapClaims{
		"sub": opts.Subject,
		"iss": opts.Issuer,
		"aud": opts.Audience,
		"iat": time.Now().Unix(),
		"exp": opts.ExpiresAt.Unix(),
	}
	if opts.Permissions != nil {
		claims["permissions"] = opts.Permissions
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(opts.Secret))
	require.NoError(t, err)
	return signed
}

// BearerToken returns an Authorization header value for a token granting
// permissions.
func BearerToken(t *testing.T, permissions ...string) string {
	t.Helper()
	if permissions == nil {
		permissions = []string{}
	}
	return "Bearer " + NewTestToken(t, TokenOptions{Permissions: permissions})
}

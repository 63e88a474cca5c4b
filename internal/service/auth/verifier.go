package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/crudsuite/internal/config"
)

// Verifier validates a raw bearer token and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// tokenClaims is the wire form of the token payload.
type tokenClaims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

func (c *tokenClaims) toClaims() *Claims {
	claims := &Claims{
		Subject:     c.Subject,
		Issuer:      c.Issuer,
		Audience:    []string(c.Audience),
		Permissions: c.Permissions,
	}
	if c.ExpiresAt != nil {
		claims.ExpiresAt = c.ExpiresAt.Time
	}
	return claims
}

// parserOptions returns the checks shared by every verifier. Empty issuer or
// audience disables the corresponding check.
func parserOptions(method, issuer, audience string, leeway time.Duration) []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return opts
}

func parse(token string, keyFunc jwt.Keyfunc, opts []jwt.ParserOption) (*Claims, error) {
	var wire tokenClaims
	if _, err := jwt.ParseWithClaims(token, &wire, keyFunc, opts...); err != nil {
		return nil, classifyParseError(err)
	}
	return wire.toClaims(), nil
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>"
// header value.
func ExtractBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", newAuthError(http.StatusUnauthorized, CodeHeaderMissing, "Authorization header is expected.", nil)
	}
	switch {
	case !strings.EqualFold(parts[0], "bearer"):
		return "", newAuthError(http.StatusUnauthorized, CodeInvalidHeader,
			`Authorization header must start with "Bearer".`, nil)
	case len(parts) == 1:
		return "", newAuthError(http.StatusUnauthorized, CodeInvalidHeader, "Token not found.", nil)
	case len(parts) > 2:
		return "", newAuthError(http.StatusUnauthorized, CodeInvalidHeader,
			"Authorization header must be bearer token.", nil)
	}
	return parts[1], nil
}

// IssuerURL returns the issuer claim expected for tokens from domain.
func IssuerURL(domain string) string {
	return "https://" + domain + "/"
}

// NewVerifier builds the verifier selected by cfg.Algorithm. client is used
// for key set requests; nil selects a client with a ten second timeout.
func NewVerifier(cfg config.AuthConfig, client *http.Client) (Verifier, error) {
	switch cfg.Algorithm {
	case "HS256":
		issuer := ""
		if cfg.Domain != "" {
			issuer = IssuerURL(cfg.Domain)
		}
		return NewHMACVerifier([]byte(cfg.HMACSecret), issuer, cfg.Audience)
	case "RS256", "":
		if cfg.Domain == "" || cfg.Audience == "" {
			return nil, errors.New("RS256 verification requires an issuer domain and an audience")
		}
		return NewJWKSVerifier(JWKSOptions{
			Issuer:     IssuerURL(cfg.Domain),
			Audience:   cfg.Audience,
			HTTPClient: client,
			CacheTTL:   time.Duration(cfg.JWKSRefreshMinutes) * time.Minute,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}
}

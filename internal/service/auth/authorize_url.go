package auth

import (
	"errors"
	"net/url"

	"github.com/phrazzld/crudsuite/internal/config"
)

// AuthorizeURL returns the issuer's login URL that hands an access token
// for the configured audience back to the callback URL.
func AuthorizeURL(cfg config.AuthConfig) (string, error) {
	if cfg.Domain == "" {
		return "", errors.New("auth domain is not configured")
	}
	q := url.Values{}
	q.Set("audience", cfg.Audience)
	q.Set("response_type", "token")
	q.Set("client_id", cfg.ClientID)
	q.Set("redirect_uri", cfg.CallbackURL)

	u := url.URL{
		Scheme:   "https",
		Host:     cfg.Domain,
		Path:     "/authorize",
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}

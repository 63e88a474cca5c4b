package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"golang.org/x/time/rate"
)

const (
	defaultCacheTTL = time.Hour
	// minRefetchInterval bounds how often an unknown kid can trigger a fetch.
	minRefetchInterval = 10 * time.Second
)

// JWKSOptions configures a JWKSVerifier.
type JWKSOptions struct {
	// Issuer is the expected iss claim, e.g. "https://tenant.auth0.com/".
	Issuer   string
	Audience string
	// JWKSURL defaults to Issuer + ".well-known/jwks.json".
	JWKSURL    string
	HTTPClient *http.Client
	// CacheTTL is the interval between background key set refreshes.
	CacheTTL time.Duration
}

// JWKSVerifier validates RS256 tokens against the issuer's key set. The set
// is loaded on first use and kept fresh by keyfunc; a failed refresh keeps
// the previous keys.
type JWKSVerifier struct {
	opts   JWKSOptions
	client *http.Client

	mu     sync.Mutex
	keys   keyfunc.Keyfunc
	cancel context.CancelFunc
}

var _ Verifier = (*JWKSVerifier)(nil)

// NewJWKSVerifier creates a JWKSVerifier. Keys are fetched lazily on first use.
func NewJWKSVerifier(opts JWKSOptions) *JWKSVerifier {
	if opts.JWKSURL == "" {
		opts.JWKSURL = opts.Issuer + ".well-known/jwks.json"
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &JWKSVerifier{opts: opts, client: client}
}

// Verify implements Verifier.
func (v *JWKSVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	log := logger.FromContext(ctx)

	keys, err := v.keySet(ctx)
	if err != nil {
		log.Error("signing key set unavailable", slog.String("error", err.Error()))
		return nil, err
	}

	claims, err := parse(token, func(t *jwt.Token) (interface{}, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errMissingKeyID
		}
		key, err := keys.KeyfuncCtx(ctx)(t)
		if err != nil {
			return nil, keyLookupError(ctx, keys, err)
		}
		return key, nil
	}, parserOptions(jwt.SigningMethodRS256.Name, v.opts.Issuer, v.opts.Audience, 0))
	if err != nil {
		log.Debug("token rejected", slog.String("error", err.Error()))
		return nil, err
	}
	return claims, nil
}

// Close stops the background refresh. A later Verify loads the set again.
func (v *JWKSVerifier) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
	}
	v.keys, v.cancel = nil, nil
}

// keySet returns the shared keyfunc, creating it on first use. Creation is
// retried on the next call when it fails.
func (v *JWKSVerifier) keySet(ctx context.Context) (keyfunc.Keyfunc, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.keys != nil {
		return v.keys, nil
	}

	refreshCtx, cancel := context.WithCancel(context.Background())
	keys, err := keyfunc.NewDefaultOverrideCtx(refreshCtx, []string{v.opts.JWKSURL}, keyfunc.Override{
		Client:            v.client,
		RefreshInterval:   v.opts.CacheTTL,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(minRefetchInterval), 1),
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
	}

	logger.FromContext(ctx).Info("loaded signing key set", slog.String("url", v.opts.JWKSURL))
	v.keys, v.cancel = keys, cancel
	return keys, nil
}

// keyLookupError classifies a failed kid lookup. An empty key set means the
// issuer has not been reachable since startup.
func keyLookupError(ctx context.Context, keys keyfunc.Keyfunc, err error) error {
	if stored, readErr := keys.Storage().KeyReadAll(ctx); readErr == nil && len(stored) == 0 {
		return fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
	}
	if errors.Is(err, jwkset.ErrKeyNotFound) {
		return fmt.Errorf("%w: %v", errUnknownKeyID, err)
	}
	return err
}

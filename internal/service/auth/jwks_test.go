package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/crudsuite/internal/service/auth"
	"github.com/phrazzld/crudsuite/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jwksFixture struct {
	key      *rsa.PrivateKey
	kid      string
	server   *httptest.Server
	requests atomic.Int32
	fail     atomic.Bool
}

func newJWKSFixture(t *testing.T) *jwksFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &jwksFixture{key: key, kid: "test-key-1"}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		if f.fail.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": f.kid,
				"use": "sig",
				"alg": "RS256",
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			}},
		})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *jwksFixture) verifier(t *testing.T) *auth.JWKSVerifier {
	t.Helper()
	v := auth.NewJWKSVerifier(auth.JWKSOptions{
		Issuer:     testutils.TestIssuer,
		Audience:   testutils.TestAudience,
		JWKSURL:    f.server.URL,
		HTTPClient: f.server.Client(),
	})
	t.Cleanup(v.Close)
	return v
}

func (f *jwksFixture) token(t *testing.T, kid string, claims jwt.MapClaims) string {
	t.Helper()
	base := jwt.MapClaims{
		"iss":         testutils.TestIssuer,
		"aud":         testutils.TestAudience,
		"sub":         "auth0|casting-director",
		"exp":         time.Now().Add(time.Hour).Unix(),
		"permissions": []string{"view:actor"},
	}
	for k, v := range claims {
		base[k] = v
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, base)
	if kid != "" {
		tok.Header["kid"] = kid
	}
	signed, err := tok.SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func TestJWKSVerifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		claims, err := f.verifier(t).Verify(ctx, f.token(t, f.kid, nil))
		require.NoError(t, err)
		assert.Equal(t, "auth0|casting-director", claims.Subject)
		assert.True(t, claims.HasPermission("view:actor"))
	})

	t.Run("keys are cached", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		v := f.verifier(t)
		for i := 0; i < 3; i++ {
			_, err := v.Verify(ctx, f.token(t, f.kid, nil))
			require.NoError(t, err)
		}
		assert.Equal(t, int32(1), f.requests.Load())
	})

	t.Run("concurrent first use shares one fetch", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		v := f.verifier(t)
		token := f.token(t, f.kid, nil)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := v.Verify(ctx, token)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), f.requests.Load())
	})

	t.Run("unknown kid", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		_, err := f.verifier(t).Verify(ctx, f.token(t, "rotated-away", nil))
		authErr := requireAuthError(t, err, http.StatusBadRequest, auth.CodeInvalidHeader)
		assert.Equal(t, "Unable to find the appropriate key.", authErr.Description)
	})

	t.Run("missing kid", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		_, err := f.verifier(t).Verify(ctx, f.token(t, "", nil))
		requireAuthError(t, err, http.StatusUnauthorized, auth.CodeInvalidHeader)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		_, err := f.verifier(t).Verify(ctx, f.token(t, f.kid, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}))
		requireAuthError(t, err, http.StatusUnauthorized, auth.CodeTokenExpired)
	})

	t.Run("wrong audience", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		_, err := f.verifier(t).Verify(ctx, f.token(t, f.kid, jwt.MapClaims{"aud": "coffee"}))
		requireAuthError(t, err, http.StatusUnauthorized, auth.CodeInvalidClaims)
	})

	t.Run("hs256 token rejected", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		_, err := f.verifier(t).Verify(ctx, testutils.NewTestToken(t, testutils.TokenOptions{}))
		requireAuthError(t, err, http.StatusBadRequest, auth.CodeInvalidHeader)
	})

	t.Run("key set outage", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		f.fail.Store(true)
		_, err := f.verifier(t).Verify(ctx, f.token(t, f.kid, nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrKeySetUnavailable))
		var authErr *auth.AuthError
		assert.False(t, errors.As(err, &authErr))
	})

	t.Run("close resets the key set", func(t *testing.T) {
		t.Parallel()
		f := newJWKSFixture(t)
		v := f.verifier(t)
		f.fail.Store(true)
		_, err := v.Verify(ctx, f.token(t, f.kid, nil))
		require.ErrorIs(t, err, auth.ErrKeySetUnavailable)

		f.fail.Store(false)
		v.Close()
		_, err = v.Verify(ctx, f.token(t, f.kid, nil))
		assert.NoError(t, err)
	})
}
